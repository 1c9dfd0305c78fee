package main

import (
	"fmt"
	"log"

	"github.com/ledgerview/twofactor/pkg/totp"
)

func main() {
	// Generate a base64-encoded AES-256 key for the TOTP_ENCRYPTION_KEY
	// environment variable.
	encodedKey, err := totp.GenerateEncodedEncryptionKey()
	if err != nil {
		log.Fatalf("Failed to generate encryption key: %v", err)
	}

	fmt.Printf("Generated encryption key (for TOTP_ENCRYPTION_KEY env var):\n---\n%s\n---\n", encodedKey)
}
