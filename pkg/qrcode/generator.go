package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content string is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerate is returned when QR code generation fails.
	ErrFailedToGenerate = errors.New("failed to generate QR code")
)

// DefaultSize is the image edge length in pixels used when no size is given.
const DefaultSize = 256

// GeneratePNG renders the content as a QR code PNG. Uses medium error
// correction, which keeps provisioning URIs scannable on average phone
// cameras without inflating the module count.
func GeneratePNG(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return png, nil
}

// GenerateDataURI renders the content as a QR code and returns it as a
// data:image/png;base64 URI, ready for an <img src> attribute. This is the
// form the enrollment flow hands to the UI layer.
func GenerateDataURI(content string, size int) (string, error) {
	png, err := GeneratePNG(content, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
