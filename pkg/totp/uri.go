package totp

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ValidSecretRegex matches a base32 secret: uppercase A-Z, digits 2-7,
// optional trailing padding.
var ValidSecretRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

// ProvisioningParams describes an enrollment for provisioning-URI generation.
type ProvisioningParams struct {
	Secret      string // Base32-encoded shared secret (required)
	AccountName string // User identifier such as an email address (required)
	Issuer      string // Service name shown in authenticator apps (required)
}

// Validate ensures all required provisioning parameters are present and the
// secret is well-formed base32.
func (p ProvisioningParams) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !ValidSecretRegex.MatchString(strings.ToUpper(strings.TrimSpace(p.Secret))) {
		return ErrInvalidSecretFormat
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// ProvisioningURI builds the otpauth:// URI that authenticator apps import
// via QR scan or manual entry, following the Key Uri Format:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// The query string is assembled by hand to keep the exact
// "?secret=...&issuer=..." shape; url.Values would reorder the parameters
// alphabetically.
func ProvisioningURI(params ProvisioningParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	return fmt.Sprintf("otpauth://totp/%s?secret=%s&issuer=%s",
		label,
		params.Secret,
		url.QueryEscape(params.Issuer),
	), nil
}
