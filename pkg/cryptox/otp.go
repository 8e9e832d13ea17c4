package cryptox

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// OTPLength is the number of characters in an email verification code.
	OTPLength = 6

	otpAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateOTP returns a random uppercase alphanumeric code of OTPLength
// characters drawn from crypto/rand.
func GenerateOTP() (string, error) {
	return gonanoid.Generate(otpAlphabet, OTPLength)
}

// NormalizeOTP folds user input to the stored form. Codes are matched
// case-insensitively since people retype them from an email.
func NormalizeOTP(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
