// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"errors"
	"fmt"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// suffixChars matches the alphabet used for session-id disambiguation:
// uppercase letters and digits only, so ids stay readable in a spreadsheet.
const suffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSuffix creates a random alphanumeric string of length n.
// Uniqueness is probabilistic; callers that need a guarantee must check the
// result against existing ids and retry.
func GenerateSuffix(n int) (string, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}
	for i := range b {
		b[i] = suffixChars[int(b[i])%len(suffixChars)]
	}
	return string(b), nil
}

// ValidateAdminKey checks the provided key against the configured upload key
// in constant time.
func ValidateAdminKey(provided, configured string) error {
	if configured == "" || !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}
