// Package sanitizer guards transport payloads before they reach the generators.
package sanitizer

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds a request body or WebSocket message (64KB).
	DefaultMaxInputSize = 64 * 1024
	// EnvMaxInputSize overrides DefaultMaxInputSize.
	EnvMaxInputSize = "ALGOVIZ_MAX_INPUT_SIZE"

	// MaxIdentifierLength bounds session ids, algorithm ids and action names.
	MaxIdentifierLength = 128
)

var (
	ErrInputTooLarge     = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8       = errors.New("input contains invalid UTF-8 sequences")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// MaxInputSize returns the configured payload limit in bytes.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

// CheckSize rejects payloads larger than MaxInputSize.
func CheckSize(n int) error {
	if limit := MaxInputSize(); n > limit {
		return fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, n, limit)
	}
	return nil
}

// Text enforces the size limit, validates UTF-8 and strips control characters
// other than newline, tab and carriage return.
// Oversized input is rejected rather than truncated.
func Text(input string) (string, error) {
	if err := CheckSize(len(input)); err != nil {
		return "", err
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// Identifier trims s and checks that it only holds letters, digits and
// "-_.:" and is at most MaxIdentifierLength bytes long.
func Identifier(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxIdentifierLength {
		return "", fmt.Errorf("%w: length %d", ErrInvalidIdentifier, len(s))
	}
	for _, r := range s {
		if !isIdentRune(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
		}
	}
	return s, nil
}

func isIdentRune(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-_.:", r))
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}
