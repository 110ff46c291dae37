package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_SizeLimit(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "16")

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", 15, false},
		{"Exact Limit", 16, false},
		{"Over Limit", 17, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Text(strings.Repeat("a", tt.inputSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaxInputSize_IgnoresGarbage(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "lots")
	assert.Equal(t, DefaultMaxInputSize, MaxInputSize())
}

func TestText_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "Hello World", "Hello World"},
		{"Safe Controls", "Line1\nLine2\tTabbed", "Line1\nLine2\tTabbed"},
		{"ANSI Code", "\x1b[31mRed\x1b[0m", "[31mRed[0m"},
		{"Null Byte", "Null\x00Byte", "NullByte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestText_InvalidUTF8(t *testing.T) {
	_, err := Text("bad\xff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestIdentifier(t *testing.T) {
	for _, ok := range []string{"bubbleSort", " insert-head ", "6f1c2a0e-3b7d-4a51-9f0e-8d1f2c3b4a5d", "a.b:c_d"} {
		_, err := Identifier(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "../etc", "a b", "naïve", strings.Repeat("x", MaxIdentifierLength+1)} {
		_, err := Identifier(bad)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, bad)
	}
}
