package arith

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxInputSize bounds operand text, in bytes.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize overrides DefaultMaxInputSize.
	EnvMaxInputSize = "TURING_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// CheckInput rejects operand text longer than MaxInputSize or not valid UTF-8.
// Oversized text is never truncated: a shorter operand is a different number.
func CheckInput(text string) error {
	if limit := MaxInputSize(); len(text) > limit {
		return fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(text), limit)
	}
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	return nil
}

// SanitizeInput checks a line typed at a prompt and drops control characters
// other than tab, newline and carriage return, such as stray arrow-key escapes.
func SanitizeInput(line string) (string, error) {
	if err := CheckInput(line); err != nil {
		return "", err
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, line), nil
}

// MaxInputSize returns the operand text limit, honoring EnvMaxInputSize.
func MaxInputSize() int {
	n, err := strconv.Atoi(os.Getenv(EnvMaxInputSize))
	if err != nil || n <= 0 {
		return DefaultMaxInputSize
	}
	return n
}
