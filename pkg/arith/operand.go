package arith

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// ValidAlphabet reports whether s holds only '0', '1' and spaces.
func ValidAlphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' && c != ' ' {
			return false
		}
	}
	return true
}

// ValidateBinary checks a single operand: non-empty, only '0' and '1'.
func ValidateBinary(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty", domain.ErrInvalidOperand)
	}
	if !ValidAlphabet(s) || strings.Contains(s, " ") {
		return fmt.Errorf("%w: %q must contain only 0 and 1", domain.ErrInvalidOperand, s)
	}
	return nil
}

// ParseOperands splits a line like "101 11" into its two binary words.
func ParseOperands(line string) (left, right string, err error) {
	line = strings.TrimRight(line, "\r\n")
	if !ValidAlphabet(line) {
		return "", "", fmt.Errorf("%w: input must contain only '0', '1' and spaces", domain.ErrInvalidOperand)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("%w: expected two binary numbers, got %d", domain.ErrInvalidOperand, len(fields))
	}
	return fields[0], fields[1], nil
}

// TapeText lays out the two operands the way the machine expects them.
func TapeText(left, right string) string {
	return left + " " + right
}

// ToDecimal converts a validated binary string.
func ToDecimal(bin string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(bin, 2)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not binary", domain.ErrInvalidOperand, bin)
	}
	return n, nil
}

// FromDecimal renders n in base 2. Zero is "0"; negatives carry a leading "-".
func FromDecimal(n *big.Int) string {
	return n.Text(2)
}
