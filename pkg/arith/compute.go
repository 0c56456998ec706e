package arith

import (
	"fmt"
	"math/big"

	"github.com/aretw0/turing/pkg/domain"
)

// Check enforces the preconditions a calculation has before the machine runs:
// subtraction needs left >= right, division needs right != 0.
func Check(left, right *big.Int, op domain.Operation) error {
	switch op {
	case domain.OpAdd, domain.OpMultiply:
		return nil
	case domain.OpSubtract:
		if left.Cmp(right) < 0 {
			return fmt.Errorf("%w: %s - %s", domain.ErrNegativeDifference, left, right)
		}
		return nil
	case domain.OpDivide:
		if right.Sign() == 0 {
			return domain.ErrDivisionByZero
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
	}
}

// Compute performs the decimal cross-check. Division truncates toward zero.
func Compute(left, right *big.Int, op domain.Operation) (*big.Int, error) {
	out := new(big.Int)
	switch op {
	case domain.OpAdd:
		return out.Add(left, right), nil
	case domain.OpSubtract:
		return out.Sub(left, right), nil
	case domain.OpMultiply:
		return out.Mul(left, right), nil
	case domain.OpDivide:
		if right.Sign() == 0 {
			return nil, domain.ErrDivisionByZero
		}
		return out.Quo(left, right), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
	}
}
