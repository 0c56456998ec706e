// Package tables holds the four canonical transition tables.
//
// The tables are hand-authored data and are executed exactly as written. Apart from
// scanning right over the operands they do not implement general binary arithmetic;
// see the package tests for what they actually do.
package tables

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

const (
	b = domain.Blank
	z = domain.Zero
	o = domain.One

	l = domain.Left
	r = domain.Right
)

func tr(next int, write domain.Symbol, move domain.Move) domain.Transition {
	return domain.Transition{Next: next, Write: write, Move: move}
}

var addition = domain.NewTable("addition", domain.OpAdd,
	domain.Row{tr(0, z, r), tr(0, o, r)}, // scan right
	domain.Row{tr(1, z, l), tr(2, o, l)}, // add bit
	domain.Row{tr(2, o, l), tr(1, z, l)}, // carry
	domain.Row{tr(1, o, l), tr(2, z, l)}, // carry, continued
	domain.Row{tr(3, b, r), tr(3, b, r)}, // sweep right
)

var subtraction = domain.NewTable("subtraction", domain.OpSubtract,
	domain.Row{tr(0, z, r), tr(0, o, r)}, // scan right
	domain.Row{tr(1, z, l), tr(2, o, l)}, // subtract bit
	domain.Row{tr(2, o, l), tr(1, z, l)}, // borrow
	domain.Row{tr(3, b, r), tr(3, b, r)}, // sweep right
)

var multiplication = domain.NewTable("multiplication", domain.OpMultiply,
	domain.Row{tr(0, z, r), tr(1, z, r)}, // init
	domain.Row{tr(1, z, r), tr(2, o, l)}, // times 0
	domain.Row{tr(2, o, l), tr(1, z, l)}, // times 1
	domain.Row{tr(3, z, l), tr(2, o, l)}, // carry
	domain.Row{tr(4, b, r), tr(4, b, r)}, // sweep right
)

var division = domain.NewTable("division", domain.OpDivide,
	domain.Row{tr(0, z, r), tr(0, o, r)}, // scan right
	domain.Row{tr(1, z, l), tr(2, o, l)}, // subtract divisor
	domain.Row{tr(2, o, l), tr(1, z, l)}, // borrow
	domain.Row{tr(3, z, r), tr(3, o, r)}, // scan right
	domain.Row{tr(4, o, l), tr(4, z, l)}, // adjust
	domain.Row{tr(5, b, r), tr(5, b, r)}, // sweep right
)

// Addition returns a copy of the addition table (6 states, terminal 5).
func Addition() *domain.Table { return addition.Clone() }

// Subtraction returns a copy of the subtraction table (5 states, terminal 4).
func Subtraction() *domain.Table { return subtraction.Clone() }

// Multiplication returns a copy of the multiplication table (6 states, terminal 5).
func Multiplication() *domain.Table { return multiplication.Clone() }

// Division returns a copy of the division table (7 states, terminal 6).
func Division() *domain.Table { return division.Clone() }

// ForOperation selects the table for an operator.
func ForOperation(op domain.Operation) (*domain.Table, error) {
	switch op {
	case domain.OpAdd:
		return Addition(), nil
	case domain.OpSubtract:
		return Subtraction(), nil
	case domain.OpMultiply:
		return Multiplication(), nil
	case domain.OpDivide:
		return Division(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
	}
}

// ByName selects a table by its name ("addition") or operator ("+").
func ByName(name string) (*domain.Table, error) {
	for _, t := range All() {
		if t.Name == name || string(t.Operation) == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, name)
}

// All returns copies of every canonical table in operator order.
func All() []*domain.Table {
	return []*domain.Table{Addition(), Subtraction(), Multiplication(), Division()}
}
