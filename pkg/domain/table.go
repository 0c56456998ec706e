package domain

import (
	"fmt"
	"strings"
)

// Operation names the arithmetic a table is meant to perform.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "/"
)

// Operations lists every supported operation in display order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// ParseOperation accepts the operator character typed by a user (surrounding spaces allowed).
func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == strings.TrimSpace(s) {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Transition is one cell of a transition table.
type Transition struct {
	Next  int    `json:"next" yaml:"next"`
	Write Symbol `json:"write" yaml:"write"`
	Move  Move   `json:"move" yaml:"move"`
}

func (t Transition) String() string {
	return fmt.Sprintf("(%d,%s,%s)", t.Next, t.Write, t.Move)
}

// Row holds the transitions for reading Zero (index 0) and One (index 1).
type Row [2]Transition

// Table is an immutable transition table.
//
// Rows covers the non-terminal states 0..Terminal-1. Terminal has no row and is
// never looked up; reaching it ends the run.
type Table struct {
	Name      string    `json:"name" yaml:"name"`
	Operation Operation `json:"operation" yaml:"operation"`
	Rows      []Row     `json:"rows" yaml:"rows"`
	Terminal  int       `json:"terminal" yaml:"terminal"`
}

// NewTable builds a table whose terminal state follows the last row.
func NewTable(name string, op Operation, rows ...Row) *Table {
	r := make([]Row, len(rows))
	copy(r, rows)
	return &Table{
		Name:      name,
		Operation: op,
		Rows:      r,
		Terminal:  len(r),
	}
}

// States returns the number of states including the terminal one.
func (t *Table) States() int {
	return t.Terminal + 1
}

// IsTerminal reports whether state is the accepting state.
func (t *Table) IsTerminal(state int) bool {
	return state == t.Terminal
}

// Lookup returns the transition for (state, symbol).
// It reports false outside the table's domain: terminal or unknown states, and Blank.
func (t *Table) Lookup(state int, s Symbol) (Transition, bool) {
	if !s.IsBinary() || state < 0 || state >= t.Terminal || state >= len(t.Rows) {
		return Transition{}, false
	}
	return t.Rows[state][s], true
}

// Clone returns a deep copy so callers cannot alter shared table constants.
func (t *Table) Clone() *Table {
	c := *t
	c.Rows = make([]Row, len(t.Rows))
	copy(c.Rows, t.Rows)
	return &c
}

// Validate checks the table's shape.
func (t *Table) Validate() error {
	if t.Terminal != len(t.Rows) {
		return fmt.Errorf("%w: table %q has %d rows but terminal state %d", ErrInvalidTable, t.Name, len(t.Rows), t.Terminal)
	}
	for state, row := range t.Rows {
		for sym, tr := range row {
			if tr.Next < 0 || tr.Next > t.Terminal {
				return fmt.Errorf("%w: table %q (%d,%s) jumps to state %d outside [0,%d]",
					ErrInvalidTable, t.Name, state, Symbol(sym), tr.Next, t.Terminal)
			}
			if !tr.Move.Valid() {
				return fmt.Errorf("%w: table %q (%d,%s) has move %d", ErrInvalidTable, t.Name, state, Symbol(sym), tr.Move)
			}
			if tr.Write > Blank {
				return fmt.Errorf("%w: table %q (%d,%s) writes symbol %d", ErrInvalidTable, t.Name, state, Symbol(sym), tr.Write)
			}
		}
	}
	return nil
}
