package domain

import (
	"fmt"
	"strings"
)

// TapeMargin is the number of blank cells appended after the operand text.
const TapeMargin = 200

// MaxTapeCapacity bounds a single tape allocation.
const MaxTapeCapacity = 1 << 24

// Tape is a fixed-capacity sequence of symbols.
// Its capacity is decided at construction and never changes afterwards.
type Tape struct {
	cells []Symbol
}

// NewTape allocates len(text)+TapeMargin blank cells and copies the operand text into the prefix.
// The text is expected to be pre-validated; characters other than '0' and '1' land as Blank.
func NewTape(text string) (*Tape, error) {
	capacity := len(text) + TapeMargin
	if capacity <= 0 || capacity > MaxTapeCapacity {
		return nil, fmt.Errorf("%w: capacity %d outside (0, %d]", ErrTapeAllocation, capacity, MaxTapeCapacity)
	}

	cells := make([]Symbol, capacity)
	for i := range cells {
		cells[i] = Blank
	}
	for i := 0; i < len(text); i++ {
		cells[i] = SymbolFromByte(text[i])
	}
	return &Tape{cells: cells}, nil
}

// NewTapeFromSymbols builds a tape holding exactly the given cells.
func NewTapeFromSymbols(cells []Symbol) *Tape {
	c := make([]Symbol, len(cells))
	copy(c, cells)
	return &Tape{cells: c}
}

// Len returns the fixed capacity.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Read returns the symbol at pos. The caller guarantees pos is in bounds.
func (t *Tape) Read(pos int) Symbol {
	return t.cells[pos]
}

// Write stores s at pos. The caller guarantees pos is in bounds.
func (t *Tape) Write(pos int, s Symbol) {
	t.cells[pos] = s
}

// Cells returns a copy of every cell.
func (t *Tape) Cells() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}

// Clone returns an independent copy of the tape.
func (t *Tape) Clone() *Tape {
	return NewTapeFromSymbols(t.cells)
}

// String renders the raw tape using '0', '1' and ' '.
func (t *Tape) String() string {
	var sb strings.Builder
	sb.Grow(len(t.cells))
	for _, c := range t.cells {
		sb.WriteByte(c.Byte())
	}
	return sb.String()
}

// Trimmed renders the tape without its trailing blanks.
func (t *Tape) Trimmed() string {
	return strings.TrimRight(t.String(), " ")
}
