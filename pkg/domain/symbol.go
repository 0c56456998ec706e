package domain

import "fmt"

// Symbol is a tape cell value.
// Zero and One double as row indexes into a Table, so their values are fixed.
type Symbol uint8

const (
	Zero  Symbol = 0
	One   Symbol = 1
	Blank Symbol = 2
)

// SymbolFromByte maps an input character onto the alphabet.
// Anything other than '0' or '1' becomes Blank.
func SymbolFromByte(c byte) Symbol {
	switch c {
	case '0':
		return Zero
	case '1':
		return One
	default:
		return Blank
	}
}

// Byte returns the raw tape character ('0', '1' or ' ').
func (s Symbol) Byte() byte {
	switch s {
	case Zero:
		return '0'
	case One:
		return '1'
	default:
		return ' '
	}
}

// IsBinary reports whether the symbol can be looked up in a Table.
func (s Symbol) IsBinary() bool {
	return s == Zero || s == One
}

// String renders blanks as "_" so they stay visible in logs and diagrams.
func (s Symbol) String() string {
	if s == Blank {
		return "_"
	}
	return string(s.Byte())
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbol) UnmarshalText(text []byte) error {
	switch string(text) {
	case "0":
		*s = Zero
	case "1":
		*s = One
	case "_", " ", "":
		*s = Blank
	default:
		return fmt.Errorf("invalid symbol %q", text)
	}
	return nil
}

// Move is a head displacement.
type Move int

const (
	Left  Move = -1
	Stay  Move = 0
	Right Move = 1
)

// Valid reports whether m is one of Left, Stay, Right.
func (m Move) Valid() bool {
	return m >= Left && m <= Right
}

func (m Move) String() string {
	switch m {
	case Left:
		return "L"
	case Stay:
		return "S"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}
