package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Lookup(t *testing.T) {
	table := NewTable("test", OpAdd,
		Row{{Next: 1, Write: One, Move: Right}, {Next: 0, Write: Zero, Move: Left}},
	)

	assert.Equal(t, 1, table.Terminal)
	assert.Equal(t, 2, table.States())

	tr, ok := table.Lookup(0, Zero)
	require.True(t, ok)
	assert.Equal(t, Transition{Next: 1, Write: One, Move: Right}, tr)

	tr, ok = table.Lookup(0, One)
	require.True(t, ok)
	assert.Equal(t, Transition{Next: 0, Write: Zero, Move: Left}, tr)

	t.Run("Blank is outside the domain", func(t *testing.T) {
		_, ok := table.Lookup(0, Blank)
		assert.False(t, ok)
	})

	t.Run("Terminal state has no row", func(t *testing.T) {
		_, ok := table.Lookup(1, Zero)
		assert.False(t, ok)
	})

	t.Run("Negative state", func(t *testing.T) {
		_, ok := table.Lookup(-1, Zero)
		assert.False(t, ok)
	})
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   *Table
		wantErr bool
	}{
		{
			name:  "Valid",
			table: NewTable("ok", OpAdd, Row{{Next: 1, Write: Blank, Move: Stay}, {Next: 0, Write: One, Move: Right}}),
		},
		{
			name:    "Next state beyond terminal",
			table:   NewTable("bad", OpAdd, Row{{Next: 2}, {Next: 0}}),
			wantErr: true,
		},
		{
			name:    "Move out of range",
			table:   NewTable("bad", OpAdd, Row{{Next: 0, Move: 2}, {Next: 0}}),
			wantErr: true,
		},
		{
			name:    "Terminal does not follow rows",
			table:   &Table{Name: "bad", Rows: []Row{{}}, Terminal: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTable_CloneIsIndependent(t *testing.T) {
	table := NewTable("t", OpAdd, Row{{Next: 0, Write: Zero, Move: Right}, {Next: 0, Write: One, Move: Right}})
	clone := table.Clone()
	clone.Rows[0][0].Write = Blank

	tr, _ := table.Lookup(0, Zero)
	assert.Equal(t, Zero, tr.Write)
}

func TestParseOperation(t *testing.T) {
	for _, op := range Operations {
		got, err := ParseOperation(" " + string(op) + "\n")
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	_, err := ParseOperation("%")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
