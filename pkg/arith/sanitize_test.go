package arith_test

import (
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "Clean", input: "101 11\n", want: "101 11\n"},
		{name: "Strips ANSI escape", input: "\x1b[A101 11", want: "[A101 11"},
		{name: "Strips NUL and BEL", input: "1\x00 1\x07", want: "1 1"},
		{name: "Keeps tab", input: "1\t1", want: "1\t1"},
		{name: "Invalid UTF-8", input: "1 \xff", wantErr: arith.ErrInvalidUTF8},
		{name: "Too large", input: strings.Repeat("1", arith.DefaultMaxInputSize+1), wantErr: arith.ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := arith.SanitizeInput(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxInputSize_Env(t *testing.T) {
	t.Setenv(arith.EnvMaxInputSize, "8")
	assert.Equal(t, 8, arith.MaxInputSize())

	_, err := arith.SanitizeInput("101 1101")
	assert.NoError(t, err)
	_, err = arith.SanitizeInput("101 11011")
	assert.ErrorIs(t, err, arith.ErrInputTooLarge)

	t.Setenv(arith.EnvMaxInputSize, "nonsense")
	assert.Equal(t, arith.DefaultMaxInputSize, arith.MaxInputSize())
}

func TestCheckInput(t *testing.T) {
	assert.NoError(t, arith.CheckInput("101 11"))
	assert.NoError(t, arith.CheckInput("1\x001"), "control characters are left to operand validation")
	assert.ErrorIs(t, arith.CheckInput("1 \xff"), arith.ErrInvalidUTF8)
	assert.ErrorIs(t, arith.CheckInput(strings.Repeat("1", arith.DefaultMaxInputSize+1)), arith.ErrInputTooLarge)
}
