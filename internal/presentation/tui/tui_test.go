package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_Ascii(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, 8, strings.Count(out, "\n"))
}

func TestPlainRenderer(t *testing.T) {
	render := tui.NewPlainRenderer()

	out, err := render("# Result\n\nDecimal: 8\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Result")
	assert.Contains(t, out, "Decimal: 8")
}
