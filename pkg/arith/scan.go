package arith

import (
	"math/big"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// ScanRuns returns every maximal run of 0/1 cells on the tape, left to right.
func ScanRuns(tape *domain.Tape) []domain.BinaryRun {
	var runs []domain.BinaryRun
	cells := tape.Cells()
	for i := 0; i < len(cells); {
		if !cells[i].IsBinary() {
			i++
			continue
		}
		start := i
		var sb strings.Builder
		for ; i < len(cells) && cells[i].IsBinary(); i++ {
			sb.WriteByte(cells[i].Byte())
		}
		bin := sb.String()
		dec, _ := new(big.Int).SetString(bin, 2)
		runs = append(runs, domain.BinaryRun{
			Start:   start,
			Binary:  bin,
			Decimal: dec.String(),
		})
	}
	return runs
}

// Significant concatenates every 0/1 cell from the first 1 onward, skipping blanks.
// It returns "" when the tape holds no 1.
func Significant(tape *domain.Tape) string {
	var sb strings.Builder
	seenOne := false
	for _, s := range tape.Cells() {
		if !s.IsBinary() {
			continue
		}
		if s == domain.One {
			seenOne = true
		}
		if seenOne {
			sb.WriteByte(s.Byte())
		}
	}
	return sb.String()
}
