// Package tape renders a window of the tape around the head.
package tape

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/muesli/termenv"
)

// DefaultRadius is the number of cells shown on each side of the head.
const DefaultRadius = 20

// Strip renders the cells in [head-radius, head+radius] as one line.
// Blank cells show as "_" and the head cell is bracketed, e.g. "01_[1]1".
// The head cell is also highlighted when the profile supports color.
func Strip(cfg *domain.Configuration, radius int, profile termenv.Profile) string {
	if cfg == nil || cfg.Tape == nil || cfg.Tape.Len() == 0 {
		return ""
	}
	start, end := cfg.WindowBounds(radius)

	var sb strings.Builder
	for i := start; i <= end; i++ {
		cell := cfg.Tape.Read(i).String()
		if i != cfg.Head {
			sb.WriteString(cell)
			continue
		}
		head := profile.String("[" + cell + "]").Bold().Foreground(profile.Color("#fbc02d"))
		sb.WriteString(head.String())
	}
	return sb.String()
}

// Status renders the head position and state line printed under a strip.
func Status(cfg *domain.Configuration) string {
	if cfg == nil {
		return ""
	}
	return fmt.Sprintf("head: %d, state: %d", cfg.Head, cfg.State)
}
