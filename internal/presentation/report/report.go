// Package report formats calculation records as markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Markdown renders a record as a markdown document suitable for glamour.
func Markdown(r *domain.Record) string {
	if r == nil {
		return ""
	}
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s %s %s\n\n", r.Left, r.Operation, r.Right)
	if r.ID != "" {
		fmt.Fprintf(&sb, "Run `%s` using table **%s**.\n\n", r.ID, r.Table)
	} else {
		fmt.Fprintf(&sb, "Table **%s**.\n\n", r.Table)
	}

	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Halt | %s |\n", r.Reason)
	fmt.Fprintf(&sb, "| Steps | %d |\n", r.Steps)
	fmt.Fprintf(&sb, "| Head | %d |\n", r.Head)
	fmt.Fprintf(&sb, "| State | %d of %d |\n", r.State, r.Terminal)
	if len(r.Visited) > 0 {
		ids := make([]string, len(r.Visited))
		for i, s := range r.Visited {
			ids[i] = fmt.Sprintf("q%d", s)
		}
		fmt.Fprintf(&sb, "| Visited | %s |\n", strings.Join(ids, " "))
	}
	sb.WriteString("\n")

	if r.Exhausted {
		sb.WriteString("> **Warning:** the step limit was reached; the tape may be unfinished.\n\n")
	}

	sb.WriteString("## Tape\n\n")
	fmt.Fprintf(&sb, "```\n%s\n```\n\n", r.FinalTape)

	sb.WriteString("## Result on tape\n\n")
	if len(r.Runs) == 0 {
		sb.WriteString("No binary numbers found on the tape.\n\n")
	} else {
		sb.WriteString("| Start | Binary | Decimal |\n|---|---|---|\n")
		for _, run := range r.Runs {
			fmt.Fprintf(&sb, "| %d | `%s` | %s |\n", run.Start, run.Binary, run.Decimal)
		}
		sb.WriteString("\n")
	}
	if r.Significant != "" {
		fmt.Fprintf(&sb, "Significant digits: `%s`\n\n", r.Significant)
	}

	sb.WriteString("## Expected\n\n")
	fmt.Fprintf(&sb, "- Decimal: %s\n", r.ExpectedDecimal)
	fmt.Fprintf(&sb, "- Binary: `%s`\n", r.ExpectedBinary)

	if len(r.Problems) > 0 {
		sb.WriteString("\n## Problems\n\n")
		for _, p := range r.Problems {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
	}

	return sb.String()
}
