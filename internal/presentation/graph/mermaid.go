package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []int
	CurrentState  int
}

// RunOverlay builds the overlay for a recorded run.
func RunOverlay(r *domain.Record) *GraphOverlay {
	return &GraphOverlay{
		VisitedStates: append([]int(nil), r.Visited...),
		CurrentState:  r.State,
	}
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 for a transition table.
// Each edge is labelled "read/write move". The terminal state is styled and
// linked to the final pseudo-state; overlay styles are applied when provided.
func GenerateMermaid(table *domain.Table, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	if table == nil {
		return sb.String()
	}
	if table.Name != "" {
		sb.WriteString(fmt.Sprintf("    %%%% %s (%s)\n", table.Name, table.Operation))
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", stateID(0)))

	for state, row := range table.Rows {
		for sym, t := range row {
			read := domain.Symbol(sym)
			sb.WriteString(fmt.Sprintf("    %s --> %s: %s/%s %s\n",
				stateID(state), stateID(t.Next), read, t.Write, t.Move))
		}
	}

	terminal := stateID(table.Terminal)
	sb.WriteString(fmt.Sprintf("    %s --> [*]\n", terminal))
	sb.WriteString("\n    classDef terminal fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px,color:#000\n")
	sb.WriteString(fmt.Sprintf("    class %s terminal\n", terminal))

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		seen := make(map[int]bool)
		for _, s := range overlay.VisitedStates {
			if seen[s] || s < 0 || s > table.Terminal || s == overlay.CurrentState {
				continue
			}
			seen[s] = true
			sb.WriteString(fmt.Sprintf("    class %s visited\n", stateID(s)))
		}
		if overlay.CurrentState >= 0 && overlay.CurrentState <= table.Terminal {
			sb.WriteString(fmt.Sprintf("    class %s current\n", stateID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

func stateID(state int) string {
	return fmt.Sprintf("q%d", state)
}
