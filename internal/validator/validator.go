// Package validator checks transition tables and maps which states a run can visit.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Report describes the state graph of a table walked from state 0.
type Report struct {
	Table             string `json:"table"`
	Reachable         []int  `json:"reachable"`
	Unreachable       []int  `json:"unreachable,omitempty"`
	TerminalReachable bool   `json:"terminal_reachable"`
}

// ValidateTable checks the table structure and crawls its transitions from
// state 0. Unreachable states are reported, not treated as errors.
func ValidateTable(t *domain.Table) (Report, error) {
	if t == nil {
		return Report{}, fmt.Errorf("%w: nil table", domain.ErrInvalidTable)
	}
	if err := t.Validate(); err != nil {
		return Report{}, err
	}

	visited := make(map[int]bool)
	queue := []int{0}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		if t.IsTerminal(current) {
			continue // Sink state
		}
		for _, tr := range t.Rows[current] {
			if !visited[tr.Next] {
				queue = append(queue, tr.Next)
			}
		}
	}

	report := Report{Table: t.Name, TerminalReachable: visited[t.Terminal]}
	for state := 0; state <= t.Terminal; state++ {
		if visited[state] {
			report.Reachable = append(report.Reachable, state)
		} else {
			report.Unreachable = append(report.Unreachable, state)
		}
	}
	return report, nil
}

// String renders the report on one line, e.g. "reachable from q0: 0 1; terminal reachable: no".
func (r Report) String() string {
	states := make([]string, len(r.Reachable))
	for i, s := range r.Reachable {
		states[i] = fmt.Sprint(s)
	}
	answer := "no"
	if r.TerminalReachable {
		answer = "yes"
	}
	return fmt.Sprintf("reachable from q0: %s; terminal reachable: %s", strings.Join(states, " "), answer)
}
