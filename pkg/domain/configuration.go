package domain

import "fmt"

// Configuration is the complete mutable machine snapshot: tape, head and state.
// A configuration belongs to exactly one run; use Clone to branch.
type Configuration struct {
	Tape  *Tape
	Head  int
	State int
}

// NewConfiguration places the head on cell 0 in state 0.
func NewConfiguration(tape *Tape) *Configuration {
	return &Configuration{Tape: tape}
}

// Clone returns a deep copy.
func (c *Configuration) Clone() *Configuration {
	return &Configuration{
		Tape:  c.Tape.Clone(),
		Head:  c.Head,
		State: c.State,
	}
}

// Clamp limits pos to [0, capacity-1].
func (c *Configuration) Clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if last := c.Tape.Len() - 1; pos > last {
		return last
	}
	return pos
}

// Window returns the cells in [head-radius, head+radius], clamped to the tape.
// It never mutates the configuration.
func (c *Configuration) Window(radius int) []Symbol {
	start, end := c.WindowBounds(radius)
	out := make([]Symbol, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, c.Tape.Read(i))
	}
	return out
}

// WindowBounds returns the inclusive cell range Window(radius) covers.
func (c *Configuration) WindowBounds(radius int) (start, end int) {
	if radius < 0 {
		radius = 0
	}
	return c.Clamp(c.Head - radius), c.Clamp(c.Head + radius)
}

// Verify runs the post-run sanity checks and returns one message per problem found.
func (c *Configuration) Verify(table *Table) []string {
	var problems []string
	if c.Tape == nil {
		return []string{"configuration has no tape"}
	}
	if c.Head < 0 || c.Head >= c.Tape.Len() {
		problems = append(problems, fmt.Sprintf("head %d outside tape [0,%d)", c.Head, c.Tape.Len()))
	}
	if table != nil && (c.State < 0 || c.State > table.Terminal) {
		problems = append(problems, fmt.Sprintf("state %d outside [0,%d] for table %q", c.State, table.Terminal, table.Name))
	}
	return problems
}
