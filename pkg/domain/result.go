package domain

// HaltReason explains why a run stopped.
type HaltReason string

const (
	// HaltAccepted means the terminal state was reached.
	HaltAccepted HaltReason = "accepted"
	// HaltStuck means the head rested on a symbol the table cannot look up (a Blank)
	// before the terminal state was reached.
	HaltStuck HaltReason = "stuck"
	// HaltExhausted means the step limit ran out. The configuration may be unfinished.
	HaltExhausted HaltReason = "exhausted"
)

// Result is the outcome of one run.
type Result struct {
	Config *Configuration
	Steps  int
	Reason HaltReason
}

// Exhausted reports whether the run hit the step limit.
func (r Result) Exhausted() bool {
	return r.Reason == HaltExhausted
}
