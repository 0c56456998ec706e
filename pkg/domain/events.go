package domain

// StepEvent describes one executed transition.
type StepEvent struct {
	Table      string     `json:"table"`
	Step       int        `json:"step"`
	State      int        `json:"state"`
	Head       int        `json:"head"`
	Read       Symbol     `json:"read"`
	Transition Transition `json:"transition"`
}

// HaltEvent describes the end of a run.
type HaltEvent struct {
	Table     string     `json:"table"`
	Operation Operation  `json:"operation"`
	Steps     int        `json:"steps"`
	Reason    HaltReason `json:"reason"`
	State     int        `json:"state"`
	Head      int        `json:"head"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously inside the step loop and must not block.
type LifecycleHooks struct {
	OnStep func(*StepEvent)
	OnHalt func(*HaltEvent)
}
