package turing

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
)

// StepLimit is the maximum number of transitions a run executes.
const StepLimit = runtime.StepLimit

// Machine is the high-level entry point for the library.
// It wraps the internal executor and exposes Initialize, Run and Inspect.
type Machine struct {
	engine *runtime.Engine
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New initializes a new Machine.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m.engine = runtime.NewEngine(
		runtime.WithLogger(m.logger),
		runtime.WithLifecycleHooks(m.hooks),
	)
	return m
}

// Initialize builds a configuration for the operand text: a fresh tape holding the
// text, head on cell 0, state 0. The text must already be validated.
func (m *Machine) Initialize(operandText string) (*domain.Configuration, error) {
	tape, err := domain.NewTape(operandText)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tape: %w", err)
	}
	return domain.NewConfiguration(tape), nil
}

// Run executes table on cfg to completion and returns the final configuration.
// exhausted is true only when the step limit stopped the run; a stuck halt and
// acceptance both report false. Use Execute to tell them apart.
func (m *Machine) Run(cfg *domain.Configuration, table *domain.Table) (final *domain.Configuration, exhausted bool) {
	res := m.Execute(cfg, table)
	return res.Config, res.Exhausted()
}

// Execute is Run with the full outcome: halt reason and step count.
func (m *Machine) Execute(cfg *domain.Configuration, table *domain.Table) domain.Result {
	return m.engine.Run(cfg, table)
}

// ExecuteWithHooks is Execute with hooks that observe this run only, on top of
// those given to New.
func (m *Machine) ExecuteWithHooks(cfg *domain.Configuration, table *domain.Table, hooks domain.LifecycleHooks) domain.Result {
	return m.engine.RunWithHooks(cfg, table, hooks)
}

// Inspect returns the cells within radius of the head, clamped to the tape.
func (m *Machine) Inspect(cfg *domain.Configuration, radius int) []domain.Symbol {
	return cfg.Window(radius)
}

var defaultMachine = New()

// Initialize uses a default Machine. See Machine.Initialize.
func Initialize(operandText string) (*domain.Configuration, error) {
	return defaultMachine.Initialize(operandText)
}

// Run uses a default Machine. See Machine.Run.
func Run(cfg *domain.Configuration, table *domain.Table) (*domain.Configuration, bool) {
	return defaultMachine.Run(cfg, table)
}

// Inspect uses a default Machine. See Machine.Inspect.
func Inspect(cfg *domain.Configuration, radius int) []domain.Symbol {
	return defaultMachine.Inspect(cfg, radius)
}
