package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// StepLimit bounds the number of transitions a single run may execute.
const StepLimit = 10000

// Engine is the Turing machine executor.
// It holds only immutable options, so one Engine can drive any number of independent runs.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an executor.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step executes one transition on cfg.
//
// It reports false without touching cfg when there is nothing to execute: the
// machine is in the terminal state or the head rests on a Blank (a stuck halt).
// Otherwise it writes at the current head, then moves the head clamped to the
// tape bounds, then changes state.
func (e *Engine) Step(cfg *domain.Configuration, table *domain.Table) (domain.Transition, bool) {
	if cfg.State >= table.Terminal {
		return domain.Transition{}, false
	}

	symbol := cfg.Tape.Read(cfg.Head)
	if !symbol.IsBinary() {
		return domain.Transition{}, false
	}

	t, ok := table.Lookup(cfg.State, symbol)
	if !ok {
		return domain.Transition{}, false
	}

	cfg.Tape.Write(cfg.Head, t.Write)
	cfg.Head = cfg.Clamp(cfg.Head + int(t.Move))
	cfg.State = t.Next

	return t, true
}

// Run drives cfg until the terminal state, a stuck halt or StepLimit.
// cfg is mutated in place and returned inside the Result.
func (e *Engine) Run(cfg *domain.Configuration, table *domain.Table) domain.Result {
	return e.RunWithHooks(cfg, table, domain.LifecycleHooks{})
}

// RunWithHooks is Run with extra hooks for this run only. They fire after the
// engine's own hooks.
func (e *Engine) RunWithHooks(cfg *domain.Configuration, table *domain.Table, extra domain.LifecycleHooks) domain.Result {
	logger := e.logger.With("table", table.Name)
	logger.Debug("run started", "head", cfg.Head, "state", cfg.State, "capacity", cfg.Tape.Len())

	steps := 0
	for cfg.State < table.Terminal && steps < StepLimit {
		head, state := cfg.Head, cfg.State
		read := cfg.Tape.Read(head)

		t, ok := e.Step(cfg, table)
		if !ok {
			break
		}
		steps++

		if e.hooks.OnStep != nil || extra.OnStep != nil {
			event := &domain.StepEvent{
				Table:      table.Name,
				Step:       steps,
				State:      state,
				Head:       head,
				Read:       read,
				Transition: t,
			}
			if e.hooks.OnStep != nil {
				e.hooks.OnStep(event)
			}
			if extra.OnStep != nil {
				extra.OnStep(event)
			}
		}
	}

	// Exhaustion takes precedence: HaltAccepted implies steps < StepLimit.
	reason := domain.HaltStuck
	switch {
	case steps >= StepLimit:
		reason = domain.HaltExhausted
	case cfg.State >= table.Terminal:
		reason = domain.HaltAccepted
	}

	if reason == domain.HaltExhausted {
		logger.Warn("step limit reached", "steps", steps, "head", cfg.Head, "state", cfg.State)
	} else {
		logger.Debug("run halted", "reason", reason, "steps", steps, "head", cfg.Head, "state", cfg.State)
	}

	if e.hooks.OnHalt != nil || extra.OnHalt != nil {
		event := &domain.HaltEvent{
			Table:     table.Name,
			Operation: table.Operation,
			Steps:     steps,
			Reason:    reason,
			State:     cfg.State,
			Head:      cfg.Head,
		}
		if e.hooks.OnHalt != nil {
			e.hooks.OnHalt(event)
		}
		if extra.OnHalt != nil {
			extra.OnHalt(event)
		}
	}

	return domain.Result{Config: cfg, Steps: steps, Reason: reason}
}
