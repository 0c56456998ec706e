package calculator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/arith"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/tables"
	"github.com/google/uuid"
)

// Request describes one calculation.
type Request struct {
	Left  string           `json:"left"`
	Right string           `json:"right"`
	Op    domain.Operation `json:"op"`
}

// Calculator runs calculations on a Machine and records the outcome.
// Safe for concurrent use when the store is.
type Calculator struct {
	machine *turing.Machine
	store   ports.RunStore
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures the Calculator.
type Option func(*Calculator)

// WithStore persists every record in store.
func WithStore(store ports.RunStore) Option {
	return func(c *Calculator) {
		c.store = store
	}
}

// WithLogger configures a logger for the Calculator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithClock overrides the time source for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

// WithIDGenerator overrides how run IDs are minted.
func WithIDGenerator(gen func() string) Option {
	return func(c *Calculator) {
		c.newID = gen
	}
}

// New creates a Calculator. A nil machine gets a default one.
func New(machine *turing.Machine, opts ...Option) *Calculator {
	if machine == nil {
		machine = turing.New()
	}
	c := &Calculator{
		machine: machine,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate validates req, runs the machine and returns the record.
// The record is saved when a store is configured.
func (c *Calculator) Calculate(ctx context.Context, req Request) (*domain.Record, error) {
	if err := arith.CheckInput(arith.TapeText(req.Left, req.Right)); err != nil {
		return nil, err
	}
	if err := arith.ValidateBinary(req.Left); err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	if err := arith.ValidateBinary(req.Right); err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}

	table, err := tables.ForOperation(req.Op)
	if err != nil {
		return nil, err
	}

	left, err := arith.ToDecimal(req.Left)
	if err != nil {
		return nil, err
	}
	right, err := arith.ToDecimal(req.Right)
	if err != nil {
		return nil, err
	}
	if err := arith.Check(left, right, req.Op); err != nil {
		return nil, err
	}

	input := arith.TapeText(req.Left, req.Right)
	cfg, err := c.machine.Initialize(input)
	if err != nil {
		return nil, err
	}

	visited := map[int]bool{cfg.State: true}
	res := c.machine.ExecuteWithHooks(cfg, table, domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			visited[e.State] = true
			visited[e.Transition.Next] = true
		},
	})
	if res.Exhausted() {
		c.logger.Warn("Run exhausted the step limit; tape may be unfinished",
			"table", table.Name, "steps", res.Steps)
	}

	expected, err := arith.Compute(left, right, req.Op)
	if err != nil {
		return nil, err
	}

	record := &domain.Record{
		ID:        c.newID(),
		CreatedAt: c.now().UTC(),

		Operation: req.Op,
		Table:     table.Name,
		Left:      req.Left,
		Right:     req.Right,

		InputTape: input,
		FinalTape: res.Config.Tape.Trimmed(),
		Capacity:  res.Config.Tape.Len(),
		Head:      res.Config.Head,
		State:     res.Config.State,
		Terminal:  table.Terminal,
		Steps:     res.Steps,
		Reason:    res.Reason,
		Exhausted: res.Exhausted(),
		Visited:   sortedStates(visited),

		Runs:        arith.ScanRuns(res.Config.Tape),
		Significant: arith.Significant(res.Config.Tape),

		ExpectedDecimal: expected.String(),
		ExpectedBinary:  arith.FromDecimal(expected),

		Problems: res.Config.Verify(table),
	}

	c.logger.Info("Calculation finished",
		"run_id", record.ID,
		"op", string(req.Op),
		"reason", record.Reason,
		"steps", record.Steps,
	)

	if c.store != nil {
		if err := c.store.Save(ctx, record); err != nil {
			return record, fmt.Errorf("failed to save run %s: %w", record.ID, err)
		}
	}
	return record, nil
}

// Get loads a stored record.
func (c *Calculator) Get(ctx context.Context, id string) (*domain.Record, error) {
	if c.store == nil {
		return nil, domain.ErrRunNotFound
	}
	return c.store.Load(ctx, id)
}

// History returns every stored record, newest first.
// Runs that vanish between List and Load (expired or deleted) are skipped.
func (c *Calculator) History(ctx context.Context) ([]*domain.Record, error) {
	if c.store == nil {
		return nil, nil
	}
	ids, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	records := make([]*domain.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := c.store.Load(ctx, id)
		if err != nil {
			c.logger.Debug("Skipping unreadable run", "run_id", id, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// Delete removes a stored record.
func (c *Calculator) Delete(ctx context.Context, id string) error {
	if c.store == nil {
		return nil
	}
	return c.store.Delete(ctx, id)
}

func sortedStates(set map[int]bool) []int {
	states := make([]int, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Ints(states)
	return states
}
