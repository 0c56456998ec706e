package runtime_test

import (
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type hookRecorder struct {
	mock.Mock
}

func (m *hookRecorder) OnStep(e *domain.StepEvent) { m.Called(e.Step, e.State, e.Head, e.Read) }
func (m *hookRecorder) OnHalt(e *domain.HaltEvent) { m.Called(e.Table, e.Steps, e.Reason) }

func TestEngine_LifecycleHooks(t *testing.T) {
	rec := new(hookRecorder)
	rec.On("OnStep", 1, 0, 0, domain.One).Once()
	rec.On("OnStep", 2, 0, 1, domain.Zero).Once()
	rec.On("OnHalt", "scan", 2, domain.HaltStuck).Once()

	engine := runtime.NewEngine(runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnStep: rec.OnStep,
		OnHalt: rec.OnHalt,
	}))
	table := domain.NewTable("scan", domain.OpAdd,
		domain.Row{tr(0, domain.Zero, domain.Right), tr(0, domain.One, domain.Right)},
	)

	res := engine.Run(newConfig(t, "10 1"), table)

	assert.Equal(t, 2, res.Steps)
	rec.AssertExpectations(t)
}

func TestEngine_NilHooksAreSkipped(t *testing.T) {
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(domain.LifecycleHooks{}), runtime.WithLogger(nil))
	table := domain.NewTable("scan", domain.OpAdd,
		domain.Row{tr(0, domain.Zero, domain.Right), tr(0, domain.One, domain.Right)},
	)

	assert.NotPanics(t, func() {
		engine.Run(newConfig(t, "1"), table)
	})
}

func TestEngine_RunWithHooks(t *testing.T) {
	var order []string
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) { order = append(order, "engine-step") },
		OnHalt: func(e *domain.HaltEvent) { order = append(order, "engine-halt") },
	}))
	table := domain.NewTable("scan", domain.OpAdd,
		domain.Row{tr(0, domain.Zero, domain.Right), tr(0, domain.One, domain.Right)},
	)

	var states []int
	res := engine.RunWithHooks(newConfig(t, "1"), table, domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			states = append(states, e.State)
			order = append(order, "run-step")
		},
		OnHalt: func(e *domain.HaltEvent) { order = append(order, "run-halt") },
	})

	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, []int{0}, states)
	assert.Equal(t, []string{"engine-step", "run-step", "engine-halt", "run-halt"}, order)

	order = nil
	engine.Run(newConfig(t, "1"), table)
	assert.Equal(t, []string{"engine-step", "engine-halt"}, order, "run hooks do not leak into later runs")
}
