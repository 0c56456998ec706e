package calculator_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/arith"
	"github.com/aretw0/turing/pkg/calculator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return start.Add(time.Duration(n) * time.Minute)
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("run-%d", n)
	}
}

func newCalculator(opts ...calculator.Option) (*calculator.Calculator, *memory.Store) {
	store := memory.NewStore()
	base := []calculator.Option{
		calculator.WithStore(store),
		calculator.WithClock(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))),
		calculator.WithIDGenerator(sequentialIDs()),
	}
	return calculator.New(nil, append(base, opts...)...), store
}

func TestCalculate_Addition(t *testing.T) {
	calc, store := newCalculator()
	ctx := context.Background()

	rec, err := calc.Calculate(ctx, calculator.Request{Left: "101", Right: "11", Op: domain.OpAdd})
	require.NoError(t, err)

	assert.Equal(t, "run-1", rec.ID)
	assert.Equal(t, "addition", rec.Table)
	assert.Equal(t, "101 11", rec.InputTape)
	assert.Equal(t, "101 11", rec.FinalTape)
	assert.Equal(t, domain.HaltStuck, rec.Reason)
	assert.False(t, rec.Exhausted)
	assert.Equal(t, 3, rec.Steps)
	assert.Equal(t, 3, rec.Head)
	assert.Equal(t, []int{0}, rec.Visited)
	assert.Equal(t, 5, rec.Terminal)
	assert.Equal(t, 6+domain.TapeMargin, rec.Capacity)
	assert.Equal(t, "8", rec.ExpectedDecimal)
	assert.Equal(t, "1000", rec.ExpectedBinary)
	assert.Equal(t, "10111", rec.Significant)
	assert.Equal(t, []domain.BinaryRun{
		{Start: 0, Binary: "101", Decimal: "5"},
		{Start: 4, Binary: "11", Decimal: "3"},
	}, rec.Runs)
	assert.Empty(t, rec.Problems)

	stored, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
}

func TestCalculate_ExhaustedMultiplication(t *testing.T) {
	calc, _ := newCalculator()

	rec, err := calc.Calculate(context.Background(), calculator.Request{Left: "11", Right: "1", Op: domain.OpMultiply})
	require.NoError(t, err)

	assert.True(t, rec.Exhausted)
	assert.Equal(t, domain.HaltExhausted, rec.Reason)
	assert.Equal(t, "3", rec.ExpectedDecimal)
	assert.Equal(t, 1, rec.State)
	assert.Equal(t, []int{0, 1, 2}, rec.Visited)
}

func TestCalculate_Rejections(t *testing.T) {
	calc, store := newCalculator()
	ctx := context.Background()

	tests := []struct {
		name string
		req  calculator.Request
		want error
	}{
		{"Bad left", calculator.Request{Left: "12", Right: "1", Op: domain.OpAdd}, domain.ErrInvalidOperand},
		{"Control character", calculator.Request{Left: "1\x001", Right: "1", Op: domain.OpAdd}, domain.ErrInvalidOperand},
		{"Empty right", calculator.Request{Left: "1", Right: "", Op: domain.OpAdd}, domain.ErrInvalidOperand},
		{"Unknown op", calculator.Request{Left: "1", Right: "1", Op: "%"}, domain.ErrUnknownOperation},
		{"Negative difference", calculator.Request{Left: "1", Right: "11", Op: domain.OpSubtract}, domain.ErrNegativeDifference},
		{"Division by zero", calculator.Request{Left: "1", Right: "0", Op: domain.OpDivide}, domain.ErrDivisionByZero},
		{"Too large", calculator.Request{Left: strings.Repeat("1", arith.DefaultMaxInputSize), Right: "1", Op: domain.OpAdd}, arith.ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := calc.Calculate(ctx, tt.req)
			assert.Nil(t, rec)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "rejected requests are never stored")
}

func TestHistory_NewestFirst(t *testing.T) {
	calc, _ := newCalculator()
	ctx := context.Background()

	_, err := calc.Calculate(ctx, calculator.Request{Left: "1", Right: "1", Op: domain.OpAdd})
	require.NoError(t, err)
	_, err = calc.Calculate(ctx, calculator.Request{Left: "10", Right: "1", Op: domain.OpDivide})
	require.NoError(t, err)

	history, err := calc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "run-2", history[0].ID)
	assert.Equal(t, "run-1", history[1].ID)

	got, err := calc.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OpAdd, got.Operation)

	require.NoError(t, calc.Delete(ctx, "run-1"))
	_, err = calc.Get(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestCalculator_WithoutStore(t *testing.T) {
	calc := calculator.New(nil)
	ctx := context.Background()

	rec, err := calc.Calculate(ctx, calculator.Request{Left: "1", Right: "1", Op: domain.OpAdd})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	_, err = calc.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	history, err := calc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
