package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-run-" + time.Now().Format("20060102150405")

	newRecord := func(id string) *domain.Record {
		return &domain.Record{
			ID:        id,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
			Operation: domain.OpAdd,
			Table:     "addition",
			Left:      "101",
			Right:     "11",
			InputTape: "101 11",
			FinalTape: "101 11",
			Capacity:  206,
			Head:      3,
			Reason:    domain.HaltStuck,
			Runs: []domain.BinaryRun{
				{Start: 0, Binary: "101", Decimal: "5"},
				{Start: 4, Binary: "11", Decimal: "3"},
			},
			ExpectedDecimal: "8",
			ExpectedBinary:  "1000",
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		rec := newRecord(runID)

		err := store.Save(ctx, rec)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, rec.FinalTape, loaded.FinalTape)
		assert.Equal(t, rec.Reason, loaded.Reason)
		assert.Equal(t, rec.Runs, loaded.Runs)
		assert.True(t, rec.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Loaded record is a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		loaded.Runs[0].Binary = "mutated"

		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "101", again.Runs[0].Binary)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, newRecord(runID))
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, newRecord(id1))
		_ = store.Save(ctx, newRecord(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
