package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// RunStore defines the interface for persisting calculation records.
type RunStore interface {
	// Save persists the record under record.ID.
	Save(ctx context.Context, record *domain.Record) error

	// Load retrieves the record for a given run ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes the record for a given run ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of every stored run. Order is up to the store;
	// callers that need chronological order sort the loaded records.
	List(ctx context.Context) ([]string, error)
}
