// Package tasksrepo loads and saves the task list through a pluggable Storer.
// Implementations live under stores/.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/taskbot/core/tasks"
	"github.com/jrazmi/taskbot/sdk/logger"
)

var (
	// ErrIO wraps every failure to read or write the backing store.
	ErrIO = errors.New("task storage failed")

	// ErrCorrupt is returned by stores for data they cannot decode.
	ErrCorrupt = errors.New("task storage is corrupt")
)

// Storer is the backing store for the whole task list. Save replaces the
// stored list with ts, keeping its order.
type Storer interface {
	Load(ctx context.Context) ([]tasks.Task, error)
	Save(ctx context.Context, ts []tasks.Task) error
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new task repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Load returns the saved tasks in order. An empty store gives an empty list.
func (r *Repository) Load(ctx context.Context) ([]tasks.Task, error) {
	ts, err := r.storer.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load: %w", ErrIO, err)
	}
	r.log.InfoContextf(ctx, "loaded %d tasks", len(ts))
	return ts, nil
}

// Save replaces the stored list with ts.
func (r *Repository) Save(ctx context.Context, ts []tasks.Task) error {
	if err := r.storer.Save(ctx, ts); err != nil {
		r.log.ErrorContextf(ctx, "saving %d tasks: %v", len(ts), err)
		return fmt.Errorf("%w: save: %w", ErrIO, err)
	}
	r.log.DebugContext(ctx, "saved tasks", "count", len(ts))
	return nil
}
