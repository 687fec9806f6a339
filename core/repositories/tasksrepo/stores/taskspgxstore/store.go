// Package taskspgxstore keeps the task list in the postgres tasks table.
package taskspgxstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskbot/core/repositories/tasksrepo"
	"github.com/jrazmi/taskbot/core/tasks"
	"github.com/jrazmi/taskbot/infrastructure/postgresdb"
	"github.com/jrazmi/taskbot/sdk/logger"
)

const (
	selectTasks = `
		SELECT task_id, position, kind, description, done, due_at, start_at, end_at
		FROM public.tasks
		ORDER BY position`

	deleteTasks = `DELETE FROM public.tasks`

	insertTask = `
		INSERT INTO public.tasks (task_id, position, kind, description, done, due_at, start_at, end_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
)

// Store provides database access for tasks.
type Store struct {
	log     *logger.Logger
	pool    *postgresdb.Pool
	timeout time.Duration
}

// NewStore creates a task store. timeout bounds each Load and Save when the
// caller's context has no deadline; zero means no bound.
func NewStore(log *logger.Logger, pool *postgresdb.Pool, timeout time.Duration) *Store {
	return &Store{log: log, pool: pool, timeout: timeout}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Load returns every task ordered by position.
func (s *Store) Load(ctx context.Context) ([]tasks.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, selectTasks)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Row])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	ts := make([]tasks.Task, 0, len(records))
	for _, r := range records {
		t, err := r.ToTask()
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// Save replaces the table contents with ts in one transaction.
func (s *Store) Save(ctx context.Context, ts []tasks.Task) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", postgresdb.HandlePgError(err))
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteTasks); err != nil {
		return fmt.Errorf("clear tasks: %w", postgresdb.HandlePgError(err))
	}

	batch := &pgx.Batch{}
	for i, t := range ts {
		r := tasksrepo.ToRow(t, i)
		batch.Queue(insertTask, r.TaskID, r.Position, r.Kind, r.Description, r.Done, r.DueAt, r.StartAt, r.EndAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert tasks: %w", postgresdb.HandlePgError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", postgresdb.HandlePgError(err))
	}
	s.log.DebugContext(ctx, "replaced tasks", "count", len(ts))
	return nil
}
