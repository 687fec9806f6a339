package tasksrepo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jrazmi/taskbot/core/tasks"
)

// Row is the column/field view of a task shared by the structured stores.
// Date fields are nil when the task kind does not use them.
type Row struct {
	TaskID      uuid.UUID  `db:"task_id" yaml:"id"`
	Position    int        `db:"position" yaml:"-"`
	Kind        string     `db:"kind" yaml:"kind"`
	Description string     `db:"description" yaml:"description"`
	Done        bool       `db:"done" yaml:"done"`
	DueAt       *time.Time `db:"due_at" yaml:"due_at,omitempty"`
	StartAt     *time.Time `db:"start_at" yaml:"start_at,omitempty"`
	EndAt       *time.Time `db:"end_at" yaml:"end_at,omitempty"`
}

// ToRow converts t for storage at position.
func ToRow(t tasks.Task, position int) Row {
	r := Row{
		TaskID:      t.ID,
		Position:    position,
		Kind:        string(t.Kind),
		Description: t.Description,
		Done:        t.Done,
	}
	switch t.Kind {
	case tasks.KindDeadline:
		r.DueAt = &t.DueAt
	case tasks.KindEvent:
		r.StartAt = &t.StartAt
		r.EndAt = &t.EndAt
	}
	return r
}

// ToTask converts r back, checking that the dates its kind needs are present.
func (r Row) ToTask() (tasks.Task, error) {
	t := tasks.Task{
		ID:          r.TaskID,
		Kind:        tasks.Kind(r.Kind),
		Description: r.Description,
		Done:        r.Done,
	}
	switch t.Kind {
	case tasks.KindTodo:
	case tasks.KindDeadline:
		if r.DueAt == nil {
			return tasks.Task{}, fmt.Errorf("%w: deadline %s has no due date", ErrCorrupt, r.TaskID)
		}
		t.DueAt = *r.DueAt
	case tasks.KindEvent:
		if r.StartAt == nil || r.EndAt == nil {
			return tasks.Task{}, fmt.Errorf("%w: event %s is missing a date", ErrCorrupt, r.TaskID)
		}
		t.StartAt, t.EndAt = *r.StartAt, *r.EndAt
	default:
		return tasks.Task{}, fmt.Errorf("%w: unknown kind %q", ErrCorrupt, r.Kind)
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t, nil
}
