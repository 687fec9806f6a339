// Package tasks defines the task value tracked by taskbot. A Task is one of
// three kinds (todo, deadline, event) distinguished by Kind; the date fields
// a kind does not use stay zero.
package tasks

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jrazmi/taskbot/sdk/validation"
)

// ErrInvalidDate is returned when a deadline or event date fails to parse.
var ErrInvalidDate = errors.New("invalid date")

// Kind discriminates the task variants.
type Kind string

const (
	KindTodo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

// Marker is the one-letter tag used in displays and persistence lines.
func (k Kind) Marker() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// KindFromMarker reverses Marker.
func KindFromMarker(m string) (Kind, bool) {
	switch m {
	case "T":
		return KindTodo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return "", false
	}
}

// Task is a unit of tracked work. Only Done changes after construction.
type Task struct {
	ID          uuid.UUID
	Kind        Kind
	Description string
	Done        bool

	// DueAt is set for deadlines.
	DueAt time.Time

	// StartAt and EndAt are set for events.
	StartAt time.Time
	EndAt   time.Time
}

// NewTodo builds a todo. Callers reject empty descriptions before this point.
func NewTodo(description string) Task {
	return Task{
		ID:          uuid.New(),
		Kind:        KindTodo,
		Description: description,
	}
}

// NewDeadline builds a deadline due at dueAt (yyyy-MM-dd HH:mm).
func NewDeadline(description, dueAt string) (Task, error) {
	due, err := parseDate("/by", dueAt)
	if err != nil {
		return Task{}, err
	}
	return Task{
		ID:          uuid.New(),
		Kind:        KindDeadline,
		Description: description,
		DueAt:       due,
	}, nil
}

// NewEvent builds an event running from startAt to endAt. Both dates are
// parsed independently and either one failing rejects the event.
func NewEvent(description, startAt, endAt string) (Task, error) {
	start, err := parseDate("/by", startAt)
	if err != nil {
		return Task{}, err
	}
	end, err := parseDate("/to", endAt)
	if err != nil {
		return Task{}, err
	}
	return Task{
		ID:          uuid.New(),
		Kind:        KindEvent,
		Description: description,
		StartAt:     start,
		EndAt:       end,
	}, nil
}

func parseDate(field, text string) (time.Time, error) {
	t, err := validation.ParseDateTime(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w for %s: %q, use yyyy-MM-dd HH:mm", ErrInvalidDate, field, text)
	}
	return t, nil
}

// IsCompleted reports whether the task has been marked done.
func (t Task) IsCompleted() bool {
	return t.Done
}

// Equal reports structural equality: same kind, description and dates.
// ID and completion are ignored.
func (t Task) Equal(o Task) bool {
	return t.Kind == o.Kind &&
		t.Description == o.Description &&
		t.DueAt.Equal(o.DueAt) &&
		t.StartAt.Equal(o.StartAt) &&
		t.EndAt.Equal(o.EndAt)
}

// String is the display rendering, e.g. "[D][X] return book (by: Aug 31 2023 12:00)".
func (t Task) String() string {
	done := " "
	if t.Done {
		done = "X"
	}
	s := fmt.Sprintf("[%s][%s] %s", t.Kind.Marker(), done, t.Description)
	switch t.Kind {
	case KindDeadline:
		s += fmt.Sprintf(" (by: %s)", validation.DisplayDateTime(t.DueAt))
	case KindEvent:
		s += fmt.Sprintf(" (from: %s to: %s)",
			validation.DisplayDateTime(t.StartAt), validation.DisplayDateTime(t.EndAt))
	}
	return s
}
