package tasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jrazmi/taskbot/sdk/validation"
)

// ErrMalformedRecord is returned by ParseRecord for lines it cannot decode.
var ErrMalformedRecord = errors.New("malformed task record")

const recordSep = " | "

// Record renders the persistence line for t:
//
//	T | 0 | <id> | description
//	D | 1 | <id> | 2023-08-31 12:00 | description
//	E | 0 | <id> | 2023-08-31 12:00 | 2023-09-01 12:00 | description
//
// The description is always last so it may itself contain the separator.
func (t Task) Record() string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.Kind.Marker(), done, t.ID.String()}
	switch t.Kind {
	case KindDeadline:
		fields = append(fields, validation.FormatDateTime(t.DueAt))
	case KindEvent:
		fields = append(fields, validation.FormatDateTime(t.StartAt), validation.FormatDateTime(t.EndAt))
	}
	fields = append(fields, t.Description)
	return strings.Join(fields, recordSep)
}

// ParseRecord decodes a line produced by Record.
func ParseRecord(line string) (Task, error) {
	head := strings.SplitN(line, recordSep, 3)
	if len(head) != 3 {
		return Task{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	kind, ok := KindFromMarker(head[0])
	if !ok {
		return Task{}, fmt.Errorf("%w: unknown kind %q", ErrMalformedRecord, head[0])
	}

	var done bool
	switch head[1] {
	case "0":
	case "1":
		done = true
	default:
		return Task{}, fmt.Errorf("%w: completion flag %q", ErrMalformedRecord, head[1])
	}

	dates := 0
	switch kind {
	case KindDeadline:
		dates = 1
	case KindEvent:
		dates = 2
	}

	// id, dates..., description
	rest := strings.SplitN(head[2], recordSep, dates+2)
	if len(rest) != dates+2 {
		return Task{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	id, err := uuid.Parse(rest[0])
	if err != nil {
		return Task{}, fmt.Errorf("%w: id: %w", ErrMalformedRecord, err)
	}

	var t Task
	description := rest[len(rest)-1]
	switch kind {
	case KindTodo:
		t = NewTodo(description)
	case KindDeadline:
		t, err = NewDeadline(description, rest[1])
	case KindEvent:
		t, err = NewEvent(description, rest[1], rest[2])
	}
	if err != nil {
		return Task{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	t.ID = id
	t.Done = done
	return t, nil
}
