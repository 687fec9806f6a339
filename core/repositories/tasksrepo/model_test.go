package tasksrepo_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jrazmi/taskbot/core/repositories/tasksrepo"
	"github.com/jrazmi/taskbot/core/tasks"
)

func TestRowRoundTrip(t *testing.T) {
	todo := tasks.NewTodo("a")
	todo.Done = true
	deadline, _ := tasks.NewDeadline("b", "2023-08-31 12:00")
	event, _ := tasks.NewEvent("c", "2023-08-31 12:00", "2023-09-01 12:00")

	for i, want := range []tasks.Task{todo, deadline, event} {
		row := tasksrepo.ToRow(want, i)
		if row.Position != i {
			t.Errorf("Expected position %d, got %d", i, row.Position)
		}
		got, err := row.ToTask()
		if err != nil {
			t.Fatalf("ToTask failed: %v", err)
		}
		if !got.Equal(want) || got.ID != want.ID || got.Done != want.Done {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}
}

func TestRowCorrupt(t *testing.T) {
	rows := []tasksrepo.Row{
		{TaskID: uuid.New(), Kind: "deadline", Description: "x"},
		{TaskID: uuid.New(), Kind: "event", Description: "x"},
		{TaskID: uuid.New(), Kind: "chore", Description: "x"},
	}
	for _, r := range rows {
		if _, err := r.ToTask(); !errors.Is(err, tasksrepo.ErrCorrupt) {
			t.Errorf("Kind %q: expected ErrCorrupt, got %v", r.Kind, err)
		}
	}
}

func TestRowAssignsMissingID(t *testing.T) {
	got, err := tasksrepo.Row{Kind: "todo", Description: "x"}.ToTask()
	if err != nil {
		t.Fatalf("ToTask failed: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Error("Expected a generated ID")
	}
}
