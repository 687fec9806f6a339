package console_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jrazmi/taskbot/bridge/console"
	"github.com/jrazmi/taskbot/core/tasks"
)

func TestTaskListNumbersFromZero(t *testing.T) {
	p := console.NewPresenter("")
	got := p.TaskList([]tasks.Task{tasks.NewTodo("a"), tasks.NewTodo("b")})
	want := "Here are the tasks in your list:\n0. [T][ ] a\n1. [T][ ] b"
	if got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}

	if got := p.TaskList(nil); got != "Your task list is empty." {
		t.Errorf("Unexpected empty list response '%s'", got)
	}
}

func TestConfirmations(t *testing.T) {
	p := console.NewPresenter("")
	todo := tasks.NewTodo("a")

	if got := p.Added(todo, 1); !strings.Contains(got, "[T][ ] a") || !strings.HasSuffix(got, "Now you have 1 task in the list.") {
		t.Errorf("Unexpected added response '%s'", got)
	}
	if got := p.Deleted(todo, 3); !strings.HasSuffix(got, "Now you have 3 tasks in the list.") {
		t.Errorf("Unexpected deleted response '%s'", got)
	}
	if got := p.Marked(todo); !strings.HasSuffix(got, "[T][ ] a") {
		t.Errorf("Unexpected marked response '%s'", got)
	}
}

func TestDuplicatesAndFind(t *testing.T) {
	p := console.NewPresenter("")
	if got := p.DuplicatesRemoved(nil); got != "No duplicate tasks found." {
		t.Errorf("Unexpected response '%s'", got)
	}
	got := p.DuplicatesRemoved([]tasks.Task{tasks.NewTodo("a")})
	if got != "The following duplicate tasks were removed:\n0. [T][ ] a" {
		t.Errorf("Unexpected response '%s'", got)
	}
	if got := p.FindResults(nil); got != "No matching tasks found." {
		t.Errorf("Unexpected response '%s'", got)
	}
}

func TestErrors(t *testing.T) {
	p := console.NewPresenter("Duke")
	if got := p.Greeting(); !strings.Contains(got, "Duke") {
		t.Errorf("Expected name in greeting, got '%s'", got)
	}
	if got := p.TaskError("bad date"); got != "Oops! bad date" {
		t.Errorf("Unexpected response '%s'", got)
	}
	if got := p.SaveError(errors.New("disk full")); !strings.Contains(got, "disk full") {
		t.Errorf("Expected cause in save error, got '%s'", got)
	}
}
