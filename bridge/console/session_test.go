package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jrazmi/taskbot/bridge/console"
	"github.com/jrazmi/taskbot/core/commands"
	"github.com/jrazmi/taskbot/core/tasklist"
	"github.com/jrazmi/taskbot/core/tasks"
	"github.com/jrazmi/taskbot/sdk/logger"
)

type memoryStorer struct {
	saved []tasks.Task
}

func (m *memoryStorer) Save(ctx context.Context, ts []tasks.Task) error {
	m.saved = ts
	return nil
}

func newSession(t *testing.T, opts ...console.SessionOption) (*console.Session, *memoryStorer) {
	t.Helper()
	log := logger.NewDiscard()
	store := &memoryStorer{}
	parser, err := commands.New(log, tasklist.New(), store, console.NewPresenter(""))
	if err != nil {
		t.Fatalf("commands.New failed: %v", err)
	}
	return console.NewSession(log, parser, opts...), store
}

func TestSessionRunsUntilBye(t *testing.T) {
	s, store := newSession(t)

	in := strings.NewReader("todo read book\n\n   \nevent trip /to 2023-09-01 12:00 /by 2023-08-31 12:00\nbye\ntodo never\n")
	var out bytes.Buffer
	if err := s.Run(context.Background(), in, &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Now you have 2 tasks in the list.") {
		t.Errorf("Expected second add confirmation, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "Bye. Hope to see you again soon!\n") {
		t.Errorf("Expected farewell last, got:\n%s", got)
	}
	if strings.Contains(got, "never") {
		t.Errorf("Expected input after bye to be ignored, got:\n%s", got)
	}
	if len(store.saved) != 2 {
		t.Errorf("Expected 2 saved tasks, got %d", len(store.saved))
	}
}

func TestSessionStopsAtEOF(t *testing.T) {
	s, _ := newSession(t, console.WithGreeting("hi"), console.WithPrompt("> "))

	var out bytes.Buffer
	if err := s.Run(context.Background(), strings.NewReader("list\r\n"), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "hi\n> Your task list is empty.\n> "
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestSessionCancelled(t *testing.T) {
	s, _ := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := s.Run(ctx, strings.NewReader("list\n"), &out); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}
