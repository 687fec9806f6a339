// Package console is the terminal front end: it renders command results as
// text and runs the read-eval-print loop over a reader and writer.
package console

import (
	"fmt"
	"strings"

	"github.com/jrazmi/taskbot/core/tasks"
)

// Presenter renders responses for a terminal. It holds no task state.
type Presenter struct {
	name string
}

func NewPresenter(name string) *Presenter {
	if name == "" {
		name = "taskbot"
	}
	return &Presenter{name: name}
}

func (p *Presenter) Greeting() string {
	return fmt.Sprintf("Hello! I'm %s.\nWhat can I do for you?", p.name)
}

func (p *Presenter) Farewell() string {
	return "Bye. Hope to see you again soon!"
}

func (p *Presenter) TaskList(ts []tasks.Task) string {
	if len(ts) == 0 {
		return "Your task list is empty."
	}
	return "Here are the tasks in your list:\n" + numbered(ts)
}

func (p *Presenter) Added(t tasks.Task, count int) string {
	return fmt.Sprintf("Got it! I've added this task:\n  %s\nNow you have %s in the list.", t, plural(count))
}

func (p *Presenter) Marked(t tasks.Task) string {
	return "Nice! I've marked this task as done:\n  " + t.String()
}

func (p *Presenter) Unmarked(t tasks.Task) string {
	return "OK, I've marked this task as not done yet:\n  " + t.String()
}

func (p *Presenter) Deleted(t tasks.Task, remaining int) string {
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %s in the list.", t, plural(remaining))
}

func (p *Presenter) FindResults(ts []tasks.Task) string {
	if len(ts) == 0 {
		return "No matching tasks found."
	}
	return "Here are the matching tasks in your list:\n" + numbered(ts)
}

func (p *Presenter) DuplicatesRemoved(ts []tasks.Task) string {
	if len(ts) == 0 {
		return "No duplicate tasks found."
	}
	return "The following duplicate tasks were removed:\n" + numbered(ts)
}

func (p *Presenter) InvalidIndex() string {
	return "Please provide a valid task index. Use `list` to see the indexes."
}

func (p *Presenter) InvalidCommand() string {
	return "Sorry, I don't know what that means. Try todo, deadline, event, list, mark, unmark, delete, find, duplicates or bye."
}

func (p *Presenter) TaskError(msg string) string {
	return "Oops! " + msg
}

func (p *Presenter) SaveError(err error) string {
	return "Warning: your tasks could not be saved: " + err.Error()
}

// numbered lists tasks with the 0-based index mark, unmark and delete take.
func numbered(ts []tasks.Task) string {
	lines := make([]string, len(ts))
	for i, t := range ts {
		lines[i] = fmt.Sprintf("%d. %s", i, t)
	}
	return strings.Join(lines, "\n")
}

func plural(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
