// Package tasklist holds the ordered, index-addressed collection of tasks a
// session works on. A TaskList is not safe for concurrent use; it belongs to
// the single command loop that created it.
package tasklist

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jrazmi/taskbot/core/tasks"
)

// ErrIndexOutOfRange is returned for indexes outside [0, Len()).
var ErrIndexOutOfRange = errors.New("index out of range")

// TaskList is an ordered list of tasks. Index 0 is the first task added.
type TaskList struct {
	tasks []tasks.Task
}

// New returns a list seeded with the given tasks, in order.
func New(seed ...tasks.Task) *TaskList {
	return &TaskList{tasks: slices.Clone(seed)}
}

// Add appends t and returns the new count. Duplicates are accepted.
func (l *TaskList) Add(t tasks.Task) int {
	l.tasks = append(l.tasks, t)
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in insertion order.
func (l *TaskList) Tasks() []tasks.Task {
	return slices.Clone(l.tasks)
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Mark sets the task at i as done and returns it.
func (l *TaskList) Mark(i int) (tasks.Task, error) {
	return l.setDone(i, true)
}

// Unmark clears the done flag of the task at i and returns it.
func (l *TaskList) Unmark(i int) (tasks.Task, error) {
	return l.setDone(i, false)
}

func (l *TaskList) setDone(i int, done bool) (tasks.Task, error) {
	if err := l.check(i); err != nil {
		return tasks.Task{}, err
	}
	l.tasks[i].Done = done
	return l.tasks[i], nil
}

// Delete removes and returns the task at i. Later tasks shift down by one.
// On error the list is unchanged.
func (l *TaskList) Delete(i int) (tasks.Task, error) {
	if err := l.check(i); err != nil {
		return tasks.Task{}, err
	}
	t := l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return t, nil
}

// Find returns the tasks whose description contains substring, in order.
// Matching is case-sensitive; an empty substring matches everything.
func (l *TaskList) Find(substring string) []tasks.Task {
	found := []tasks.Task{}
	for _, t := range l.tasks {
		if strings.Contains(t.Description, substring) {
			found = append(found, t)
		}
	}
	return found
}

// RemoveDuplicates keeps the first of each group of structurally equal tasks
// and removes the rest. The removed tasks are returned as a new list in
// their original relative order.
func (l *TaskList) RemoveDuplicates() *TaskList {
	kept := make([]tasks.Task, 0, len(l.tasks))
	removed := New()
	for _, t := range l.tasks {
		if slices.ContainsFunc(kept, t.Equal) {
			removed.Add(t)
			continue
		}
		kept = append(kept, t)
	}
	if removed.Len() > 0 {
		l.tasks = kept
	}
	return removed
}

func (l *TaskList) check(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(l.tasks))
	}
	return nil
}
