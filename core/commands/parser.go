// Package commands interprets one line of user input against a task list:
// it classifies the line, validates and extracts its parameters, applies
// the change, persists it and renders the response.
package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jrazmi/taskbot/core/tasklist"
	"github.com/jrazmi/taskbot/core/tasks"
	"github.com/jrazmi/taskbot/sdk/logger"
)

// Storer persists the full task list after each change.
type Storer interface {
	Save(ctx context.Context, ts []tasks.Task) error
}

// Presenter renders responses. It only ever receives copies of tasks.
type Presenter interface {
	Farewell() string
	TaskList(ts []tasks.Task) string
	Added(t tasks.Task, count int) string
	Marked(t tasks.Task) string
	Unmarked(t tasks.Task) string
	Deleted(t tasks.Task, remaining int) string
	FindResults(ts []tasks.Task) string
	DuplicatesRemoved(ts []tasks.Task) string
	InvalidIndex() string
	InvalidCommand() string
	TaskError(msg string) string
	SaveError(err error) string
}

// Result is the outcome of one command.
type Result struct {
	Kind     Kind
	Response string

	// Err is the failure behind Response, if any. A save failure is
	// reported here even though the in-memory change was kept.
	Err error

	// Exit asks the caller to end the session.
	Exit bool
}

// Parser owns the task list for a session.
type Parser struct {
	log       *logger.Logger
	list      *tasklist.TaskList
	store     Storer
	presenter Presenter
}

func New(log *logger.Logger, list *tasklist.TaskList, store Storer, presenter Presenter) (*Parser, error) {
	if list == nil {
		return nil, ErrListNil
	}
	if store == nil {
		return nil, ErrStoreNil
	}
	if presenter == nil {
		return nil, ErrPresenterNil
	}
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Parser{log: log, list: list, store: store, presenter: presenter}, nil
}

// Tasks returns a copy of the current list.
func (p *Parser) Tasks() []tasks.Task {
	return p.list.Tasks()
}

// Execute runs one line of input and returns the response.
func (p *Parser) Execute(ctx context.Context, input string) Result {
	kind := Classify(input)
	p.log.DebugContext(ctx, "command", "kind", kind)

	res := Result{Kind: kind}
	if kind.CreatesTask() {
		res.Response, res.Err = p.addTask(ctx, kind, input)
		return res
	}

	switch kind {
	case KindDuplicates:
		res.Response, res.Err = p.removeDuplicates(ctx)
	case KindBye:
		res.Response = p.presenter.Farewell()
		res.Exit = true
	case KindList:
		res.Response = p.presenter.TaskList(p.list.Tasks())
	case KindMark:
		res.Response, res.Err = p.withIndex(ctx, input, func(i int) (string, error) {
			t, err := p.list.Mark(i)
			if err != nil {
				return "", err
			}
			return p.presenter.Marked(t), nil
		})
	case KindUnmark:
		res.Response, res.Err = p.withIndex(ctx, input, func(i int) (string, error) {
			t, err := p.list.Unmark(i)
			if err != nil {
				return "", err
			}
			return p.presenter.Unmarked(t), nil
		})
	case KindDelete:
		res.Response, res.Err = p.withIndex(ctx, input, func(i int) (string, error) {
			t, err := p.list.Delete(i)
			if err != nil {
				return "", err
			}
			return p.presenter.Deleted(t, p.list.Len()), nil
		})
	case KindFind:
		res.Response, res.Err = p.find(input)
	default:
		res.Response = p.presenter.InvalidCommand()
		res.Err = fmt.Errorf("%w: %q", ErrInvalidCommand, input)
	}
	return res
}

// withIndex parses the second token of input as a list index and applies
// fn. A token that is not a number counts as out of range.
func (p *Parser) withIndex(ctx context.Context, input string, fn func(i int) (string, error)) (string, error) {
	fields := strings.Fields(input)
	if len(fields) < 2 {
		return p.presenter.InvalidIndex(), fmt.Errorf("%w: missing index", tasklist.ErrIndexOutOfRange)
	}
	i, err := strconv.Atoi(fields[1])
	if err != nil {
		return p.presenter.InvalidIndex(), fmt.Errorf("%w: %q is not a number", tasklist.ErrIndexOutOfRange, fields[1])
	}

	msg, err := fn(i)
	if err != nil {
		return p.presenter.InvalidIndex(), err
	}
	return p.persist(ctx, msg)
}

func (p *Parser) find(input string) (string, error) {
	_, query, ok := strings.Cut(input, " ")
	if !ok {
		return p.presenter.TaskError("Tell me what to find, e.g. `find book`."), invalid("find needs a search term")
	}
	return p.presenter.FindResults(p.list.Find(query)), nil
}

func (p *Parser) addTask(ctx context.Context, kind Kind, input string) (string, error) {
	info, err := taskInfo(kind, input)
	if err != nil {
		return p.presenter.TaskError(err.Error()), err
	}
	t, err := buildTask(kind, info)
	if err != nil {
		return p.presenter.TaskError(err.Error()), err
	}

	count := p.list.Add(t)
	p.log.InfoContext(ctx, "task added", "id", t.ID, "kind", t.Kind, "count", count)
	return p.persist(ctx, p.presenter.Added(t, count))
}

func (p *Parser) removeDuplicates(ctx context.Context) (string, error) {
	removed := p.list.RemoveDuplicates()
	msg := p.presenter.DuplicatesRemoved(removed.Tasks())
	if removed.Len() == 0 {
		return msg, nil
	}
	p.log.InfoContext(ctx, "duplicates removed", "removed", removed.Len(), "count", p.list.Len())
	return p.persist(ctx, msg)
}

// persist saves the list after a change. The change is kept even when the
// save fails; the response then carries both the outcome and the failure.
func (p *Parser) persist(ctx context.Context, msg string) (string, error) {
	if err := p.store.Save(ctx, p.list.Tasks()); err != nil {
		p.log.ErrorContext(ctx, "save tasks", "err", err)
		return msg + "\n" + p.presenter.SaveError(err), fmt.Errorf("save tasks: %w", err)
	}
	return msg, nil
}

// IsUserError reports whether err came from bad input rather than from
// storage.
func IsUserError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidCommand) ||
		errors.Is(err, tasks.ErrInvalidDate) ||
		errors.Is(err, tasklist.ErrIndexOutOfRange)
}
