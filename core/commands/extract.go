package commands

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jrazmi/taskbot/core/tasks"
)

const (
	bySep = " /by "
	toSep = " /to "

	msgEmptyDescription = "Task description cannot be empty!"
	msgEventMarkers     = "An event must contain a description, start and end specified with `/by` and `/to`!"
	msgEventEmpty       = "Description, /by and /to cannot be empty!"
	msgDeadlineEmpty    = "Deadline description and /by cannot be empty!"
)

// taskInfo strips the keyword and one space from input. The keyword must
// be followed by a space and some non-blank text.
func taskInfo(kind Kind, input string) (string, error) {
	info, ok := strings.CutPrefix(input, string(kind)+" ")
	if !ok || strings.TrimSpace(info) == "" {
		return "", invalid(msgEmptyDescription)
	}
	return info, nil
}

// hasMarker reports whether sep occurs in s with a word character on
// both sides. Letters and digits from any script count.
func hasMarker(s, sep string) bool {
	for off := 0; ; {
		i := strings.Index(s[off:], sep)
		if i < 0 {
			return false
		}
		i += off
		before, _ := utf8.DecodeLastRuneInString(s[:i])
		after, _ := utf8.DecodeRuneInString(s[i+len(sep):])
		if isWordRune(before) && isWordRune(after) {
			return true
		}
		off = i + 1
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// buildTask extracts the fields for kind from info and constructs the task.
func buildTask(kind Kind, info string) (tasks.Task, error) {
	switch kind {
	case KindDeadline:
		return buildDeadline(info)
	case KindEvent:
		return buildEvent(info)
	default:
		return buildTodo(info)
	}
}

func buildTodo(info string) (tasks.Task, error) {
	description := strings.TrimSpace(info)
	if description == "" {
		return tasks.Task{}, invalid(msgEmptyDescription)
	}
	return tasks.NewTodo(description), nil
}

func buildDeadline(info string) (tasks.Task, error) {
	parts := strings.SplitN(info, bySep, 2)
	if len(parts) != 2 {
		return tasks.Task{}, invalid(msgDeadlineEmpty)
	}
	description, by := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if description == "" || by == "" {
		return tasks.Task{}, invalid(msgDeadlineEmpty)
	}
	return tasks.NewDeadline(description, by)
}

// buildEvent accepts /by and /to in either order. The description always
// precedes both markers, the start follows /by up to /to, and the end
// follows /to up to /by.
func buildEvent(info string) (tasks.Task, error) {
	if !hasMarker(info, bySep) || !hasMarker(info, toSep) {
		return tasks.Task{}, invalid(msgEventMarkers)
	}

	start, ok := between(info, bySep, toSep)
	if !ok {
		return tasks.Task{}, invalid(msgEventEmpty)
	}
	end, ok := between(info, toSep, bySep)
	if !ok {
		return tasks.Task{}, invalid(msgEventEmpty)
	}
	description, _ := segment(info, toSep, 0)
	description, _ = segment(description, bySep, 0)

	description = strings.TrimSpace(description)
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if description == "" || start == "" || end == "" {
		return tasks.Task{}, invalid(msgEventEmpty)
	}
	return tasks.NewEvent(description, start, end)
}

// between returns the text after the first open marker, cut at the next
// close marker or at the next open marker, whichever comes first.
func between(s, open, stop string) (string, bool) {
	after, ok := segment(s, open, 1)
	if !ok {
		return "", false
	}
	before, _ := segment(after, stop, 0)
	return before, true
}

// segment returns the i-th piece of s split on sep.
func segment(s, sep string, i int) (string, bool) {
	parts := strings.Split(s, sep)
	if i >= len(parts) {
		return "", false
	}
	return parts[i], true
}
