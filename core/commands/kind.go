package commands

import "strings"

// Kind is the classified intent of an input line.
type Kind string

const (
	KindInvalid    Kind = "invalid"
	KindBye        Kind = "bye"
	KindList       Kind = "list"
	KindMark       Kind = "mark"
	KindUnmark     Kind = "unmark"
	KindDelete     Kind = "delete"
	KindFind       Kind = "find"
	KindTodo       Kind = "todo"
	KindDeadline   Kind = "deadline"
	KindEvent      Kind = "event"
	KindDuplicates Kind = "duplicates"
)

type keyword struct {
	word string
	kind Kind
}

// keywords is scanned in full and the last prefix match wins, so a later
// entry takes precedence over an earlier one sharing its prefix. Keep the
// order when adding keywords.
var keywords = []keyword{
	{"invalid", KindInvalid},
	{"bye", KindBye},
	{"list", KindList},
	{"mark", KindMark},
	{"unmark", KindUnmark},
	{"delete", KindDelete},
	{"find", KindFind},
	{"todo", KindTodo},
	{"deadline", KindDeadline},
	{"event", KindEvent},
	{"duplicates", KindDuplicates},
}

// Classify returns the kind of the last keyword in table order that input
// starts with, or KindInvalid when none does.
func Classify(input string) Kind {
	kind := KindInvalid
	for _, kw := range keywords {
		if strings.HasPrefix(input, kw.word) {
			kind = kw.kind
		}
	}
	return kind
}

// CreatesTask reports whether the kind adds a new task to the list.
func (k Kind) CreatesTask() bool {
	switch k {
	case KindTodo, KindDeadline, KindEvent:
		return true
	default:
		return false
	}
}
