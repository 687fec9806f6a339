package commands_test

import (
	"testing"

	"github.com/jrazmi/taskbot/core/commands"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  commands.Kind
	}{
		{"bye", commands.KindBye},
		{"list", commands.KindList},
		{"mark 1", commands.KindMark},
		{"unmark 1", commands.KindUnmark},
		{"delete 0", commands.KindDelete},
		{"find book", commands.KindFind},
		{"todo read", commands.KindTodo},
		{"deadline essay /by 2023-08-31 12:00", commands.KindDeadline},
		{"event trip /by 2023-08-31 12:00 /to 2023-09-01 12:00", commands.KindEvent},
		{"duplicates", commands.KindDuplicates},
		{"invalid", commands.KindInvalid},
		{"", commands.KindInvalid},
		{"hello", commands.KindInvalid},
		{" list", commands.KindInvalid},
		{"LIST", commands.KindInvalid},
		{"listing", commands.KindList},
		{"todox", commands.KindTodo},
		{"byebye", commands.KindBye},
	}

	for _, tt := range tests {
		if got := commands.Classify(tt.input); got != tt.want {
			t.Errorf("Classify(%q): expected '%s', got '%s'", tt.input, tt.want, got)
		}
	}
}

func TestCreatesTask(t *testing.T) {
	for _, k := range []commands.Kind{commands.KindTodo, commands.KindDeadline, commands.KindEvent} {
		if !k.CreatesTask() {
			t.Errorf("Expected %s to create a task", k)
		}
	}
	for _, k := range []commands.Kind{commands.KindList, commands.KindMark, commands.KindDuplicates, commands.KindInvalid} {
		if k.CreatesTask() {
			t.Errorf("Expected %s not to create a task", k)
		}
	}
}
