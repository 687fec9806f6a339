package commands

import "testing"

func TestClassifyLastMatchWins(t *testing.T) {
	saved := keywords
	t.Cleanup(func() { keywords = saved })

	keywords = []keyword{
		{"invalid", KindInvalid},
		{"do", KindTodo},
		{"done", KindMark},
	}
	if got := Classify("done 1"); got != KindMark {
		t.Errorf("Expected the later 'done' entry to win, got '%s'", got)
	}
	if got := Classify("do laundry"); got != KindTodo {
		t.Errorf("Expected 'do' to match, got '%s'", got)
	}

	keywords = []keyword{
		{"invalid", KindInvalid},
		{"done", KindMark},
		{"do", KindTodo},
	}
	if got := Classify("done 1"); got != KindTodo {
		t.Errorf("Expected the later 'do' entry to win over 'done', got '%s'", got)
	}
}
