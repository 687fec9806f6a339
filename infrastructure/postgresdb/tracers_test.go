package postgresdb

import "testing"

func TestCompactSQL(t *testing.T) {
	in := `
		SELECT task_id, kind
		FROM tasks
		WHERE kind IN ( 'todo', 'event' )
		ORDER BY position
	`
	want := "SELECT task_id, kind FROM tasks WHERE kind IN ('todo', 'event') ORDER BY position"
	if got := compactSQL(in); got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}
