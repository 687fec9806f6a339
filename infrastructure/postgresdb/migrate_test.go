package postgresdb

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/jrazmi/taskbot/schema"
)

func TestMigrationFilesSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"m/002_b.sql":   {Data: []byte("select 2")},
		"m/001_a.sql":   {Data: []byte("select 1")},
		"m/notes.txt":   {Data: []byte("ignored")},
		"m/sub/003.sql": {Data: []byte("ignored")},
	}

	got, err := migrationFiles(fsys, "m")
	if err != nil {
		t.Fatalf("migrationFiles failed: %v", err)
	}
	if want := []string{"001_a.sql", "002_b.sql"}; !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	got, err := migrationFiles(schema.MigrationsFS, "pgmigrations")
	if err != nil {
		t.Fatalf("migrationFiles failed: %v", err)
	}
	if len(got) == 0 || got[0] != "001_create_tasks.sql" {
		t.Errorf("Expected 001_create_tasks.sql first, got %v", got)
	}
}

func TestChecksumStable(t *testing.T) {
	a := checksum([]byte("CREATE TABLE tasks ();"))
	b := checksum([]byte("CREATE TABLE tasks ();"))
	c := checksum([]byte("CREATE TABLE tasks (id int);"))
	if a != b || len(a) != 64 {
		t.Errorf("Expected stable 64-char checksum, got %s and %s", a, b)
	}
	if a == c {
		t.Error("Expected different content to change the checksum")
	}
}
