// Package tasksfilestore keeps the task list in a plain text file, one
// persistence line per task (see tasks.Task.Record).
package tasksfilestore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jrazmi/taskbot/core/repositories/tasksrepo"
	"github.com/jrazmi/taskbot/core/tasks"
	"github.com/jrazmi/taskbot/sdk/logger"
)

// Store reads and writes a line file at path.
type Store struct {
	log  *logger.Logger
	path string
}

// NewStore creates a line file store. The file is created on first save.
func NewStore(log *logger.Logger, path string) *Store {
	return &Store{log: log, path: path}
}

// Load reads every non-blank line. A missing file is an empty list.
func (s *Store) Load(ctx context.Context) ([]tasks.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.InfoContext(ctx, "no task file yet", "path", s.path)
			return []tasks.Task{}, nil
		}
		return nil, err
	}
	defer f.Close()

	ts := []tasks.Task{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := tasks.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", tasksrepo.ErrCorrupt, s.path, n, err)
		}
		ts = append(ts, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return ts, nil
}

// Save rewrites the file with ts.
func (s *Store) Save(ctx context.Context, ts []tasks.Task) error {
	return tasksrepo.WriteFileAtomic(s.path, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, t := range ts {
			if _, err := bw.WriteString(t.Record() + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}
