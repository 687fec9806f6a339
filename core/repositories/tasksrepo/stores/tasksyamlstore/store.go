// Package tasksyamlstore keeps the task list in a YAML document:
//
//	tasks:
//	  - id: 5b6f...
//	    kind: deadline
//	    description: essay
//	    done: false
//	    due_at: 2023-08-31T12:00:00+02:00
package tasksyamlstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jrazmi/taskbot/core/repositories/tasksrepo"
	"github.com/jrazmi/taskbot/core/tasks"
	"github.com/jrazmi/taskbot/sdk/logger"
	"gopkg.in/yaml.v3"
)

type document struct {
	Tasks []tasksrepo.Row `yaml:"tasks"`
}

// Store reads and writes a YAML document at path.
type Store struct {
	log  *logger.Logger
	path string
}

func NewStore(log *logger.Logger, path string) *Store {
	return &Store{log: log, path: path}
}

// Load decodes the document. A missing or empty file is an empty list.
func (s *Store) Load(ctx context.Context) ([]tasks.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.InfoContext(ctx, "no task file yet", "path", s.path)
			return []tasks.Task{}, nil
		}
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", tasksrepo.ErrCorrupt, s.path, err)
	}

	ts := make([]tasks.Task, 0, len(doc.Tasks))
	for _, row := range doc.Tasks {
		t, err := row.ToTask()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.path, err)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// Save rewrites the document with ts.
func (s *Store) Save(ctx context.Context, ts []tasks.Task) error {
	doc := document{Tasks: make([]tasksrepo.Row, len(ts))}
	for i, t := range ts {
		doc.Tasks[i] = tasksrepo.ToRow(t, i)
	}

	return tasksrepo.WriteFileAtomic(s.path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	})
}
