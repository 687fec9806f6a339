package repositories_test

import (
	"errors"
	"testing"

	"github.com/jrazmi/taskbot/core/repositories"
)

func TestParseDriver(t *testing.T) {
	tests := []struct {
		input string
		want  repositories.Driver
	}{
		{"", repositories.DriverFile},
		{"file", repositories.DriverFile},
		{"YAML", repositories.DriverYAML},
		{"yml", repositories.DriverYAML},
		{" postgres ", repositories.DriverPostgres},
		{"pg", repositories.DriverPostgres},
	}
	for _, tt := range tests {
		got, err := repositories.ParseDriver(tt.input)
		if err != nil {
			t.Errorf("ParseDriver(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDriver(%q): expected '%s', got '%s'", tt.input, tt.want, got)
		}
	}

	if _, err := repositories.ParseDriver("mysql"); !errors.Is(err, repositories.ErrUnknownDriver) {
		t.Errorf("Expected ErrUnknownDriver, got %v", err)
	}
}
