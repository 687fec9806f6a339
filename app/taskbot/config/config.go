// Package config holds the settings for the taskbot binary.
package config

import (
	"fmt"
	"time"

	"github.com/jrazmi/taskbot/core/repositories"
	"github.com/jrazmi/taskbot/sdk/environment"
)

// Taskbot is the overall configuration for the taskbot application.
type Taskbot struct {
	Build string

	StorageDriver  string        `env:"STORAGE_DRIVER" default:"file"`
	TasksFile      string        `env:"TASKS_FILE"`
	SaveTimeout    time.Duration `env:"SAVE_TIMEOUT" default:"5s"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" default:"10s"`
	Name           string        `env:"NAME" default:"taskbot"`
	Prompt         string        `env:"PROMPT"`
	Greeting       bool          `env:"GREETING" default:"true"`

	// Driver is StorageDriver resolved by Load.
	Driver repositories.Driver
}

// Load reads the configuration from environment variables under prefix.
// TasksFile defaults per driver: data/tasks.txt for file, data/tasks.yaml
// for yaml, unused for postgres.
func Load(prefix, build string) (Taskbot, error) {
	cfg := Taskbot{Build: build}
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return Taskbot{}, fmt.Errorf("parsing taskbot config: %w", err)
	}

	driver, err := repositories.ParseDriver(cfg.StorageDriver)
	if err != nil {
		return Taskbot{}, err
	}
	cfg.Driver = driver

	if cfg.TasksFile == "" {
		switch driver {
		case repositories.DriverFile:
			cfg.TasksFile = "data/tasks.txt"
		case repositories.DriverYAML:
			cfg.TasksFile = "data/tasks.yaml"
		}
	}
	return cfg, nil
}
