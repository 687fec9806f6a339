// Package repositories names the storage backends a taskbot binary can run
// against.
package repositories

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Driver selects a tasksrepo store implementation.
type Driver string

const (
	DriverFile     Driver = "file"
	DriverYAML     Driver = "yaml"
	DriverPostgres Driver = "postgres"
)

// ParseDriver accepts a driver name case-insensitively. "pg" and "yml" are
// accepted as aliases.
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "file":
		return DriverFile, nil
	case "yaml", "yml":
		return DriverYAML, nil
	case "postgres", "pg":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, s)
	}
}
