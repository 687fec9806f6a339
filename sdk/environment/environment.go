// Package environment loads .env files and reads namespaced environment
// variables for the taskbot binaries.
package environment

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files, or from ./.env when no
// path is given. Variables already present in the process environment win.
// A missing file is not an error; a malformed one is.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// GetNamespaceEnvKey joins a namespace and key with an underscore.
//
//	GetNamespaceEnvKey("TASKBOT", "TASKS_FILE") // "TASKBOT_TASKS_FILE"
//	GetNamespaceEnvKey("", "TASKS_FILE")        // "TASKS_FILE"
func GetNamespaceEnvKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", namespace, key)
}
