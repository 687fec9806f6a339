// Package validation holds input parsing helpers shared across the core.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateTimeLayout is the only accepted input format, yyyy-MM-dd HH:mm.
	DateTimeLayout = "2006-01-02 15:04"

	// DisplayLayout renders dates in responses, e.g. "Aug 31 2023 12:00".
	DisplayLayout = "Jan 02 2006 15:04"
)

// ErrDateFormat is returned when text does not match DateTimeLayout.
var ErrDateFormat = errors.New("date must be in yyyy-MM-dd HH:mm format")

// ParseDateTime parses text strictly under DateTimeLayout. Surrounding
// whitespace is ignored; anything else is rejected.
func ParseDateTime(text string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, strings.TrimSpace(text), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: got %q", ErrDateFormat, text)
	}
	return t, nil
}

// FormatDateTime renders t back into DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// DisplayDateTime renders t for people.
func DisplayDateTime(t time.Time) string {
	return t.Format(DisplayLayout)
}
