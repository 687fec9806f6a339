package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jrazmi/taskbot/sdk/validation"
)

func TestParseDateTime(t *testing.T) {
	got, err := validation.ParseDateTime("2023-08-31 12:00")
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if got.Year() != 2023 || got.Month() != time.August || got.Day() != 31 || got.Hour() != 12 || got.Minute() != 0 {
		t.Errorf("Expected 2023-08-31 12:00, got %v", got)
	}

	if _, err := validation.ParseDateTime("  2023-08-31 12:00 "); err != nil {
		t.Errorf("Expected surrounding whitespace to be ignored, got %v", err)
	}
}

func TestParseDateTimeRejects(t *testing.T) {
	inputs := []string{
		"not-a-date",
		"",
		"2023-08-31",
		"2023/08/31 12:00",
		"31-08-2023 12:00",
		"2023-13-01 12:00",
		"2023-08-31 25:00",
		"2023-08-31T12:00",
	}
	for _, in := range inputs {
		if _, err := validation.ParseDateTime(in); !errors.Is(err, validation.ErrDateFormat) {
			t.Errorf("ParseDateTime(%q): expected ErrDateFormat, got %v", in, err)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	parsed, err := validation.ParseDateTime("2023-09-01 07:05")
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if got := validation.FormatDateTime(parsed); got != "2023-09-01 07:05" {
		t.Errorf("Expected '2023-09-01 07:05', got '%s'", got)
	}
	if got := validation.DisplayDateTime(parsed); got != "Sep 01 2023 07:05" {
		t.Errorf("Expected 'Sep 01 2023 07:05', got '%s'", got)
	}
}
