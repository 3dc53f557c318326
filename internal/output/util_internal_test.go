//go:build unit

package output

import (
	"testing"
	"time"
)

func TestIntToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}

func TestDateToString(t *testing.T) {
	if got := dateToString(nil); got != "" {
		t.Errorf("dateToString(nil) = %q, want empty", got)
	}
	d := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	if got, want := dateToString(&d), "2025-02-28"; got != want {
		t.Errorf("dateToString = %q, want %q", got, want)
	}
}
