package locale

import (
	"testing"
	"time"
)

func mustDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse(time.RFC3339, "2024-01-15T13:30:00Z")
	if err != nil {
		t.Fatalf("parse fixture date: %v", err)
	}
	return d
}
