// ABOUTME: Tests for clock service formatting
// ABOUTME: Pins the time source to assert the exact reply layout
package clock

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestNow_PinnedTime(t *testing.T) {
	fixed := time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	s := NewServiceWithNow(func() time.Time { return fixed })

	got := s.Now()
	want := "Current date and time: 2026-08-29 14:30:05"
	if got != want {
		t.Errorf("Now() = %q, want %q", got, want)
	}
}

func TestNow_SystemClockFormat(t *testing.T) {
	s := NewService()

	got := s.Now()
	if !strings.HasPrefix(got, "Current date and time: ") {
		t.Fatalf("Now() = %q, want 'Current date and time: ' prefix", got)
	}

	stamp := strings.TrimPrefix(got, "Current date and time: ")
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	if !pattern.MatchString(stamp) {
		t.Errorf("timestamp %q does not match YYYY-MM-DD HH:MM:SS", stamp)
	}
}
