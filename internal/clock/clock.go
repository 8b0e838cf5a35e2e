// ABOUTME: Clock service formatting the current date and time for replies
// ABOUTME: The time source is injectable so tests can pin the instant
package clock

import (
	"fmt"
	"time"
)

// timeFormat is the reply layout: YYYY-MM-DD HH:MM:SS
const timeFormat = "2006-01-02 15:04:05"

// Service reports the current date and time
type Service struct {
	now func() time.Time
}

// NewService creates a Service backed by the system clock
func NewService() *Service {
	return &Service{now: time.Now}
}

// NewServiceWithNow creates a Service with a custom time source
func NewServiceWithNow(now func() time.Time) *Service {
	return &Service{now: now}
}

// Now returns the formatted current date and time
func (s *Service) Now() string {
	return fmt.Sprintf("Current date and time: %s", s.now().Format(timeFormat))
}
