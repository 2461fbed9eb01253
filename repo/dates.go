package repo

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-date format used across all entities
	DateLayout = "2006-01-02"
	// ClockLayout is the localized clock format used for note timestamps
	ClockLayout = "03:04 PM"
)

// ParseDate parses a calendar date in the store's format (YYYY-MM-DD).
// Callers validating user-supplied dates should go through this rather
// than parsing ad hoc.
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}
	return parsedTime, nil
}

func today() string {
	return time.Now().Format(DateLayout)
}

func clockNow() string {
	return time.Now().Format(ClockLayout)
}
