package util

import (
	"fmt"
	"time"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return d, nil
}

// ValidateMonth validates a YYYY-MM period label.
func ValidateMonth(monthStr string) error {
	if monthStr == "" {
		return fmt.Errorf("month is empty")
	}
	if _, err := time.Parse("2006-01", monthStr); err != nil {
		return fmt.Errorf("invalid month format: %w", err)
	}
	return nil
}

// ValidateDescription validates a free-text description field.
func ValidateDescription(desc string) error {
	if desc == "" {
		return fmt.Errorf("description is empty")
	}
	if len(desc) > 255 {
		return fmt.Errorf("description too long, max 255 characters")
	}
	return nil
}
