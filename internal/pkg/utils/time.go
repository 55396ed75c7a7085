package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDateOfBirth parses a YYYY-MM-DD string and normalizes it to midnight
// UTC. BSON has no date-only type, so dates are persisted as datetimes; the
// midnight UTC convention keeps the calendar date stable on readback.
func ParseDateOfBirth(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDateOfBirth renders a stored date-of-birth back as YYYY-MM-DD.
func FormatDateOfBirth(value time.Time) string {
	return value.UTC().Format(DateLayout)
}
