package usecase

import "time"

// parseDate accepts either a full RFC 3339 timestamp or a bare YYYY-MM-DD
// date, the two shapes clients send for scheduling fields.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
