package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// ParseDay parses a date string and normalizes it to the beginning of the
// day, so equal calendar dates compare equal regardless of the submitted
// time component.
func ParseDay(s string) (time.Time, error) {
	t, err := now.Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.With(t).BeginningOfDay(), nil
}
