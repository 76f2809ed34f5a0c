// Package features turns cleaned sales records into a weekly time series
// with lagged predictors and forward targets.
package features

import (
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/salesprep/internal/model"
)

// ErrInvalidDate is returned when a present Transaction Date cannot be parsed.
var ErrInvalidDate = errors.New("invalid transaction date")

// dateLayouts are tried in order when parsing transaction dates.
var dateLayouts = []string{
	model.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a transaction date in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// WeekStart returns midnight of the Sunday that begins the week containing t.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekKey returns the YYYY-MM-DD label of the week containing t.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(model.DateLayout)
}
