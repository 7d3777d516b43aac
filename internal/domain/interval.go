package domain

import (
	"errors"

	"github.com/cst-sportspot/booking-service/pkg/types"
)

// ErrInvalidInterval возвращается при попытке построить интервал с start >= end
// или с некорректным форматом времени
var ErrInvalidInterval = errors.New("domain: invalid time interval")

// TimeInterval is a half-open time range [Start, End) within a single day.
// Cross-midnight intervals are not supported.
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeInterval builds a validated interval. Fails with ErrInvalidInterval
// when either endpoint is malformed or Start >= End.
func NewTimeInterval(start, end types.TimeString) (TimeInterval, error) {
	if err := start.Validate(); err != nil {
		return TimeInterval{}, ErrInvalidInterval
	}
	if err := end.Validate(); err != nil {
		return TimeInterval{}, ErrInvalidInterval
	}
	if !start.IsBefore(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports a strict intersection of the two half-open intervals:
// a.Start < b.End && b.Start < a.End. Intervals that merely touch at a
// boundary (10:00-11:00 and 11:00-12:00) do NOT overlap.
func (a TimeInterval) Overlaps(b TimeInterval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// CompareStart orders intervals by start time. Returns -1, 0 or +1.
// Used with a stable sort so that equal starts keep their source order.
func CompareStart(a, b TimeInterval) int {
	return a.Start.Compare(b.Start)
}
