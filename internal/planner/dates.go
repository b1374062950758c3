package planner

import (
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

// datePattern gates the exact YYYY-MM-DD shape. time.Parse alone is too
// permissive: it accepts unpadded fields like "2025-7-5".
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s is a non-blank string in exact YYYY-MM-DD form
// representing a real calendar date. Month 13, Feb 30 and Feb 29 outside leap
// years are all rejected, as are alternate separators and trailing segments.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// DateRange is a validated pair of trip dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses and validates a start/end date pair.
// End may equal start (a zero-day trip) but must not precede it.
func NewDateRange(start, end string) (DateRange, error) {
	if !ValidDate(start) {
		return DateRange{}, &ValidationError{Reason: fmt.Sprintf("invalid start date format: %q (use YYYY-MM-DD)", start)}
	}
	if !ValidDate(end) {
		return DateRange{}, &ValidationError{Reason: fmt.Sprintf("invalid end date format: %q (use YYYY-MM-DD)", end)}
	}

	s, _ := time.Parse(dateLayout, start)
	e, _ := time.Parse(dateLayout, end)
	if e.Before(s) {
		return DateRange{}, &ValidationError{Reason: "end date must be on or after start date"}
	}

	return DateRange{Start: s, End: e}, nil
}

// Days returns the trip duration in whole days. Same-day trips are 0.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}
