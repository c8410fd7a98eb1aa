package timezone

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
)

// Reporting days and stored timestamps are UTC.

const DayLayout = "2006-01-02"

func Now() time.Time {
	return time.Now().UTC()
}

// DayKey returns the UTC calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ParseBound accepts a date (UTC midnight) or an RFC 3339 timestamp.
func ParseBound(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DayLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Range is a half-open [From, To) window on a timestamp. Nil bounds are open.
type Range struct {
	From *time.Time
	To   *time.Time
}

// ParseRange parses optional from/to query values. Empty strings leave the
// bound open; a malformed bound is a validation error.
func ParseRange(from, to string) (Range, error) {
	var r Range
	if strings.TrimSpace(from) != "" {
		t, err := ParseBound(from)
		if err != nil {
			return Range{}, httperr.ErrValidation("invalid_request", map[string]string{"from": "date"})
		}
		r.From = &t
	}
	if strings.TrimSpace(to) != "" {
		t, err := ParseBound(to)
		if err != nil {
			return Range{}, httperr.ErrValidation("invalid_request", map[string]string{"to": "date"})
		}
		r.To = &t
	}
	return r, nil
}

func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && !t.Before(*r.To) {
		return false
	}
	return true
}
