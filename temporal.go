package jsonparse

import (
	"fmt"
	"strings"
	"time"

	"github.com/open-force/jsonparse/internal"
)

// Accepted textual layouts. The ".999999999" layout element makes
// fractional seconds optional.
const (
	layoutDateTimeZoned = "2006-01-02T15:04:05.999999999Z07:00"
	layoutDateTimeBare  = "2006-01-02T15:04:05.999999999"
	layoutDate          = "2006-01-02"
	layoutTimeOfDay     = "15:04:05.999999999"
)

// GetDatetimeValue returns the scalar as a UTC instant. Accepts an
// ISO-8601 date-time string ("2006-01-02T15:04:05", optional fractional
// seconds, optional Z or numeric offset), or an integer number of epoch
// milliseconds. A null scalar returns the zero time.Time.
func (n *Node) GetDatetimeValue() (time.Time, error) {
	raw, err := n.scalar(opDatetime)
	if err != nil {
		return time.Time{}, err
	}
	if raw == nil {
		return time.Time{}, nil
	}

	switch v := raw.(type) {
	case string:
		t, ok := parseDatetime(v)
		if !ok {
			return time.Time{}, newCoercionError(opDatetime, fmt.Sprintf("string %q is not a date-time", v))
		}
		return t, nil
	case bool:
		return time.Time{}, newCoercionError(opDatetime, "cannot convert bool to datetime")
	}

	ms, err := epochMillis(opDatetime, raw)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// GetDateValue returns the scalar as a calendar date, normalized to
// midnight UTC. Accepts an ISO-8601 date string, a full date-time string
// whose time component is discarded, or integer epoch milliseconds
// converted to the UTC calendar date of that instant. A null scalar
// returns the zero time.Time.
func (n *Node) GetDateValue() (time.Time, error) {
	raw, err := n.scalar(opDate)
	if err != nil {
		return time.Time{}, err
	}
	if raw == nil {
		return time.Time{}, nil
	}

	switch v := raw.(type) {
	case string:
		if t, err := time.Parse(layoutDate, v); err == nil {
			return t, nil
		}
		if t, ok := parseDatetime(v); ok {
			return dateOnly(t), nil
		}
		return time.Time{}, newCoercionError(opDate, fmt.Sprintf("string %q is not a date", v))
	case bool:
		return time.Time{}, newCoercionError(opDate, "cannot convert bool to date")
	}

	ms, err := epochMillis(opDate, raw)
	if err != nil {
		return time.Time{}, err
	}
	return dateOnly(time.UnixMilli(ms).UTC()), nil
}

// GetTimeValue returns the scalar as a wall-clock time of day, carried
// on the zero date (year 0, January 1) in UTC. Accepts an ISO-8601 time
// string ("15:04:05", optional fractional seconds, optional trailing Z),
// or integer epoch milliseconds whose UTC time-of-day component is
// taken. Date-time strings are not accepted by this target. A null
// scalar returns the zero time.Time.
func (n *Node) GetTimeValue() (time.Time, error) {
	raw, err := n.scalar(opTime)
	if err != nil {
		return time.Time{}, err
	}
	if raw == nil {
		return time.Time{}, nil
	}

	switch v := raw.(type) {
	case string:
		t, err := time.Parse(layoutTimeOfDay, strings.TrimSuffix(v, "Z"))
		if err != nil {
			return time.Time{}, newCoercionError(opTime, fmt.Sprintf("string %q is not a time of day", v))
		}
		return t, nil
	case bool:
		return time.Time{}, newCoercionError(opTime, "cannot convert bool to time")
	}

	ms, err := epochMillis(opTime, raw)
	if err != nil {
		return time.Time{}, err
	}
	return timeOnly(time.UnixMilli(ms).UTC()), nil
}

// parseDatetime tries the zoned layout first, then the bare layout read
// as UTC. The result is always normalized to UTC.
func parseDatetime(s string) (time.Time, bool) {
	if t, err := time.Parse(layoutDateTimeZoned, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(layoutDateTimeBare, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// epochMillis interprets a numeric scalar as integral epoch milliseconds.
func epochMillis(op string, raw any) (int64, error) {
	if !internal.IsNumber(raw) {
		return 0, newCoercionError(op, fmt.Sprintf("cannot convert %T to a temporal value", raw))
	}
	ms, ok := internal.ToInt64(raw)
	if !ok {
		return 0, newCoercionError(op, fmt.Sprintf("number %v is not integral epoch milliseconds", raw))
	}
	return ms, nil
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timeOnly(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
