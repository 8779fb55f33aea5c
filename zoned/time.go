package zoned

import (
	"time"
)

// isoLayout matches the ECMAScript Date.prototype.toISOString layout.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// maxInstantSeconds bounds the range of valid instants either side of the
// Unix epoch (the ECMAScript time value range of 8.64e15 milliseconds).
const maxInstantSeconds = 8.64e12

// Time is an immutable instant bound to a [Zone].
//
// The zero value is not valid; construct values with [Now], [At] or [Parse].
type Time struct {
	t    time.Time
	zone Zone
	week time.Weekday
}

// Now returns the current instant in zone.
func Now(zone Zone) Time {
	return At(time.Now(), zone)
}

// At returns instant in zone.
func At(instant time.Time, zone Zone) Time {
	return Time{t: instant.In(zone.Location()), zone: zone}
}

// Instant returns the underlying instant, expressed in the value's zone.
func (t Time) Instant() time.Time { return t.t }

// Zone returns the value's zone.
func (t Time) Zone() Zone { return t.zone }

// WeekStart returns the first day of the week used by [Time.StartOf] and
// [Time.EndOf] with [Week].
func (t Time) WeekStart() time.Weekday { return t.week }

// WithWeekStart returns a copy of t whose weeks start on day.
func (t Time) WithWeekStart(day time.Weekday) Time {
	t.week = day % 7

	return t
}

// In returns the same instant in zone.
func (t Time) In(zone Zone) Time {
	return Time{t: t.t.In(zone.Location()), zone: zone, week: t.week}
}

// IsValid reports whether t holds an instant within the representable
// range.
func (t Time) IsValid() bool {
	if t.t.IsZero() {
		return false
	}

	sec := t.t.Unix()

	return sec >= -maxInstantSeconds && sec <= maxInstantSeconds
}

// Equal reports whether t and u represent the same instant.
func (t Time) Equal(u Time) bool { return t.t.Equal(u.t) }

// Before reports whether t is before u.
func (t Time) Before(u Time) bool { return t.t.Before(u.t) }

// After reports whether t is after u.
func (t Time) After(u Time) bool { return t.t.After(u.t) }

// Compare returns -1, 0 or +1 as t is before, equal to or after u.
func (t Time) Compare(u Time) int { return t.t.Compare(u.t) }

// ISO returns t in UTC with millisecond precision, for example
// "2025-12-01T12:00:00.000Z".
func (t Time) ISO() string {
	return t.t.UTC().Format(isoLayout)
}

// String returns [Time.ISO].
func (t Time) String() string { return t.ISO() }

// MarshalText implements [encoding.TextMarshaler] using [Time.ISO].
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.ISO()), nil
}

func (t Time) with(v time.Time) Time {
	return Time{t: v, zone: t.zone, week: t.week}
}

func (t Time) loc() *time.Location { return t.zone.Location() }
