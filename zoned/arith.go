package zoned

import "time"

// Add returns t moved forward by n units (backward when n is negative).
//
// Seconds, minutes and hours add elapsed time. Days and weeks add calendar
// days and keep the wall-clock time. Months, quarters and years add calendar
// months and clamp the day of month to the length of the target month.
// Invalid units leave t unchanged.
func (t Time) Add(n int, u Unit) Time {
	switch u {
	case Second:
		return t.addSeconds(int64(n))
	case Minute:
		return t.addSeconds(int64(n) * 60)
	case Hour:
		return t.addSeconds(int64(n) * 3600)
	case Day:
		return t.with(t.t.AddDate(0, 0, n))
	case Week:
		return t.with(t.t.AddDate(0, 0, n*7))
	case Month:
		return t.addMonths(n)
	case Quarter:
		return t.addMonths(n * 3)
	case Year:
		return t.addMonths(n * 12)
	default:
		return t
	}
}

// Subtract returns t moved backward by n units. See [Time.Add].
func (t Time) Subtract(n int, u Unit) Time {
	return t.Add(-n, u)
}

// StartOf returns the first instant of the u period enclosing t, in t's zone.
func (t Time) StartOf(u Unit) Time {
	loc := t.loc()
	year, month, day := t.t.Date()
	_, minute, sec := t.t.Clock()

	// Sub-day units truncate the instant under the current offset, so a wall
	// clock repeated by a DST fall-back stays in its own period.
	ns := time.Duration(t.t.Nanosecond())

	switch u {
	case Second:
		return t.with(t.t.Add(-ns))
	case Minute:
		return t.with(t.t.Add(-(time.Duration(sec)*time.Second + ns)))
	case Hour:
		return t.with(t.t.Add(-(time.Duration(minute)*time.Minute +
			time.Duration(sec)*time.Second + ns)))
	case Day:
		return t.with(time.Date(year, month, day, 0, 0, 0, 0, loc))
	case Week:
		back := (int(t.t.Weekday()) - int(t.week) + 7) % 7

		return t.with(time.Date(year, month, day-back, 0, 0, 0, 0, loc))
	case Month:
		return t.with(time.Date(year, month, 1, 0, 0, 0, 0, loc))
	case Quarter:
		first := (month-1)/3*3 + 1

		return t.with(time.Date(year, first, 1, 0, 0, 0, 0, loc))
	case Year:
		return t.with(time.Date(year, time.January, 1, 0, 0, 0, 0, loc))
	default:
		return t
	}
}

// EndOf returns the last representable instant of the u period enclosing t,
// in t's zone.
func (t Time) EndOf(u Unit) Time {
	if !u.Valid() {
		return t
	}

	next := t.StartOf(u).Add(1, u)

	return t.with(next.t.Add(-time.Nanosecond))
}

func (t Time) addSeconds(sec int64) Time {
	return t.with(time.Unix(t.t.Unix()+sec, int64(t.t.Nanosecond())).In(t.loc()))
}

func (t Time) addMonths(n int) Time {
	loc := t.loc()
	year, month, day := t.t.Date()
	hour, minute, sec := t.t.Clock()

	total := int(month) - 1 + n
	year += floorDiv(total, 12)
	month = time.Month(total-floorDiv(total, 12)*12) + 1

	if last := daysIn(year, month); day > last {
		day = last
	}

	return t.with(
		time.Date(year, month, day, hour, minute, sec, t.t.Nanosecond(), loc),
	)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
