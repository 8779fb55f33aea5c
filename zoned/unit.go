package zoned

import (
	"slices"
	"strings"
)

// Unit is a calendar unit. Each value is its single-character code.
type Unit byte

const (
	Second  Unit = 's'
	Minute  Unit = 'm'
	Hour    Unit = 'h'
	Day     Unit = 'd'
	Week    Unit = 'w'
	Month   Unit = 'M'
	Quarter Unit = 'Q'
	Year    Unit = 'y'
)

var units = [...]Unit{Second, Minute, Hour, Day, Week, Month, Quarter, Year}

// Units returns every unit in ascending order of length.
func Units() []Unit {
	return slices.Clone(units[:])
}

// UnitCodes returns the unit codes joined with sep, in the order of [Units].
func UnitCodes(sep string) string {
	codes := make([]string, len(units))
	for i, u := range units {
		codes[i] = u.String()
	}

	return strings.Join(codes, sep)
}

// ParseUnit returns the unit identified by code.
// Codes are case-sensitive: 'M' is month and 'm' is minute.
func ParseUnit(code rune) (Unit, bool) {
	for _, u := range units {
		if rune(u) == code {
			return u, true
		}
	}

	return 0, false
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	_, ok := ParseUnit(rune(u))

	return ok
}

// String returns the unit code.
func (u Unit) String() string { return string(rune(u)) }

// Name returns the unit's English name.
func (u Unit) Name() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}
