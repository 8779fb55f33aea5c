package zoned

import (
	"errors"
	"strings"
	"time"
)

// Zone identifiers with special meaning to [LoadZone].
const (
	ZoneLocal   = "local"
	ZoneBrowser = "browser"
	ZoneUTC     = "utc"
)

// ErrUnknownZone is returned by [LoadZone] for names that are neither a
// special identifier nor a known IANA zone.
var ErrUnknownZone = errors.New("unknown time zone")

// Zone is a time zone as named by a caller.
// The zero value is the process-local zone.
type Zone struct {
	name string
	loc  *time.Location
}

// Local is the process-local zone.
var Local = Zone{}

// UTC is the UTC zone.
var UTC = Zone{name: ZoneUTC, loc: time.UTC}

// LoadZone resolves a zone identifier.
func LoadZone(name string) (Zone, error) {
	trimmed := strings.TrimSpace(name)

	switch strings.ToLower(trimmed) {
	case "", ZoneLocal, ZoneBrowser:
		return Zone{name: trimmed}, nil
	case ZoneUTC:
		return Zone{name: trimmed, loc: time.UTC}, nil
	}

	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return Zone{}, errors.Join(ErrUnknownZone, err)
	}

	return Zone{name: trimmed, loc: loc}, nil
}

// MustLoadZone is like [LoadZone] but panics on error.
// It is intended for tests and package-level variables.
func MustLoadZone(name string) Zone {
	z, err := LoadZone(name)
	if err != nil {
		panic(err)
	}

	return z
}

// Name returns the identifier the zone was loaded with.
func (z Zone) Name() string { return z.name }

// Location returns the resolved location.
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.Local
	}

	return z.loc
}

// IsLocal reports whether z follows the process-local zone.
func (z Zone) IsLocal() bool { return z.loc == nil }

// String returns the zone identifier, or the resolved location name when
// the zone was loaded without one.
func (z Zone) String() string {
	if z.name != "" {
		return z.name
	}

	return z.Location().String()
}
