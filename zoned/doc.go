// Package zoned provides an immutable point in time bound to a named time
// zone, together with the calendar arithmetic used by relative date
// expressions.
//
// # Values
//
// A [Time] pairs an instant with a [Zone]. Every method returns a new value;
// the zone identifier and the configured week-start day are carried through
// arithmetic unchanged:
//
//	zone, _ := zoned.LoadZone("Europe/Berlin")
//	t := zoned.Now(zone).Subtract(1, zoned.Day).StartOf(zoned.Day)
//	fmt.Println(t.Format("YYYY-MM-DD HH:mm"))
//
// Two values are equal when their instants are equal, regardless of zone.
//
// # Units
//
// The closed set of calendar units is identified by case-sensitive single
// character codes:
//
//	s  second    m  minute    h  hour     d  day
//	w  week      M  month     Q  quarter  y  year
//
// Seconds, minutes and hours are exact elapsed durations, so adding hours
// across a daylight-saving transition moves real time. Days and weeks move
// the calendar date and keep the wall-clock time. Months, quarters and years
// clamp the day of month to the last day of the target month, so adding one
// month to January 31 lands on the last day of February.
//
// # Zones
//
// [LoadZone] accepts an IANA name, "utc", or one of "", "local" and
// "browser" for the process-local zone.
package zoned
