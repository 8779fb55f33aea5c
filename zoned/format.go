package zoned

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLayout is the pattern used by [Time.Format] when none is given.
const DefaultLayout = "YYYY-MM-DD HH:mm:ss"

// ErrInvalidDate is returned by [Parse] when the text is not a recognised
// absolute date.
var ErrInvalidDate = errors.New("invalid date")

// formatTokens are the pattern tokens understood by [Time.Format], longest
// first so that scanning is greedy.
var formatTokens = []string{
	"YYYY", "MMMM", "dddd",
	"SSS", "MMM", "ddd",
	"YY", "MM", "DD", "dd", "HH", "hh", "mm", "ss", "ZZ",
	"M", "D", "d", "H", "h", "m", "s", "Z", "A", "a",
}

// Format renders t in its zone using a dayjs-style pattern:
//
//	YYYY 2025    YY 25     M 1-12    MM 01-12   MMM Jan   MMMM January
//	D 1-31       DD 01-31  d 0-6     dd Su      ddd Sun   dddd Sunday
//	H 0-23       HH 00-23  h 1-12    hh 01-12   m 0-59    mm 00-59
//	s 0-59       ss 00-59  SSS 000-999
//	Z +01:00     ZZ +0100  A AM/PM   a am/pm
//
// Text inside square brackets is copied verbatim. An empty pattern is
// [DefaultLayout].
func (t Time) Format(pattern string) string {
	if pattern == "" {
		pattern = DefaultLayout
	}

	var sb strings.Builder

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				sb.WriteString(pattern[i+1 : i+1+end])
				i += end + 2

				continue
			}
		}

		token := matchToken(pattern[i:])
		if token == "" {
			sb.WriteByte(pattern[i])
			i++

			continue
		}

		sb.WriteString(t.formatToken(token))
		i += len(token)
	}

	return sb.String()
}

func matchToken(s string) string {
	for _, tok := range formatTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}

	return ""
}

func (t Time) formatToken(token string) string {
	v := t.t

	switch token {
	case "YYYY":
		return pad(v.Year(), 4)
	case "YY":
		return pad(v.Year()%100, 2)
	case "M":
		return strconv.Itoa(int(v.Month()))
	case "MM":
		return pad(int(v.Month()), 2)
	case "MMM":
		return v.Month().String()[:3]
	case "MMMM":
		return v.Month().String()
	case "D":
		return strconv.Itoa(v.Day())
	case "DD":
		return pad(v.Day(), 2)
	case "d":
		return strconv.Itoa(int(v.Weekday()))
	case "dd":
		return v.Weekday().String()[:2]
	case "ddd":
		return v.Weekday().String()[:3]
	case "dddd":
		return v.Weekday().String()
	case "H":
		return strconv.Itoa(v.Hour())
	case "HH":
		return pad(v.Hour(), 2)
	case "h":
		return strconv.Itoa(hour12(v.Hour()))
	case "hh":
		return pad(hour12(v.Hour()), 2)
	case "m":
		return strconv.Itoa(v.Minute())
	case "mm":
		return pad(v.Minute(), 2)
	case "s":
		return strconv.Itoa(v.Second())
	case "ss":
		return pad(v.Second(), 2)
	case "SSS":
		return pad(v.Nanosecond()/int(time.Millisecond), 3)
	case "Z":
		return v.Format("-07:00")
	case "ZZ":
		return v.Format("-0700")
	case "A":
		return v.Format("PM")
	case "a":
		return v.Format("pm")
	default:
		return token
	}
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}

	return h % 12
}

func pad(n, width int) string {
	if n < 0 {
		return "-" + pad(-n, width)
	}

	return fmt.Sprintf("%0*d", width, n)
}

// parseLayouts are the absolute date layouts accepted by [Parse], tried in
// order.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse interprets text as an absolute calendar date in zone.
// Layouts carrying an explicit offset keep that instant; the others are read
// as wall-clock time in zone.
func Parse(text string, zone Zone) (Time, error) {
	s := strings.TrimSpace(text)

	for _, layout := range parseLayouts {
		v, err := time.ParseInLocation(layout, s, zone.Location())
		if err == nil {
			return At(v, zone), nil
		}
	}

	return Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
}
