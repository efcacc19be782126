// Package zulu converts a local wall-clock reading, optionally annotated
// with an AM/PM marker, into the equivalent UTC instant. It owns the
// parsing of user-supplied time and meridian tokens and the resolution
// rules that combine them with the host's current date and offset.
package zulu

import (
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time of day with no date or zone attached. Values are
// whatever the integer parse produced; the resolver applies no range
// checks of its own.
type ClockTime struct {
	Hours   int
	Minutes int
}

// ParseClockTime parses an "H:MM" or "HH:MM" token. The token is split
// on ':' into exactly two integer fields; more than two fields is a
// structural error, and each field failing to parse is reported with the
// field name.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, &TimeParseError{Field: "hours", Token: parts[0], Err: err}
	}

	if len(parts) < 2 {
		return ClockTime{}, &TimeParseError{Field: "minutes", Missing: true}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, &TimeParseError{Field: "minutes", Token: parts[1], Err: err}
	}

	// Field failures are reported before the structural check, so
	// "x:15:30" names the hours problem rather than the extra field.
	if len(parts) > 2 {
		return ClockTime{}, &TimeParseError{}
	}

	return ClockTime{Hours: hours, Minutes: minutes}, nil
}

// Meridian is the AM/PM designator of a 12-hour clock reading.
type Meridian int

const (
	AM Meridian = iota
	PM
)

// ParseMeridian accepts exactly the literals "AM", "am", "PM" and "pm".
// Mixed case such as "Am" is rejected, matching the documented command
// surface.
func ParseMeridian(s string) (Meridian, error) {
	switch s {
	case "AM", "am":
		return AM, nil
	case "PM", "pm":
		return PM, nil
	}
	return 0, &MeridianError{Token: s}
}

func (m Meridian) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// Resolve computes the single UTC instant for the given inputs.
//
// A nil explicit time falls back to now's 12-hour reading (hour 1-12,
// minute as-is). A nil meridian is inferred from now's 24-hour hour,
// deliberately NOT from the supplied time: a user passing "9:15" without
// a marker gets the meridian of the moment they ran the command.
//
// PM adds 12 to an hour below 12. No other adjustment exists, so a
// 24-hour style input at or above 12 passes through unchanged even when
// AM is given.
func Resolve(explicit *ClockTime, meridian *Meridian, now time.Time) time.Time {
	m := PM
	if meridian != nil {
		m = *meridian
	} else if now.Hour() < 12 {
		m = AM
	}

	t := clockTimeOf(now)
	if explicit != nil {
		t = *explicit
	}

	hours := t.Hours
	if hours < 12 && m == PM {
		hours += 12
	}

	local := time.Date(now.Year(), now.Month(), now.Day(), hours, t.Minutes, 0, 0, now.Location())
	return local.UTC()
}

// clockTimeOf reads now as a 12-hour clock. Midnight and noon both come
// out as hour 12, like any wall clock face.
func clockTimeOf(now time.Time) ClockTime {
	h := now.Hour() % 12
	if h == 0 {
		h = 12
	}
	return ClockTime{Hours: h, Minutes: now.Minute()}
}
