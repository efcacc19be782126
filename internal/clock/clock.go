// Package clock abstracts the host clock so the resolution pipeline can
// be tested against fixed instants instead of wall time.
package clock

import "time"

// Clock supplies the current local time, including the host's zone
// offset.
type Clock interface {
	Now() time.Time
}

// System reads the host wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
