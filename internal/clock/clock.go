// Package clock abstracts wall-clock access so that time-dependent
// behavior, such as the ticket issuance window, can be driven by a fake
// clock in tests.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time { return time.Now() }

// Zoned is a Clock that reports the current time in a fixed location.
// A nil location falls back to local time.
type Zoned struct {
	Loc *time.Location
}

func (z Zoned) Now() time.Time {
	if z.Loc == nil {
		return time.Now()
	}
	return time.Now().In(z.Loc)
}
