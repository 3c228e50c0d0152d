package service

import "time"

// Clock supplies current clinic-local time. Injected so past-start
// rejection can be tested with a fixed time.
type Clock interface {
	Now() time.Time
}

type clinicClock struct {
	loc *time.Location
}

// NewClinicClock returns a Clock reporting wall time in the clinic's zone.
func NewClinicClock(loc *time.Location) Clock {
	return &clinicClock{loc: loc}
}

func (c *clinicClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}
