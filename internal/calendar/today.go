package calendar

import "time"

// NepalOffset is Nepal Standard Time, UTC+5:45.
const NepalOffset = 5*time.Hour + 45*time.Minute

// NepalTime is a fixed zone for NepalOffset. Nepal has no daylight saving.
var NepalTime = time.FixedZone("NPT", int(NepalOffset/time.Second))

// Clock abstracts time.Now() so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Resolver answers "what is today's BS date" for a given location.
type Resolver struct {
	Converter *Converter
	Clock     Clock
	Location  *time.Location
}

// NewResolver returns a Resolver using RealClock and NepalTime.
func NewResolver(c *Converter) *Resolver {
	return &Resolver{
		Converter: c,
		Clock:     RealClock{},
		Location:  NepalTime,
	}
}

// Now returns the clock reading in the resolver's location.
func (r *Resolver) Now() time.Time {
	clock := r.Clock
	if clock == nil {
		clock = RealClock{}
	}
	loc := r.Location
	if loc == nil {
		loc = NepalTime
	}
	return clock.Now().In(loc)
}

// Today converts the current date in the resolver's location to BS.
func (r *Resolver) Today() BSDate {
	return r.Converter.ADToBS(r.Now())
}
