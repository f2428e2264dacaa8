package scene

import (
	"math"
	"time"
)

// DefaultRate is the spin rate in radians per nanosecond (4 rad/s).
const DefaultRate = 4e-9

// Spinner accumulates a rotation angle from wall-clock time, so the spin
// speed does not depend on the frame rate.
type Spinner struct {
	// Rate is the angular speed in radians per nanosecond.
	Rate float64

	angle float64
	last  time.Time
}

// NewSpinner creates a spinner at angle 0 starting at now.
func NewSpinner(now time.Time) *Spinner {
	return &Spinner{Rate: DefaultRate, last: now}
}

// Advance adds the time elapsed since the previous call and returns the
// new angle in [0, 2π). A clock that goes backwards leaves the angle
// unchanged.
func (s *Spinner) Advance(now time.Time) float32 {
	if elapsed := now.Sub(s.last); elapsed > 0 {
		s.angle = math.Mod(s.angle+float64(elapsed.Nanoseconds())*s.Rate, 2*math.Pi)
	}
	s.last = now
	return float32(s.angle)
}

// Angle returns the current angle without advancing.
func (s *Spinner) Angle() float32 {
	return float32(s.angle)
}
