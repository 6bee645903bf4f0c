package entity

import (
	"math"
	"time"
)

// LocationFix is a position reported by the location provider.
type LocationFix struct {
	Coordinate
	ReceivedAt time.Time `json:"received_at"`
}

// AccelerationSample is one accelerometer reading.
type AccelerationSample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Magnitude returns sqrt(x²+y²+z²).
func (s AccelerationSample) Magnitude() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// ShakeEvent is emitted by the motion provider when a shake is detected.
type ShakeEvent struct {
	Magnitude  float64   `json:"magnitude"`
	DetectedAt time.Time `json:"detected_at"`
	Simulated  bool      `json:"simulated"`
}
