package visual

import "math"

// Easing selects the curve applied to transition progress.
type Easing int

const (
	EasingNone Easing = iota
	// EasingOutQuint decelerates hard towards the end of the transition.
	EasingOutQuint
)

// String returns the easing name used in trace output.
func (e Easing) String() string {
	switch e {
	case EasingNone:
		return "none"
	case EasingOutQuint:
		return "out-quint"
	default:
		return "unknown"
	}
}

// Apply maps linear progress t in [0,1] onto the curve.
func (e Easing) Apply(t float64) float64 {
	t = clamp(t)
	switch e {
	case EasingOutQuint:
		return 1 - math.Pow(1-t, 5)
	default:
		return t
	}
}
