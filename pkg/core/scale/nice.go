package scale

import "math"

// defaultTicks is the approximate tick count Nice rounds for.
const defaultTicks = 10

// niceStep returns a 1, 2 or 5 times a power of ten step splitting span
// into about defaultTicks intervals.
func niceStep(span float64) float64 {
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 0
	}
	raw := span / defaultTicks
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / pow; {
	case f >= 5:
		return 10 * pow
	case f >= 2:
		return 5 * pow
	case f >= 1:
		return 2 * pow
	default:
		return pow
	}
}

func floorTo(v, step float64) float64 { return math.Floor(v/step) * step }
func ceilTo(v, step float64) float64  { return math.Ceil(v/step) * step }
