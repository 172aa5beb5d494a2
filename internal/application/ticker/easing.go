package ticker

import "math"

// Easing maps normalized progress t in [0,1] to an eased fraction
type Easing func(t float64) float64

// EaseLinear returns t unchanged
func EaseLinear(t float64) float64 { return t }

// EaseInQuad accelerates from zero
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to the end
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseOutSine is the quarter sine curve used by menu pop-ins
func EaseOutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// EaseInOutSine eases both ends
func EaseInOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// EaseOutBack overshoots slightly before settling
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// EaseOutBounce settles with decaying bounces, used for dropping labels
func EaseOutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
