package vmath

import "math"

// Clamp01 limits v to [0, 1]; NaN maps to 0
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MapLinear remaps x from range [a1, a2] to [b1, b2] without clamping
func MapLinear(x, a1, a2, b1, b2 float64) float64 {
	if a2 == a1 {
		return b1
	}
	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}

// Wave returns amplitude * sin(t*freq + phase)
func Wave(t, freq, phase, amplitude float64) float64 {
	return math.Sin(t*freq+phase) * amplitude
}

// Finite reports whether every value is neither NaN nor ±Inf
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
