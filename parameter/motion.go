package parameter

import "math"

// Tech-node motion
const (
	// NodeBobAmplitude is the vertical bob half-height in scene units
	NodeBobAmplitude = 0.15
	// NodeBobFrequency is the bob angular frequency in rad/s
	NodeBobFrequency = 1.5
	NodeSpinRateX    = 0.3
	NodeSpinRateY    = 0.2
)

// Ring motion
const (
	RingSpinRate        = 0.15
	RingWobbleFrequency = 0.2
	RingWobbleAmplitude = 0.1
	RingBaseTilt        = math.Pi / 2
)

// Float wrapper shape, matches the scene-graph Float helper
const (
	FloatTimeDivisor   = 4.0
	FloatRotXYDivisor  = 8.0
	FloatRotZDivisor   = 20.0
	FloatHeightDivisor = 10.0
	FloatRangeMin      = -0.1
	FloatRangeMax      = 0.1
)

// Float wrapper defaults
const (
	DefaultFloatSpeed             = 1.0
	DefaultFloatRotationIntensity = 1.0
	DefaultFloatIntensity         = 1.0
)
