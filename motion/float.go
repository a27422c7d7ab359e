package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/vmath"
)

// Float is an ambient sway applied to a whole group of children
// It knows nothing about its children: Wrap composes its own transform with
// whatever child matrix it is given
type Float struct {
	Speed             float64
	RotationIntensity float64
	FloatIntensity    float64
	// FloatingRange remaps the raw ±0.1 height swing; {0, 0} holds the group level
	FloatingRange [2]float64
	// Offset shifts the wrapper's phase; explicit so scenes stay replayable
	Offset float64
}

// DefaultFloat returns the wrapper with unit speed and intensities
func DefaultFloat() Float {
	return Float{
		Speed:             parameter.DefaultFloatSpeed,
		RotationIntensity: parameter.DefaultFloatRotationIntensity,
		FloatIntensity:    parameter.DefaultFloatIntensity,
		FloatingRange:     [2]float64{parameter.FloatRangeMin, parameter.FloatRangeMax},
	}
}

// NewFloat returns a wrapper with the given speed and intensities and the default range
func NewFloat(speed, rotationIntensity, floatIntensity float64) Float {
	f := DefaultFloat()
	f.Speed = speed
	f.RotationIntensity = rotationIntensity
	f.FloatIntensity = floatIntensity
	return f
}

// Transform returns the wrapper's own transform at elapsed seconds t
func (f Float) Transform(t float64) vmath.Transform {
	lo, hi := f.FloatingRange[0], f.FloatingRange[1]
	tau := (f.Offset + t) / parameter.FloatTimeDivisor * f.Speed
	sin, cos := math.Sin(tau), math.Cos(tau)

	height := vmath.MapLinear(sin/parameter.FloatHeightDivisor,
		parameter.FloatRangeMin, parameter.FloatRangeMax, lo, hi)

	return vmath.Transform{
		Position: mgl64.Vec3{0, height * f.FloatIntensity, 0},
		Rotation: vmath.Euler{
			X: cos / parameter.FloatRotXYDivisor * f.RotationIntensity,
			Y: sin / parameter.FloatRotXYDivisor * f.RotationIntensity,
			Z: sin / parameter.FloatRotZDivisor * f.RotationIntensity,
		},
		Scale: vmath.Uniform(1),
	}
}

// Wrap returns wrapper ∘ inner at elapsed seconds t
func (f Float) Wrap(t float64, inner mgl64.Mat4) mgl64.Mat4 {
	return vmath.Compose(f.Transform(t).Matrix(), inner)
}
