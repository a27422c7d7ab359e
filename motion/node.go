package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/vmath"
)

// NodeParams holds the static parameters of a floating tech-node
// Fixed at scene assembly; never mutated by the animator
type NodeParams struct {
	Base          mgl64.Vec3
	Scale         float64
	RotationSpeed float64
}

// Node returns the node transform at elapsed seconds t
// Pure function of (params, t): no per-frame state, so dropped frames and
// pauses only change which t is sampled
func Node(p NodeParams, t float64) vmath.Transform {
	bob := vmath.Wave(t, parameter.NodeBobFrequency, p.Base.X(), parameter.NodeBobAmplitude)
	return vmath.Transform{
		Position: mgl64.Vec3{p.Base.X(), p.Base.Y() + bob, p.Base.Z()},
		Rotation: vmath.Euler{
			X: t * parameter.NodeSpinRateX * p.RotationSpeed,
			Y: t * parameter.NodeSpinRateY * p.RotationSpeed,
		},
		Scale: vmath.Uniform(p.Scale),
	}
}

// Ring returns the connection-ring transform at elapsed seconds t
// Ring stays at the scene origin; only its spin and tilt wobble change
func Ring(t float64) vmath.Transform {
	return vmath.Transform{
		Rotation: vmath.Euler{
			X: parameter.RingBaseTilt + math.Sin(t*parameter.RingWobbleFrequency)*parameter.RingWobbleAmplitude,
			Z: t * parameter.RingSpinRate,
		},
		Scale: vmath.Uniform(1),
	}
}
