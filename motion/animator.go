package motion

import "github.com/lixenwraith/hero-motion/vmath"

// Animator maps elapsed seconds to a local transform
type Animator func(t float64) vmath.Transform

// NodeAnimator binds node parameters into an Animator
func NodeAnimator(p NodeParams) Animator {
	return func(t float64) vmath.Transform {
		return Node(p, t)
	}
}

// RingAnimator returns the ring motion as an Animator
func RingAnimator() Animator {
	return Ring
}

// Fixed returns an Animator that ignores time
func Fixed(tr vmath.Transform) Animator {
	return func(float64) vmath.Transform {
		return tr
	}
}
