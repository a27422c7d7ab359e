package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hero-motion/motion"
	"github.com/lixenwraith/hero-motion/vmath"
)

// Body is the static configuration of one decorative floating body
type Body struct {
	Name  string
	Kind  BodyKind
	Shape Shape

	// Size is the primary dimension: radius for octahedron, sphere and
	// torus (major radius), edge length for box
	Size     float64
	Tube     float64 // torus minor radius
	Segments int     // torus polyline resolution

	Base          mgl64.Vec3
	Rotation      vmath.Euler // rest rotation, used by KindStatic
	Scale         float64
	RotationSpeed float64

	Material Material
}

// Animator returns the body's motion function
func (b Body) Animator() motion.Animator {
	switch b.Kind {
	case KindNode:
		return motion.NodeAnimator(motion.NodeParams{
			Base:          b.Base,
			Scale:         b.Scale,
			RotationSpeed: b.RotationSpeed,
		})
	case KindRing:
		scale := vmath.Uniform(b.Scale)
		return func(t float64) vmath.Transform {
			tr := motion.Ring(t)
			tr.Scale = scale
			return tr
		}
	default:
		return motion.Fixed(vmath.Transform{
			Position: b.Base,
			Rotation: b.Rotation,
			Scale:    vmath.Uniform(b.Scale),
		})
	}
}

// Group is a set of bodies and nested groups sharing an optional ambient
// float wrapper and a fixed rest transform
// World transform of a child = float ∘ rest ∘ child
type Group struct {
	Name     string
	Float    *motion.Float
	Position mgl64.Vec3
	Rotation vmath.Euler
	Bodies   []Body
	Groups   []Group
}

// rest returns the group's fixed local matrix
func (g Group) rest() mgl64.Mat4 {
	return vmath.Transform{
		Position: g.Position,
		Rotation: g.Rotation,
		Scale:    vmath.Uniform(1),
	}.Matrix()
}

// Count returns the number of bodies in g and all nested groups
func (g Group) Count() int {
	n := len(g.Bodies)
	for _, sub := range g.Groups {
		n += sub.Count()
	}
	return n
}
