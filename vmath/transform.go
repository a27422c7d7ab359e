package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Euler is a rotation in radians applied in XYZ order (matrix Rx·Ry·Rz)
// No wraparound: downstream consumers treat angles mod 2π
type Euler struct {
	X, Y, Z float64
}

// Matrix returns the homogeneous rotation matrix Rx·Ry·Rz
func (e Euler) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(e.X).
		Mul4(mgl64.HomogRotate3DY(e.Y)).
		Mul4(mgl64.HomogRotate3DZ(e.Z))
}

// Add returns the component-wise sum
func (e Euler) Add(o Euler) Euler {
	return Euler{e.X + o.X, e.Y + o.Y, e.Z + o.Z}
}

// Transform is a local position/rotation/scale triple
type Transform struct {
	Position mgl64.Vec3
	Rotation Euler
	Scale    mgl64.Vec3
}

// Identity returns a transform that maps every point to itself
func Identity() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// Uniform returns a unit-scale vector multiplied by s
func Uniform(s float64) mgl64.Vec3 {
	return mgl64.Vec3{s, s, s}
}

// Matrix returns T · R · S
func (t Transform) Matrix() mgl64.Mat4 {
	s := t.Scale
	if s == (mgl64.Vec3{}) {
		// Zero value transform behaves as identity scale
		s = mgl64.Vec3{1, 1, 1}
	}
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(t.Rotation.Matrix()).
		Mul4(mgl64.Scale3D(s.X(), s.Y(), s.Z()))
}

// Compose applies inner first, then outer
func Compose(outer, inner mgl64.Mat4) mgl64.Mat4 {
	return outer.Mul4(inner)
}

// Chain composes transforms listed outermost first
func Chain(ts ...Transform) mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, t := range ts {
		m = Compose(m, t.Matrix())
	}
	return m
}

// Apply transforms point p by m
func Apply(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// Translation extracts the translation column of m
func Translation(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

// Decompose splits an affine matrix into translation, XYZ Euler rotation and
// per-axis scale. Shear has no representation and leaks into rotation
func Decompose(m mgl64.Mat4) Transform {
	scale := mgl64.Vec3{m.Col(0).Vec3().Len(), m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()}

	var r mgl64.Mat3
	for c := 0; c < 3; c++ {
		col := m.Col(c).Vec3()
		if scale[c] != 0 {
			col = col.Mul(1 / scale[c])
		}
		r.SetCol(c, col)
	}

	var e Euler
	sy := math.Max(-1, math.Min(1, r.At(0, 2)))
	e.Y = math.Asin(sy)
	if math.Abs(sy) < 1-1e-9 {
		e.X = math.Atan2(-r.At(1, 2), r.At(2, 2))
		e.Z = math.Atan2(-r.At(0, 1), r.At(0, 0))
	} else {
		// Gimbal lock: fold all of the remaining turn into X
		e.X = math.Atan2(r.At(2, 1), r.At(1, 1))
	}

	return Transform{Position: Translation(m), Rotation: e, Scale: scale}
}
