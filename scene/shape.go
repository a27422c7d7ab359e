package scene

import (
	"strings"

	"github.com/pkg/errors"
)

// Shape names a primitive the render boundary knows how to draw
type Shape uint8

const (
	ShapeOctahedron Shape = iota
	ShapeTorus
	ShapeBox
	ShapeSphere
)

var shapeNames = [...]string{
	ShapeOctahedron: "octahedron",
	ShapeTorus:      "torus",
	ShapeBox:        "box",
	ShapeSphere:     "sphere",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Valid reports whether s is a known shape
func (s Shape) Valid() bool {
	return int(s) < len(shapeNames)
}

// ParseShape resolves a shape name, case-insensitive
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range shapeNames {
		if sn == n {
			return Shape(i), nil
		}
	}
	return 0, errors.Errorf("unknown shape %q", name)
}

// BodyKind selects the motion function applied to a body
type BodyKind uint8

const (
	// KindNode bobs and spins around its base position
	KindNode BodyKind = iota
	// KindRing spins and wobbles at the origin
	KindRing
	// KindStatic keeps its rest transform
	KindStatic
)

var kindNames = [...]string{
	KindNode:   "node",
	KindRing:   "ring",
	KindStatic: "static",
}

func (k BodyKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind resolves a body kind name, case-insensitive
func ParseKind(name string) (BodyKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, kn := range kindNames {
		if kn == n {
			return BodyKind(i), nil
		}
	}
	return 0, errors.Errorf("unknown body kind %q", name)
}
