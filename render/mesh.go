package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hero-motion/scene"
)

// Mesh is a local-space vertex list with edge index pairs
type Mesh struct {
	Vertices []mgl64.Vec3
	Edges    [][2]int
}

// Octahedron has its six vertices on the axes at distance r
func Octahedron(r float64) Mesh {
	return Mesh{
		Vertices: []mgl64.Vec3{
			{r, 0, 0}, {0, 0, r}, {-r, 0, 0}, {0, 0, -r}, // equator
			{0, r, 0}, {0, -r, 0}, // poles
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
			{0, 5}, {1, 5}, {2, 5}, {3, 5},
		},
	}
}

// Box is an axis-aligned cube of edge size
func Box(size float64) Mesh {
	h := size / 2
	m := Mesh{Vertices: make([]mgl64.Vec3, 0, 8)}
	for i := 0; i < 8; i++ {
		m.Vertices = append(m.Vertices, mgl64.Vec3{
			h * float64(1-2*(i&1)),
			h * float64(1-(i&2)),
			h * float64(1-(i&4)/2),
		})
	}
	// Vertices differing in exactly one sign bit share an edge
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				m.Edges = append(m.Edges, [2]int{i, j})
			}
		}
	}
	return m
}

// TorusRing is the torus major circle in its local XY plane
// The tube is far thinner than a cell at hero scale, so only the circle is drawn
func TorusRing(radius float64, segments int) Mesh {
	m := Mesh{
		Vertices: make([]mgl64.Vec3, segments),
		Edges:    make([][2]int, segments),
	}
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		m.Vertices[i] = mgl64.Vec3{radius * math.Cos(a), radius * math.Sin(a), 0}
		m.Edges[i] = [2]int{i, (i + 1) % segments}
	}
	return m
}

// MeshFor returns the wireframe for a draw command; spheres have none
func MeshFor(cmd scene.DrawCommand) (Mesh, bool) {
	switch cmd.Shape {
	case scene.ShapeOctahedron:
		return Octahedron(cmd.Size), true
	case scene.ShapeBox:
		return Box(cmd.Size), true
	case scene.ShapeTorus:
		return TorusRing(cmd.Size, max(cmd.Segments, 3)), true
	default:
		return Mesh{}, false
	}
}

// Distort pushes each vertex along its own direction by a per-vertex wave
func (m Mesh) Distort(amount, speed, t float64) Mesh {
	if amount == 0 {
		return m
	}
	out := Mesh{Vertices: make([]mgl64.Vec3, len(m.Vertices)), Edges: m.Edges}
	for i, v := range m.Vertices {
		phase := v.X()*3 + v.Y()*2 + v.Z() + float64(i)
		out.Vertices[i] = v.Mul(1 + amount*0.25*math.Sin(t*speed+phase))
	}
	return out
}
