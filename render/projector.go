package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/scene"
)

// Projector maps world points onto a cell viewport
// Horizontal cells are stretched by CellAspect so a world circle stays round
type Projector struct {
	viewProj mgl64.Mat4
	view     mgl64.Mat4
	near     float64

	originY       int
	width, height int
	focal         float64 // rows per unit at depth 1
}

// NewProjector builds a perspective projector for a width×height cell area
// whose top row is originY
func NewProjector(cam scene.Camera, originY, width, height int) Projector {
	w, h := max(width, 1), max(height, 1)
	aspect := float64(w) / parameter.CellAspect / float64(h)
	fovY := mgl64.DegToRad(cam.FOV)

	view := mgl64.LookAtV(cam.Position, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(fovY, aspect, cam.Near, cam.Far)

	return Projector{
		viewProj: proj.Mul4(view),
		view:     view,
		near:     cam.Near,
		originY:  originY,
		width:    w,
		height:   h,
		focal:    float64(h) / 2 / math.Tan(fovY/2),
	}
}

// Project returns the cell coordinates and view depth of p
// ok is false when p is behind the near plane
func (pr Projector) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := pr.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() < pr.near {
		return 0, 0, 0, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	x = (nx + 1) / 2 * float64(pr.width)
	y = float64(pr.originY) + (1-ny)/2*float64(pr.height)
	return x, y, clip.W(), true
}

// Rows returns how many rows a world length r spans at view depth
func (pr Projector) Rows(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r * pr.focal / depth
}

// Depth returns the view-space distance of p in front of the camera
func (pr Projector) Depth(p mgl64.Vec3) float64 {
	return -pr.view.Mul4x1(p.Vec4(1)).Z()
}
