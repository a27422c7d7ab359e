package renderer

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-motion/parameter/visual"
	"github.com/lixenwraith/hero-motion/render"
	"github.com/lixenwraith/hero-motion/scene"
	"github.com/lixenwraith/hero-motion/vmath"
)

// BodiesRenderer rasterises each frame's draw commands
// Meshes become depth-tested wireframes; spheres become shaded discs
type BodiesRenderer struct {
	lighting render.Lighting
	bg       colorful.Color
	opacity  float64
}

// NewBodiesRenderer binds the scene's lights and layer opacity
func NewBodiesRenderer(s scene.Scene) *BodiesRenderer {
	return &BodiesRenderer{
		lighting: render.NewLighting(s.Lights),
		bg:       render.MustHex(visual.Background),
		opacity:  s.Opacity,
	}
}

// Render implements render.SystemRenderer
func (r *BodiesRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	for _, cmd := range ctx.Commands {
		if cmd.Shape == scene.ShapeSphere {
			r.drawSphere(ctx, canvas, cmd)
			continue
		}
		r.drawMesh(ctx, canvas, cmd)
	}
}

func (r *BodiesRenderer) shade(cmd scene.DrawCommand) colorful.Color {
	level, tint, weight := r.lighting.At(vmath.Translation(cmd.World))
	return render.SurfaceColor(cmd.Material, level, tint, weight, r.opacity, r.bg)
}

func (r *BodiesRenderer) drawSphere(ctx render.RenderContext, canvas *render.Canvas, cmd scene.DrawCommand) {
	center := vmath.Translation(cmd.World)
	x, y, depth, ok := ctx.Projector.Project(center)
	if !ok {
		return
	}
	// World radius is the local radius times the matrix's x-axis scale
	radius := cmd.Size * cmd.World.Col(0).Vec3().Len()
	if cmd.Material.Distort > 0 {
		radius *= 1 + cmd.Material.Distort*0.15*math.Sin(cmd.Elapsed*cmd.Material.DistortSpeed)
	}
	canvas.Disc(x, y, ctx.Projector.Rows(radius, depth), depth, r.shade(cmd))
}

func (r *BodiesRenderer) drawMesh(ctx render.RenderContext, canvas *render.Canvas, cmd scene.DrawCommand) {
	mesh, ok := render.MeshFor(cmd)
	if !ok {
		return
	}
	mesh = mesh.Distort(cmd.Material.Distort, cmd.Material.DistortSpeed, cmd.Elapsed)
	fg := r.shade(cmd)

	type projected struct {
		x, y, depth float64
		ok          bool
	}
	pts := make([]projected, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		x, y, d, ok := ctx.Projector.Project(vmath.Apply(cmd.World, v))
		pts[i] = projected{x, y, d, ok}
	}

	for _, e := range mesh.Edges {
		a, b := pts[e[0]], pts[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		canvas.Line(a.x, a.y, a.depth, b.x, b.y, b.depth, fg)
	}

	// Solid materials mark their corners
	if !cmd.Material.Wireframe && cmd.Shape != scene.ShapeTorus {
		for _, p := range pts {
			if p.ok {
				canvas.Plot(int(math.Floor(p.x)), int(math.Floor(p.y)), p.depth-0.001, visual.EdgeVertex, fg)
			}
		}
	}
}
