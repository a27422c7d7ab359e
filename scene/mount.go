package scene

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hero-motion/motion"
	"github.com/lixenwraith/hero-motion/vmath"
)

// DrawCommand is one primitive for the render boundary at this frame
type DrawCommand struct {
	Path     string
	Shape    Shape
	Size     float64
	Tube     float64
	Segments int
	World    mgl64.Mat4
	Material Material
	Elapsed  float64
}

// link is one enclosing group level, outermost first
type link struct {
	float *motion.Float
	rest  mgl64.Mat4
}

type mountedBody struct {
	path  string
	body  Body
	anim  motion.Animator
	chain []link
}

// Mounted is a live scene produced by Mount
// Frame is called by exactly one goroutine; Unmount may come from any
type Mounted struct {
	scene   Scene
	bodies  []mountedBody
	cmds    []DrawCommand
	stopped atomic.Bool
}

// Mount validates s and flattens its group tree once
func Mount(s Scene) (*Mounted, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	m := &Mounted{scene: s}
	for i, g := range s.Groups {
		m.flatten(g, groupPath("", g, i), nil)
	}
	m.cmds = make([]DrawCommand, len(m.bodies))
	return m, nil
}

func (m *Mounted) flatten(g Group, path string, chain []link) {
	l := link{rest: g.rest()}
	if g.Float != nil {
		f := *g.Float
		l.float = &f
	}
	// Copy so sibling groups do not share a backing array
	own := make([]link, len(chain)+1)
	copy(own, chain)
	own[len(chain)] = l

	for i, b := range g.Bodies {
		m.bodies = append(m.bodies, mountedBody{
			path:  bodyPath(path, b, i),
			body:  b,
			anim:  b.Animator(),
			chain: own,
		})
	}
	for i, sub := range g.Groups {
		m.flatten(sub, groupPath(path, sub, i), own)
	}
}

// Scene returns the mounted configuration
func (m *Mounted) Scene() Scene {
	return m.scene
}

// Bodies returns the number of mounted bodies
func (m *Mounted) Bodies() int {
	return len(m.bodies)
}

// Frame computes every body's world transform at elapsed seconds t
// Returned slice is reused by the next call; nil after Unmount
func (m *Mounted) Frame(t float64) []DrawCommand {
	if m.stopped.Load() {
		return nil
	}

	for i := range m.bodies {
		mb := &m.bodies[i]
		m.cmds[i] = DrawCommand{
			Path:     mb.path,
			Shape:    mb.body.Shape,
			Size:     mb.body.Size,
			Tube:     mb.body.Tube,
			Segments: mb.body.Segments,
			World:    worldMatrix(mb.chain, mb.anim, t),
			Material: mb.body.Material,
			Elapsed:  t,
		}
	}
	return m.cmds
}

// Unmount stops further frames
func (m *Mounted) Unmount() {
	m.stopped.Store(true)
}

// Active reports whether the scene still produces frames
func (m *Mounted) Active() bool {
	return !m.stopped.Load()
}

// worldMatrix wraps the child's local matrix level by level, innermost first
// Each float wrapper only sees an opaque child matrix
func worldMatrix(chain []link, anim motion.Animator, t float64) mgl64.Mat4 {
	inner := anim(t).Matrix()
	for i := len(chain) - 1; i >= 0; i-- {
		inner = vmath.Compose(chain[i].rest, inner)
		if f := chain[i].float; f != nil {
			inner = f.Wrap(t, inner)
		}
	}
	return inner
}
