package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/parameter/visual"
)

type cell struct {
	r     rune
	fg    colorful.Color
	bg    colorful.Color
	depth float64
}

// Canvas is a depth-tested cell buffer flushed to a tcell screen once per frame
type Canvas struct {
	width, height int
	cells         []cell
	background    colorful.Color
}

// NewCanvas creates a cleared canvas
func NewCanvas(width, height int, background colorful.Color) *Canvas {
	c := &Canvas{background: background}
	c.Resize(width, height)
	return c
}

// Resize reallocates the buffer and clears it
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.cells = make([]cell, c.width*c.height)
	c.Clear()
}

// Size returns the canvas dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear resets every cell to empty background at infinite depth
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: c.background, bg: c.background, depth: math.Inf(1)}
	}
}

// Plot writes r at (x, y) when depth is nearer than what is there
func (c *Canvas) Plot(x, y int, depth float64, r rune, fg colorful.Color) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	cl := &c.cells[y*c.width+x]
	if depth >= cl.depth {
		return false
	}
	cl.r = r
	cl.fg = fg
	cl.depth = depth
	return true
}

// Fill sets a background colour at (x, y) ignoring depth (overlay layers)
func (c *Canvas) Fill(x, y int, r rune, fg, bg colorful.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	cl := &c.cells[y*c.width+x]
	cl.r = r
	cl.fg = fg
	cl.bg = bg
	cl.depth = math.Inf(-1)
}

// At returns the rune and foreground at (x, y)
func (c *Canvas) At(x, y int) (rune, colorful.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, colorful.Color{}
	}
	cl := c.cells[y*c.width+x]
	return cl.r, cl.fg
}

// Line draws a depth-interpolated segment with a slope-matched glyph
func (c *Canvas) Line(x0, y0, d0, x1, y1, d1 float64, fg colorful.Color) {
	glyph := edgeGlyph(x1-x0, y1-y0)

	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.Plot(int(math.Floor(x0)), int(math.Floor(y0)), d0, glyph, fg)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + dx*t
		y := y0 + dy*t
		c.Plot(int(math.Floor(x)), int(math.Floor(y)), d0+(d1-d0)*t, glyph, fg)
	}
}

// Disc fills a shaded ellipse of radius rows (2× wide in columns)
// Brighter toward the centre; shade glyphs follow the same falloff
func (c *Canvas) Disc(cx, cy, rows, depth float64, fg colorful.Color) {
	if rows < 0.35 {
		c.Plot(int(math.Floor(cx)), int(math.Floor(cy)), depth, visual.StarGlyphs[2], fg)
		return
	}
	cols := rows * parameter.CellAspect
	minX, maxX := int(math.Floor(cx-cols)), int(math.Ceil(cx+cols))
	minY, maxY := int(math.Floor(cy-rows)), int(math.Ceil(cy+rows))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			nx := (float64(x) + 0.5 - cx) / cols
			ny := (float64(y) + 0.5 - cy) / rows
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}
			nz := math.Sqrt(1 - distSq)
			idx := int(nz * float64(len(visual.SphereShades)-1))
			c.Plot(x, y, depth-nz*rows*0.01, visual.SphereShades[idx], ScaleColor(fg, 0.55+0.45*nz))
		}
	}
}

// Flush copies the canvas onto screen; caller calls Show
func (c *Canvas) Flush(screen tcell.Screen) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			style := tcell.StyleDefault.Foreground(ToTcell(cl.fg)).Background(ToTcell(cl.bg))
			screen.SetContent(x, y, cl.r, nil, style)
		}
	}
}

// edgeGlyph picks a line glyph from the on-screen slope
// Rows are CellAspect times taller than columns are wide
func edgeGlyph(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)*parameter.CellAspect
	switch {
	case adx == 0 && ady == 0:
		return visual.EdgeVertex
	case ady < adx*0.5:
		return visual.EdgeHorizontal
	case adx < ady*0.5:
		return visual.EdgeVertical
	case (dx > 0) == (dy > 0):
		// Screen y grows downward
		return visual.EdgeFalling
	default:
		return visual.EdgeRising
	}
}
