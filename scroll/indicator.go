package scroll

import "github.com/lixenwraith/hero-motion/vmath"

// Indicator is the visual parameter set of the fixed progress bar
// ScaleX is a horizontal scale factor; OriginX is the transform origin as a
// fraction of width (0 = left edge)
type Indicator struct {
	ScaleX  float64
	OriginX float64
}

// IndicatorFor anchors the bar at the left edge so it fills left to right
func IndicatorFor(progress float64) Indicator {
	return Indicator{ScaleX: vmath.Clamp01(progress)}
}

// Span returns the filled extent [start, end) of a bar of the given width
// Scaling about OriginX keeps the origin point fixed
func (ind Indicator) Span(width float64) (start, end float64) {
	s := vmath.Clamp01(ind.ScaleX)
	o := vmath.Clamp01(ind.OriginX)
	pivot := o * width
	start = pivot - pivot*s
	end = start + width*s
	return start, end
}
