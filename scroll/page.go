package scroll

// Page is a host-side scroll model for environments without a browser
// Offset stays inside [0, MaxOffset]; heights are in rows or pixels
type Page struct {
	Offset         float64
	DocumentHeight float64
	ViewportHeight float64
}

// NewPage creates a page scrolled to the top
func NewPage(documentHeight, viewportHeight float64) *Page {
	return &Page{DocumentHeight: documentHeight, ViewportHeight: viewportHeight}
}

// MaxOffset returns the page's scrollable extent, never negative
func (p *Page) MaxOffset() float64 {
	return max(0, MaxOffset(p.DocumentHeight, p.ViewportHeight))
}

// ScrollBy moves the offset by delta and clamps
func (p *Page) ScrollBy(delta float64) {
	p.ScrollTo(p.Offset + delta)
}

// ScrollTo sets the offset and clamps
func (p *Page) ScrollTo(offset float64) {
	p.Offset = min(max(offset, 0), p.MaxOffset())
}

// Home scrolls to the top
func (p *Page) Home() { p.Offset = 0 }

// End scrolls to the bottom
func (p *Page) End() { p.Offset = p.MaxOffset() }

// Resize changes the viewport and re-clamps the offset
func (p *Page) Resize(viewportHeight float64) {
	p.ViewportHeight = viewportHeight
	p.ScrollTo(p.Offset)
}

// SampleInto feeds the page's current state to a sampler
func (p *Page) SampleInto(s *Sampler) float64 {
	return s.Sample(p.Offset, p.DocumentHeight, p.ViewportHeight)
}
