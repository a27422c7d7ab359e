package visual

// Scene palette as CSS-style hex strings, parsed by go-colorful
const (
	NobelGold = "#C5A059"
	Zinc500   = "#71717a"
	Zinc400   = "#a1a1aa"
	Charcoal  = "#1a1a1a"
	Stone200  = "#e7e5e4"
	White     = "#ffffff"

	// Background is what transparent materials blend toward
	Background = "#0c0a09"
)

// Progress bar
const (
	// BarTrackAlpha is the opacity of the unfilled track over the background
	BarTrackAlpha = 0.3
)
