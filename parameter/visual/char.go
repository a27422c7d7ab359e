package visual

// BarEighths are left-aligned partial blocks for sub-cell progress bar fill
// Index n covers n/8 of the cell
var BarEighths = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// Wireframe edge glyphs by screen-space slope
const (
	EdgeHorizontal = '─'
	EdgeVertical   = '│'
	EdgeRising     = '╱'
	EdgeFalling    = '╲'
	EdgeVertex     = '◆'
)

// StarGlyphs from faint to bright
var StarGlyphs = [3]rune{'·', '∙', '•'}

// SphereShades from dark rim to bright core
var SphereShades = [5]rune{'░', '▒', '▓', '█', '█'}
