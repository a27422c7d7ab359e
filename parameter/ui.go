package parameter

// Layout & Margins
const (
	// TopMargin holds the scroll progress bar
	TopMargin = 1

	// BottomMargin holds the HUD line
	BottomMargin = 1
)

// HUD text
const (
	HUDPausedText = "[PAUSED]"
	HUDHelpText   = "wheel/↑↓/PgUp/PgDn:scroll  p:pause  h:hud  q:quit"
)

// Virtual document
const (
	// DefaultDocumentRows is the scrollable page height used by the terminal host
	DefaultDocumentRows = 400

	// ScrollStepRows is rows per wheel notch or arrow press
	ScrollStepRows = 3
)
