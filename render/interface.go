package render

// SystemRenderer is one pass of the frame pipeline
type SystemRenderer interface {
	Render(ctx RenderContext, canvas *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
