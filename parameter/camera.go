package parameter

// Projection configuration for the terminal render boundary
const (
	// CameraNear and CameraFar bound the default view frustum in scene units
	CameraNear = 0.1
	CameraFar  = 200.0

	// CellAspect is terminal cell height over width
	// Horizontal coordinates are stretched by this factor so circles stay round
	CellAspect = 2.0
)

// Hero scene camera
const (
	HeroCameraZ   = 8.0
	HeroCameraFOV = 45.0
)

// Tech-stack scene camera
const (
	TechStackCameraZ   = 5.0
	TechStackCameraFOV = 45.0
)
