package parameter

// Frame Loop
const (
	// DefaultFPS is the host refresh rate; motion is independent of it
	DefaultFPS = 60

	// MaxFPS caps configured refresh rates
	MaxFPS = 240

	// FPSSmoothing is the EMA weight given to the newest frame when estimating FPS for the HUD
	FPSSmoothing = 0.1
)

// Logging
const (
	// DefaultLogDir is relative to the working directory
	DefaultLogDir = "logs"

	// DefaultLogFileName is the active log file inside the log directory
	DefaultLogFileName = "hero-motion.log"

	// DefaultLogMaxSizeMB rotates the log file when exceeded
	DefaultLogMaxSizeMB = 10
)
