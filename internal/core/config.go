package core

// RuntimeConfig contains per-session settings supplied by the platform layer.
type RuntimeConfig struct {
	ScreenW  int   // Canvas width in cells
	ScreenH  int   // Canvas height in cells
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for mine placement; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
