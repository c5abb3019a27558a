package game

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Look and Pick"
)

// Scene lighting.
const (
	Ambient       = 0.35
	GazeHighlight = 0.3
)

// Environment overrides.
const (
	EnvComfortProfile = "LOOKANDPICK_COMFORT" // path to a YAML comfort profile
	EnvDebug          = "LOOKANDPICK_DEBUG"
)
