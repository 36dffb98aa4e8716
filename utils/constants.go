package utils

// Arena geometry is fixed at build time.
const (
	BoardWidth    = 600.0
	BoardHeight   = 300.0
	PaddleXOffset = 10.0
	PaddleWidth   = 10.0
	PaddleHeight  = 75.0
	GoalHeight    = 240.0
	BallRadius    = 5.0
)

const (
	WinScore = 10

	// MaxCollisionIterations bounds the sub-step loop of a single tick.
	MaxCollisionIterations = 10
)

// Reflection policies applied on paddle contacts.
const (
	ReflectionSpeedup = "speedup"
	ReflectionClamped = "clamped"
)
