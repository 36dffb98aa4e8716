// File: game/messages.go
package game

// --- Commands (driver -> BoardActor) ---

// TickCommand advances the hosted board by Dt seconds. When sent with Ask the
// actor replies with the TickResult.
type TickCommand struct {
	Dt float64
}

// InputCommand forwards a key press or release to the board.
type InputCommand struct {
	Key     Key
	Pressed bool
}

// RestartCommand resets round geometry without touching the scores.
type RestartCommand struct {
	LhsServes bool
}

// --- Queries (Ask) ---

// GetSnapshotRequest asks the BoardActor for the current Snapshot.
type GetSnapshotRequest struct{}
