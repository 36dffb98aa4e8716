package bollywood

// PID addresses a spawned actor. The session keeps the board actor's PID and
// uses it for every tick, key and snapshot query.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
