package bollywood

// Actor owns its state and handles one message at a time, so a hosted match
// never sees a tick and a key press concurrently.
type Actor interface {
	// Receive handles ctx.Message(). Messages sent with Engine.Ask carry a
	// RequestID and must be answered with ctx.Reply.
	Receive(ctx Context)
}
