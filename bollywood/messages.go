package bollywood

// Lifecycle messages, delivered by the engine in this order.
type (
	// Started is the first message an actor sees. The board actor serves
	// the opening round when it arrives.
	Started struct{}
	// Stopping follows Engine.Stop or Shutdown. Nothing queued after it is handled.
	Stopping struct{}
	// Stopped is delivered last, right before the actor's goroutine exits.
	Stopped struct{}
)

// messageEnvelope is one mailbox entry. requestID and replyCh are set only for Ask.
type messageEnvelope struct {
	sender    *PID
	message   interface{}
	requestID string
	replyCh   chan interface{}
}
