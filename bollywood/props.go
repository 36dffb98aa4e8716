package bollywood

// Producer builds a fresh actor, e.g. a BoardActor around a new Board.
type Producer func() Actor

// Props carries what Spawn needs to start an actor.
type Props struct {
	producer Producer
}

// NewProps panics on a nil producer so a miswired spawn fails at startup, not on the first tick.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce returns the actor for a newly spawned process.
func (p *Props) Produce() Actor {
	return p.producer()
}
