// File: bollywood/process.go
package bollywood

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process represents the running instance of an actor, including its state and mailbox.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	mailbox  chan *messageEnvelope
	props    *Props
	stopCh   chan struct{} // Closed once to stop the run loop
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// deliver enqueues an envelope without blocking. It reports false when the
// actor is stopped or its mailbox is full.
func (p *process) deliver(envelope *messageEnvelope) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.mailbox <- envelope:
		return true
	default:
		log.Printf("WARN: Actor %s mailbox full, dropping message type %T", p.pid.ID, envelope.message)
		return false
	}
}

func (p *process) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// run is the main loop for the actor process.
func (p *process) run() {
	defer p.engine.remove(p.pid)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Actor %s panicked: %v\nStack trace:\n%s", p.pid.ID, r, string(debug.Stack()))
			p.stopped.Store(true)
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("Actor %s producer returned nil actor", p.pid.ID))
	}
	p.invoke(&messageEnvelope{message: Started{}})

	for {
		select {
		case <-p.stopCh:
			p.stopped.Store(true)
			p.invoke(&messageEnvelope{message: Stopping{}})
			p.invoke(&messageEnvelope{message: Stopped{}})
			return

		case envelope := <-p.mailbox:
			if _, isStopping := envelope.message.(Stopping); isStopping {
				p.stop()
				continue
			}
			if p.stopped.Load() {
				continue
			}
			p.invoke(envelope)
		}
	}
}

// invoke calls the actor's Receive method, recovering from panics within it.
// A panicking actor answers a pending Ask with an error and is stopped.
func (p *process) invoke(envelope *messageEnvelope) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    envelope.sender,
		message:   envelope.message,
		requestID: envelope.requestID,
		replyCh:   envelope.replyCh,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s", p.pid.ID, envelope.message, r, string(debug.Stack()))
			ctx.Reply(fmt.Errorf("actor %s panicked: %v", p.pid.ID, r))
			p.stop()
		}
	}()
	p.actor.Receive(ctx)
}
