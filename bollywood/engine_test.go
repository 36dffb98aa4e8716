package bollywood

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRequest struct{ N int }

type recorderActor struct {
	mu       sync.Mutex
	received []interface{}
}

func (a *recorderActor) Receive(ctx Context) {
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.mu.Unlock()

	switch msg := ctx.Message().(type) {
	case pingRequest:
		ctx.Reply(msg.N + 1)
	case string:
		if msg == "fail" {
			ctx.Reply(errors.New("refused"))
		}
		if msg == "panic" {
			panic("boom")
		}
	}
}

func (a *recorderActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]interface{}, len(a.received))
	copy(out, a.received)
	return out
}

func spawnRecorder(t *testing.T, engine *Engine) (*recorderActor, *PID) {
	t.Helper()
	actor := &recorderActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	require.NotNil(t, pid)
	return actor, pid
}

func TestEngine_SpawnDeliversStartedThenMessages(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor, pid := spawnRecorder(t, engine)
	engine.Send(pid, "hello", nil)

	assert.Eventually(t, func() bool { return len(actor.messages()) == 2 }, time.Second, 5*time.Millisecond)
	msgs := actor.messages()
	assert.IsType(t, Started{}, msgs[0])
	assert.Equal(t, "hello", msgs[1])
	assert.Equal(t, 1, engine.ActorCount())
}

func TestEngine_AskReturnsReply(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	_, pid := spawnRecorder(t, engine)
	reply, err := engine.Ask(pid, pingRequest{N: 41}, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 42, reply)
}

func TestEngine_AskErrorReply(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	_, pid := spawnRecorder(t, engine)
	_, err := engine.Ask(pid, "fail", 100*time.Millisecond)
	assert.EqualError(t, err, "refused")
}

func TestEngine_AskTimeout(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	_, pid := spawnRecorder(t, engine)
	_, err := engine.Ask(pid, "no reply", 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestEngine_AskUnknownActor(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	_, err := engine.Ask(&PID{ID: "actor-404"}, pingRequest{}, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrActorNotFound)

	_, err = engine.Ask(nil, pingRequest{}, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestEngine_PanicRepliesErrorAndStopsActor(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	_, pid := spawnRecorder(t, engine)
	_, err := engine.Ask(pid, "panic", 100*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	assert.Eventually(t, func() bool { return engine.ActorCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestEngine_StopDeliversLifecycle(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor, pid := spawnRecorder(t, engine)
	assert.Eventually(t, func() bool { return len(actor.messages()) == 1 }, time.Second, 5*time.Millisecond)

	engine.Stop(pid)
	engine.Stop(pid)

	assert.Eventually(t, func() bool { return engine.ActorCount() == 0 }, time.Second, 5*time.Millisecond)
	msgs := actor.messages()
	require.Len(t, msgs, 3)
	assert.IsType(t, Stopping{}, msgs[1])
	assert.IsType(t, Stopped{}, msgs[2])
}

func TestEngine_ShutdownStopsEverything(t *testing.T) {
	engine := NewEngine()
	for i := 0; i < 5; i++ {
		spawnRecorder(t, engine)
	}
	assert.Equal(t, 5, engine.ActorCount())

	engine.Shutdown(time.Second)
	assert.Equal(t, 0, engine.ActorCount())
	assert.Nil(t, engine.Spawn(NewProps(func() Actor { return &recorderActor{} })))

	_, err := engine.Ask(&PID{ID: "actor-1"}, pingRequest{}, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestNewProps_NilProducerPanics(t *testing.T) {
	assert.Panics(t, func() { NewProps(nil) })
}

func TestPID_String(t *testing.T) {
	var pid *PID
	assert.Equal(t, "<nil>", pid.String())
	assert.Equal(t, "actor-7", (&PID{ID: "actor-7"}).String())
}
