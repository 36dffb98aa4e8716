// File: game/board_actor.go
package game

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/lguibr/pongarena/bollywood"
	"github.com/lguibr/pongarena/utils"
)

// BoardActor hosts a Board inside the actor engine so the input goroutine and
// the frame loop never touch the match concurrently.
type BoardActor struct {
	board *Board
}

// NewBoardActorProducer creates a bollywood.Producer for BoardActor. The board
// is served toward the left as soon as the actor starts.
func NewBoardActorProducer(cfg utils.Config, audio Audio) bollywood.Producer {
	return func() bollywood.Actor {
		return &BoardActor{
			board: NewBoard(cfg, audio),
		}
	}
}

// Receive handles incoming messages for the BoardActor.
func (a *BoardActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: BoardActor %s panicked handling %T: %v\n%s", ctx.Self(), ctx.Message(), r, string(debug.Stack()))
			if ctx.RequestID() != "" {
				ctx.Reply(fmt.Errorf("board actor panicked: %v", r))
			}
		}
	}()

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.board.StartGame(true)

	case TickCommand:
		result := a.board.Update(msg.Dt)
		ctx.Reply(result)

	case InputCommand:
		a.board.HandleInput(msg.Key, msg.Pressed)

	case RestartCommand:
		a.board.StartGame(msg.LhsServes)

	case GetSnapshotRequest:
		ctx.Reply(a.board.Snapshot())

	case bollywood.Stopping, bollywood.Stopped:

	default:
		log.Printf("WARN: BoardActor %s received unknown message: %T", ctx.Self(), msg)
		ctx.Reply(fmt.Errorf("board actor: unsupported message %T", msg))
	}
}
