// File: session/session.go
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongarena/bollywood"
	"github.com/lguibr/pongarena/game"
	"github.com/lguibr/pongarena/render"
	"github.com/lguibr/pongarena/utils"
)

const (
	askTimeout = 250 * time.Millisecond

	// maxFrameDt caps the elapsed time of one frame, e.g. after the process was suspended.
	maxFrameDt = 0.25
)

// ErrClosed is returned by Run on a session that was already closed.
var ErrClosed = errors.New("session closed")

// Result describes how a session ended.
type Result struct {
	Final  game.Snapshot
	Winner game.Side
	Quit   bool // The player left before the match was decided
}

// WinnerMessage returns the line printed for the winning side.
func WinnerMessage(side game.Side) string {
	switch side {
	case game.SideLeft:
		return "Player won!"
	case game.SideRight:
		return "AI won!"
	}
	return "No winner."
}

// Session runs one match on a terminal screen: it owns the actor engine
// hosting the board, pumps screen events into it and draws a frame per tick.
type Session struct {
	cfg      utils.Config
	screen   tcell.Screen
	engine   *bollywood.Engine
	boardPID *bollywood.PID
	term     *render.Terminal
	keyboard *render.Keyboard
	logger   *log.Logger

	lastFrame time.Time
	closeOnce sync.Once
	closed    bool
}

// New spawns the board actor for a match. The screen must already be initialized.
func New(cfg utils.Config, screen tcell.Screen, audio game.Audio, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	engine := bollywood.NewEngine()
	pid := engine.Spawn(bollywood.NewProps(game.NewBoardActorProducer(cfg, audio)))
	if pid == nil {
		return nil, errors.New("spawning board actor failed")
	}

	return &Session{
		cfg:      cfg,
		screen:   screen,
		engine:   engine,
		boardPID: pid,
		term:     render.NewTerminal(screen),
		keyboard: render.NewKeyboard(cfg.KeyHoldTimeout),
		logger:   logger,
	}, nil
}

// Run plays until a side wins, the player quits or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if s.closed {
		return Result{}, ErrClosed
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(s.cfg.FramePeriod)
	defer ticker.Stop()
	s.lastFrame = time.Now()

	for {
		select {
		case <-ctx.Done():
			snap, err := s.Snapshot()
			if err != nil {
				return Result{Quit: true}, err
			}
			return Result{Final: snap, Winner: snap.Winner, Quit: true}, nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if s.handleKey(ev.Key(), ev.Rune(), time.Now()) {
					snap, err := s.Snapshot()
					if err != nil {
						return Result{Quit: true}, err
					}
					return Result{Final: snap, Winner: snap.Winner, Quit: true}, nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}

		case now := <-ticker.C:
			snap, err := s.frame(now)
			if err != nil {
				return Result{}, err
			}
			if snap.Winner != game.SideNone {
				s.term.Banner(WinnerMessage(snap.Winner))
				return Result{Final: snap, Winner: snap.Winner}, nil
			}
		}
	}
}

// handleKey forwards a key to the board and reports whether it quits the session.
func (s *Session) handleKey(key tcell.Key, ch rune, now time.Time) bool {
	if render.IsQuit(key, ch) {
		return true
	}
	for _, cmd := range s.keyboard.Press(key, ch, now) {
		s.engine.Send(s.boardPID, cmd, nil)
	}
	return false
}

// frame advances the board by the time since the previous frame and draws it.
func (s *Session) frame(now time.Time) (game.Snapshot, error) {
	dt := now.Sub(s.lastFrame).Seconds()
	s.lastFrame = now
	if dt > maxFrameDt {
		s.logger.Printf("WARN: frame took %.3fs, simulating %.3fs", dt, maxFrameDt)
		dt = maxFrameDt
	}

	for _, cmd := range s.keyboard.Expire(now) {
		s.engine.Send(s.boardPID, cmd, nil)
	}
	s.engine.Send(s.boardPID, game.TickCommand{Dt: dt}, nil)

	snap, err := s.Snapshot()
	if err != nil {
		return game.Snapshot{}, err
	}
	s.term.Draw(snap)
	return snap, nil
}

// Snapshot asks the board actor for the current state.
func (s *Session) Snapshot() (game.Snapshot, error) {
	reply, err := s.engine.Ask(s.boardPID, game.GetSnapshotRequest{}, askTimeout)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("querying board: %w", err)
	}
	snap, ok := reply.(game.Snapshot)
	if !ok {
		return game.Snapshot{}, fmt.Errorf("querying board: unexpected reply %T", reply)
	}
	return snap, nil
}

// Close stops the actor engine and releases the screen.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed = true
		s.engine.Shutdown(time.Second)
		s.screen.Fini()
	})
}
