// File: game/game.go
package game

import (
	"github.com/lguibr/pongarena/utils"
)

// Side identifies one half of the arena. The left side is human-controlled, the right side is driven by the AI.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Opponent returns the other side, or SideNone for SideNone.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

// TickResult describes what happened during one Update.
type TickResult struct {
	Contacts   []Contact `json:"contacts"`   // In resolution order
	Iterations int       `json:"iterations"` // Sub-step passes used
	Frozen     bool      `json:"frozen"`     // The post-hit delay consumed the whole tick
	Scored     Side      `json:"scored"`     // Side that scored this tick
}

// PaddleHit returns the side of the first paddle contact, or SideNone.
func (r TickResult) PaddleHit() Side {
	for _, c := range r.Contacts {
		if c.Kind == ContactPaddle {
			return c.Side
		}
	}
	return SideNone
}

// Snapshot is the read-only view the renderer consumes once per frame.
type Snapshot struct {
	LhsPaddle         Rect    `json:"lhsPaddle"`
	RhsPaddle         Rect    `json:"rhsPaddle"`
	Ball              Rect    `json:"ball"`
	LhsScore          int     `json:"lhsScore"`
	RhsScore          int     `json:"rhsScore"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	LhsGoalHeight     float64 `json:"lhsGoalHeight"`
	RhsGoalHeight     float64 `json:"rhsGoalHeight"`
	Winner            Side    `json:"winner"`
	BallSimOverridden bool    `json:"ballSimOverridden"`
}

// Board is the match aggregate. It is owned by a single goroutine: Update and
// HandleInput mutate it in place, readers take a Snapshot between updates.
type Board struct {
	LhsScore      int     `json:"lhsScore"`
	RhsScore      int     `json:"rhsScore"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	LhsGoalHeight float64 `json:"lhsGoalHeight"`
	RhsGoalHeight float64 `json:"rhsGoalHeight"`
	LhsPaddle     Paddle  `json:"lhsPaddle"`
	RhsPaddle     Paddle  `json:"rhsPaddle"`
	Ball          Ball    `json:"ball"`

	ai              AIController
	delay           float64 // Seconds the ball still rests after a paddle hit
	overrideBallSim bool
	cfg             utils.Config
	audio           Audio
}

// NewBoard creates a match with both paddles centered and the ball at rest.
// Call StartGame to serve. A nil audio discards sound cues.
func NewBoard(cfg utils.Config, audio Audio) *Board {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Board{
		Width:         cfg.BoardWidth,
		Height:        cfg.BoardHeight,
		LhsGoalHeight: cfg.LhsGoalHeight,
		RhsGoalHeight: cfg.RhsGoalHeight,
		LhsPaddle:     NewPaddle(SideLeft, cfg),
		RhsPaddle:     NewPaddle(SideRight, cfg),
		Ball:          NewBall(cfg),
		cfg:           cfg,
		audio:         audio,
	}
}

func (b *Board) Config() utils.Config { return b.cfg }

// AI exposes the right paddle controller state.
func (b *Board) AI() AIController { return b.ai }

// Delay returns the remaining post-hit rest in seconds.
func (b *Board) Delay() float64 { return b.delay }

func (b *Board) BallSimOverridden() bool { return b.overrideBallSim }

// Winner returns the side that reached the win score while the other did not.
func (b *Board) Winner() Side {
	lhsWon := b.LhsScore >= b.cfg.WinScore
	rhsWon := b.RhsScore >= b.cfg.WinScore
	switch {
	case lhsWon && !rhsWon:
		return SideLeft
	case rhsWon && !lhsWon:
		return SideRight
	}
	return SideNone
}

// StartGame resets round geometry and serves toward the left when lhsServes
// is true. Scores are kept.
func (b *Board) StartGame(lhsServes bool) {
	b.LhsPaddle = NewPaddle(SideLeft, b.cfg)
	b.RhsPaddle = NewPaddle(SideRight, b.cfg)
	b.Ball.Serve(lhsServes, b.cfg)
	b.ai.Reset()
	b.delay = 0
}

// Update advances the match by dt seconds. It is a no-op for dt <= 0 and
// once a winner exists.
func (b *Board) Update(dt float64) TickResult {
	var result TickResult
	if dt <= 0 || b.Winner() != SideNone {
		return result
	}

	if b.delay > 0 {
		if b.delay > dt {
			b.delay -= dt
			result.Frozen = true
			return result
		}
		dt -= b.delay
		b.delay = 0
	}

	b.ai.Update(&b.RhsPaddle, SideRight, b.Ball, b.Height, dt, b.cfg)
	b.LhsPaddle.Move(dt, b.cfg, b.Height)
	b.RhsPaddle.Move(dt, b.cfg, b.Height)

	if b.overrideBallSim {
		return result
	}

	dtLeft := b.resolveCollisions(dt, &result)

	if side := result.PaddleHit(); side != SideNone {
		b.Ball.Speedup(b.cfg.BallSpeedup)
		if b.cfg.ReflectionPolicy == utils.ReflectionClamped {
			dirX := 1.0
			if side == SideRight {
				dirX = -1
			}
			b.Ball.Dx, b.Ball.Dy = ClampVelocity(b.Ball.Dx, b.Ball.Dy, b.cfg.MaxBallSpeed, b.cfg.MaxBallSlope, dirX)
		}
		if b.cfg.PostHitDelay > 0 {
			b.delay = b.cfg.PostHitDelay
			dtLeft = 0
		}
	}

	b.Ball.Translate(dtLeft)
	b.playContactSound(result)
	result.Scored = b.checkScore()
	return result
}

// resolveCollisions runs the sub-step loop and returns the time left after the last contact.
func (b *Board) resolveCollisions(dt float64, result *TickResult) float64 {
	colliders := b.Colliders()
	dtLeft := dt
	collided := true

	for dtLeft > 0 && collided && result.Iterations < b.cfg.MaxCollisionIterations {
		result.Iterations++
		collided = false
		iterDx := b.Ball.Dx * dtLeft
		iterDy := b.Ball.Dy * dtLeft

		for _, c := range colliders {
			// Surfaces the ball is already leaving cannot be hit again.
			if utils.Dot(c.Normal.X, c.Normal.Y, b.Ball.Dx, b.Ball.Dy) >= 0 {
				continue
			}
			cs, ct, ok := Collides(b.Ball.CenterX(), b.Ball.CenterY(), iterDx, iterDy, c.X, c.Y, c.Dx, c.Dy)
			if !ok || !Hits(cs, ct) {
				continue
			}

			nx, ny := c.Normal.Resolve(ct, b.cfg)
			advance := cs - b.cfg.ContactEpsilon
			b.Ball.Bound = b.Ball.Bound.Translate(iterDx*advance, iterDy*advance)
			b.Ball.Reflect(nx, ny)
			dtLeft *= 1 - cs
			result.Contacts = append(result.Contacts, Contact{Kind: c.Kind, Side: c.Side})
			collided = true

			if c.Kind == ContactPaddle && b.cfg.PaddleHitEndsStep {
				return dtLeft
			}
			break
		}
	}
	return dtLeft
}

func (b *Board) playContactSound(result TickResult) {
	if len(result.Contacts) == 0 {
		return
	}
	if result.PaddleHit() != SideNone {
		b.audio.Play(SoundHit)
		return
	}
	b.audio.Play(SoundTick)
}

// checkScore awards a point once the ball leaves the arena and serves toward the side that conceded.
func (b *Board) checkScore() Side {
	switch {
	case b.Ball.Bound.X < 0:
		b.RhsScore++
		b.audio.Play(SoundError)
		b.StartGame(true)
		return SideRight
	case b.Ball.Bound.X > b.Width:
		b.LhsScore++
		b.audio.Play(SoundError)
		b.StartGame(false)
		return SideLeft
	}
	return SideNone
}

// Snapshot copies the state the renderer needs.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		LhsPaddle:         b.LhsPaddle.Bound,
		RhsPaddle:         b.RhsPaddle.Bound,
		Ball:              b.Ball.Bound,
		LhsScore:          b.LhsScore,
		RhsScore:          b.RhsScore,
		Width:             b.Width,
		Height:            b.Height,
		LhsGoalHeight:     b.LhsGoalHeight,
		RhsGoalHeight:     b.RhsGoalHeight,
		Winner:            b.Winner(),
		BallSimOverridden: b.overrideBallSim,
	}
}
