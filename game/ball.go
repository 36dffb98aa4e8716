package game

import (
	"math"

	"github.com/lguibr/pongarena/utils"
)

type Ball struct {
	Bound Rect    `json:"bound"`
	Dx    float64 `json:"dx"`
	Dy    float64 `json:"dy"`
}

// NewBall returns a ball at rest in the arena center.
func NewBall(cfg utils.Config) Ball {
	r := cfg.BallRadius
	return Ball{
		Bound: Rect{
			X:      cfg.BoardWidth/2 - r,
			Y:      cfg.BoardHeight/2 - r,
			Width:  2 * r,
			Height: 2 * r,
		},
	}
}

// Serve recenters the ball and launches it horizontally toward the serving side.
func (ball *Ball) Serve(lhsServes bool, cfg utils.Config) {
	*ball = NewBall(cfg)
	ball.Dx = cfg.BallStartSpeed
	if lhsServes {
		ball.Dx = -cfg.BallStartSpeed
	}
}

func (ball *Ball) CenterX() float64 { return ball.Bound.CenterX() }
func (ball *Ball) CenterY() float64 { return ball.Bound.CenterY() }

func (ball *Ball) Speed() float64 {
	return math.Hypot(ball.Dx, ball.Dy)
}

// MovingToward reports whether the ball travels horizontally toward side.
func (ball Ball) MovingToward(side Side) bool {
	switch side {
	case SideLeft:
		return ball.Dx < 0
	case SideRight:
		return ball.Dx > 0
	}
	return false
}

func (ball *Ball) Speedup(amount float64) {
	ball.Dx *= amount
	ball.Dy *= amount
}

// Reflect mirrors the velocity across the unit normal (nx, ny): v' = v - 2(v.n)n.
func (ball *Ball) Reflect(nx, ny float64) {
	dot := -2 * utils.Dot(nx, ny, ball.Dx, ball.Dy)
	ball.Dx += dot * nx
	ball.Dy += dot * ny
}

// Translate moves the ball by its velocity over dt seconds.
func (ball *Ball) Translate(dt float64) {
	ball.Bound = ball.Bound.Translate(ball.Dx*dt, ball.Dy*dt)
}

// ClampVelocity limits a velocity to maxSpeed and to a slope |dy/dx| of at
// most maxSlope. The horizontal sign is kept; a zero dx takes the sign of
// dirX (or positive when dirX is zero too). Non-positive limits are ignored.
func ClampVelocity(dx, dy, maxSpeed, maxSlope, dirX float64) (float64, float64) {
	speed := math.Hypot(dx, dy)
	if speed == 0 {
		return 0, 0
	}

	signX := utils.Sign(dx)
	if signX == 0 {
		signX = utils.Sign(dirX)
	}
	if signX == 0 {
		signX = 1
	}

	if maxSlope > 0 && math.Abs(dy) > maxSlope*math.Abs(dx) {
		mag := math.Hypot(1, maxSlope)
		dx = signX * speed / mag
		dy = utils.Sign(dy) * maxSlope * speed / mag
	}

	if maxSpeed > 0 && speed > maxSpeed {
		scale := maxSpeed / speed
		dx *= scale
		dy *= scale
	}
	return dx, dy
}
