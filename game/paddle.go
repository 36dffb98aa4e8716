// File: game/paddle.go
package game

import (
	"math"

	"github.com/lguibr/pongarena/utils"
)

type Paddle struct {
	Bound Rect    `json:"bound"`
	Dy    float64 `json:"dy"`  // Velocity
	Ddy   float64 `json:"ddy"` // Acceleration
}

// NewPaddle returns a paddle at rest, vertically centered, on the given side.
func NewPaddle(side Side, cfg utils.Config) Paddle {
	x := cfg.PaddleXOffset - cfg.PaddleWidth/2
	if side == SideRight {
		x = cfg.BoardWidth - cfg.PaddleXOffset - cfg.PaddleWidth/2
	}
	return Paddle{
		Bound: Rect{
			X:      x,
			Y:      cfg.BoardHeight/2 - cfg.PaddleHeight/2,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
		},
	}
}

// Move integrates acceleration, friction and position over dt seconds. The
// paddle bounces off its travel limits instead of sticking to them.
func (paddle *Paddle) Move(dt float64, cfg utils.Config, boardHeight float64) {
	paddle.Dy += paddle.Ddy * dt
	paddle.Dy = utils.ClampMagnitude(paddle.Dy, cfg.PaddleMaxSpeed)
	paddle.Dy *= math.Pow(cfg.PaddleFriction, dt)

	y := paddle.Bound.Y + paddle.Dy*dt
	maxY := boardHeight - paddle.Bound.Height
	if y < 0 {
		y = 0
		paddle.Dy = math.Abs(paddle.Dy)
	} else if y > maxY {
		y = maxY
		paddle.Dy = -math.Abs(paddle.Dy)
	}
	paddle.Bound.Y = y
}
