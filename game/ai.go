package game

import (
	"github.com/lguibr/pongarena/utils"
)

// AIController drives a paddle toward a vertical target with a PID law.
type AIController struct {
	LastOffset  float64 `json:"lastOffset"`
	AccumOffset float64 `json:"accumOffset"`
}

// Reset clears the integral and derivative memory.
func (c *AIController) Reset() {
	c.LastOffset = 0
	c.AccumOffset = 0
}

// Target returns the vertical position the paddle on side tracks.
func (c *AIController) Target(side Side, ball Ball, boardHeight float64, cfg utils.Config) float64 {
	if cfg.AITrackAlways || ball.MovingToward(side) {
		return ball.Bound.CenterY()
	}
	return boardHeight / 2
}

// Update sets paddle.Ddy from the offset between the paddle center and its
// target. A non-positive dt leaves the paddle and the controller untouched.
func (c *AIController) Update(paddle *Paddle, side Side, ball Ball, boardHeight, dt float64, cfg utils.Config) {
	if dt <= 0 {
		return
	}

	offset := c.Target(side, ball, boardHeight, cfg) - paddle.Bound.CenterY()

	// Anti-windup: the integral restarts whenever the offset changes sign.
	if utils.Sign(offset) != utils.Sign(c.LastOffset) {
		c.AccumOffset = 0
	}
	c.AccumOffset += offset
	derivative := (offset - c.LastOffset) / dt
	c.LastOffset = offset

	desired := cfg.AIProportional*offset + cfg.AIIntegral*c.AccumOffset + cfg.AIDerivative*derivative
	desired = utils.ClampMagnitude(desired, cfg.AIMaxAccel)

	if !cfg.AIIncremental {
		paddle.Ddy = desired
		return
	}
	paddle.Ddy += utils.ClampMagnitude(desired-paddle.Ddy, cfg.AIMaxAccelSwing)
}
