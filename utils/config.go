// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for unusable tuning.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all tuning parameters of a match. It is passed by value and never mutated by the simulation.
type Config struct {
	// Timing
	FramePeriod    time.Duration `json:"framePeriod" toml:"frame_period"`        // Time between frames of the driver loop
	KeyHoldTimeout time.Duration `json:"keyHoldTimeout" toml:"key_hold_timeout"` // A direction key counts as released after this long without a repeat

	// Arena (fixed at build time, not loadable)
	BoardWidth    float64 `json:"boardWidth" toml:"-"`
	BoardHeight   float64 `json:"boardHeight" toml:"-"`
	PaddleXOffset float64 `json:"paddleXOffset" toml:"-"` // Distance from the board edge to the paddle center
	PaddleWidth   float64 `json:"paddleWidth" toml:"-"`
	PaddleHeight  float64 `json:"paddleHeight" toml:"-"`
	LhsGoalHeight float64 `json:"lhsGoalHeight" toml:"-"`
	RhsGoalHeight float64 `json:"rhsGoalHeight" toml:"-"`
	BallRadius    float64 `json:"ballRadius" toml:"-"`

	// Match
	WinScore               int `json:"winScore" toml:"-"`
	MaxCollisionIterations int `json:"maxCollisionIterations" toml:"-"`

	// Ball
	BallStartSpeed    float64 `json:"ballStartSpeed" toml:"ball_start_speed"`
	BallSpeedup       float64 `json:"ballSpeedup" toml:"ball_speedup"`               // Multiplier applied on every paddle contact
	ReflectionPolicy  string  `json:"reflectionPolicy" toml:"reflection_policy"`     // "speedup" or "clamped"
	MaxBallSpeed      float64 `json:"maxBallSpeed" toml:"max_ball_speed"`            // Clamped policy only
	MaxBallSlope      float64 `json:"maxBallSlope" toml:"max_ball_slope"`            // Clamped policy only, max |dy/dx|
	ContactEpsilon    float64 `json:"contactEpsilon" toml:"contact_epsilon"`         // Fraction of the sub-step kept off the surface
	PaddleHitEndsStep bool    `json:"paddleHitEndsStep" toml:"paddle_hit_ends_step"` // Stop resolving after a paddle contact
	PostHitDelay      float64 `json:"postHitDelay" toml:"post_hit_delay"`            // Seconds the ball rests after a paddle hit, 0 disables

	// Paddles
	PaddleMaxSpeed    float64 `json:"paddleMaxSpeed" toml:"paddle_max_speed"`
	PaddleFriction    float64 `json:"paddleFriction" toml:"paddle_friction"` // Velocity fraction kept after one second
	PaddleCurve       float64 `json:"paddleCurve" toml:"paddle_curve"`
	PlayerPaddleAccel float64 `json:"playerPaddleAccel" toml:"player_paddle_accel"`

	// AI
	AIProportional  float64 `json:"aiProportional" toml:"ai_proportional"`
	AIIntegral      float64 `json:"aiIntegral" toml:"ai_integral"`
	AIDerivative    float64 `json:"aiDerivative" toml:"ai_derivative"`
	AIMaxAccel      float64 `json:"aiMaxAccel" toml:"ai_max_accel"`            // 0 disables the clamp
	AIMaxAccelSwing float64 `json:"aiMaxAccelSwing" toml:"ai_max_accel_swing"` // Incremental mode only, 0 disables the clamp
	AIIncremental   bool    `json:"aiIncremental" toml:"ai_incremental"`
	AITrackAlways   bool    `json:"aiTrackAlways" toml:"ai_track_always"` // false: track the midline while the ball moves away

	// Audio
	Volume float64 `json:"volume" toml:"volume"` // Master volume in [0, 1], 0 mutes

	// Debug
	DebugNudge float64 `json:"debugNudge" toml:"debug_nudge"`
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() Config {
	return Config{
		// Timing
		FramePeriod:    16 * time.Millisecond,
		KeyHoldTimeout: 500 * time.Millisecond,

		// Arena
		BoardWidth:    BoardWidth,
		BoardHeight:   BoardHeight,
		PaddleXOffset: PaddleXOffset,
		PaddleWidth:   PaddleWidth,
		PaddleHeight:  PaddleHeight,
		LhsGoalHeight: GoalHeight,
		RhsGoalHeight: GoalHeight,
		BallRadius:    BallRadius,

		// Match
		WinScore:               WinScore,
		MaxCollisionIterations: MaxCollisionIterations,

		// Ball
		BallStartSpeed:    250,
		BallSpeedup:       1.1,
		ReflectionPolicy:  ReflectionSpeedup,
		MaxBallSpeed:      900,
		MaxBallSlope:      2,
		ContactEpsilon:    0.001,
		PaddleHitEndsStep: false,
		PostHitDelay:      0,

		// Paddles
		PaddleMaxSpeed:    500,
		PaddleFriction:    0.005,
		PaddleCurve:       0.1,
		PlayerPaddleAccel: 2000,

		// AI
		AIProportional: 30,
		AITrackAlways:  true,

		// Audio
		Volume: 0.5,

		// Debug
		DebugNudge: 5,
	}
}

// TunedConfig returns the high-fidelity tuning: clamped reflections, PID tracking and a short rest after paddle hits.
func TunedConfig() Config {
	cfg := DefaultConfig()

	cfg.ReflectionPolicy = ReflectionClamped
	cfg.ContactEpsilon = 0
	cfg.PaddleHitEndsStep = true
	cfg.PostHitDelay = 0.05
	cfg.PaddleCurve = 0.3

	cfg.AIProportional = 40
	cfg.AIIntegral = 0.5
	cfg.AIDerivative = 4
	cfg.AIMaxAccel = 3000
	cfg.AIMaxAccelSwing = 400
	cfg.AIIncremental = true
	cfg.AITrackAlways = false

	return cfg
}

// Validate reports the first parameter that would make the simulation degenerate.
func (c Config) Validate() error {
	switch {
	case c.BoardWidth <= 0 || c.BoardHeight <= 0:
		return fmt.Errorf("%w: board must have positive size, got %vx%v", ErrInvalidConfig, c.BoardWidth, c.BoardHeight)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.PaddleHeight > c.BoardHeight:
		return fmt.Errorf("%w: paddle %vx%v does not fit the board", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.LhsGoalHeight < 0 || c.LhsGoalHeight > c.BoardHeight || c.RhsGoalHeight < 0 || c.RhsGoalHeight > c.BoardHeight:
		return fmt.Errorf("%w: goal heights %v/%v must be within [0, %v]", ErrInvalidConfig, c.LhsGoalHeight, c.RhsGoalHeight, c.BoardHeight)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.WinScore <= 0:
		return fmt.Errorf("%w: win score must be positive", ErrInvalidConfig)
	case c.MaxCollisionIterations <= 0:
		return fmt.Errorf("%w: collision iteration cap must be positive", ErrInvalidConfig)
	case c.BallStartSpeed <= 0:
		return fmt.Errorf("%w: ball start speed must be positive", ErrInvalidConfig)
	case c.BallSpeedup < 1:
		return fmt.Errorf("%w: ball speedup %v must be >= 1", ErrInvalidConfig, c.BallSpeedup)
	case c.ReflectionPolicy != ReflectionSpeedup && c.ReflectionPolicy != ReflectionClamped:
		return fmt.Errorf("%w: unknown reflection policy %q", ErrInvalidConfig, c.ReflectionPolicy)
	case c.ReflectionPolicy == ReflectionClamped && (c.MaxBallSpeed <= 0 || c.MaxBallSlope <= 0):
		return fmt.Errorf("%w: clamped reflection needs positive max speed and slope", ErrInvalidConfig)
	case c.ContactEpsilon < 0 || c.ContactEpsilon >= 1:
		return fmt.Errorf("%w: contact epsilon %v must be within [0, 1)", ErrInvalidConfig, c.ContactEpsilon)
	case c.PostHitDelay < 0:
		return fmt.Errorf("%w: post-hit delay must not be negative", ErrInvalidConfig)
	case c.PaddleMaxSpeed <= 0:
		return fmt.Errorf("%w: paddle max speed must be positive", ErrInvalidConfig)
	case c.PaddleFriction <= 0 || c.PaddleFriction > 1:
		return fmt.Errorf("%w: paddle friction %v must be within (0, 1]", ErrInvalidConfig, c.PaddleFriction)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %v must be within [0, 1]", ErrInvalidConfig, c.Volume)
	case c.FramePeriod <= 0:
		return fmt.Errorf("%w: frame period must be positive", ErrInvalidConfig)
	case c.KeyHoldTimeout <= 0:
		return fmt.Errorf("%w: key hold timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig decodes a TOML tuning file on top of base. Keys the file does not set keep the base values.
func LoadConfig(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalidConfig, path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
