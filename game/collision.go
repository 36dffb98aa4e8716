// File: game/collision.go
package game

import (
	"github.com/lguibr/pongarena/utils"
)

// ContactKind classifies what the ball touched during a sub-step.
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactWall
	ContactGoalBorder
	ContactPaddle
)

func (k ContactKind) String() string {
	switch k {
	case ContactWall:
		return "wall"
	case ContactGoalBorder:
		return "goalBorder"
	case ContactPaddle:
		return "paddle"
	}
	return "none"
}

// Contact is one resolved collision. Side is set for paddle and goal border contacts.
type Contact struct {
	Kind ContactKind `json:"kind"`
	Side Side        `json:"side"`
}

// NormalKind tags how a collider's reflection normal is computed.
type NormalKind int

const (
	NormalStatic NormalKind = iota
	NormalPaddle
)

// Normal is either a fixed unit vector or a paddle face whose normal bends with
// the contact position and the paddle's own velocity.
type Normal struct {
	Kind     NormalKind
	X, Y     float64 // Static normal, also the approach test direction for paddles
	PaddleDy float64 // Paddle velocity captured when the collider table was built
}

// StaticNormal builds a fixed normal.
func StaticNormal(nx, ny float64) Normal {
	return Normal{Kind: NormalStatic, X: nx, Y: ny}
}

// PaddleNormal builds the curved normal of a paddle face pointing toward the arena.
func PaddleNormal(side Side, paddleDy float64) Normal {
	nx := 1.0
	if side == SideRight {
		nx = -1
	}
	return Normal{Kind: NormalPaddle, X: nx, Y: 0, PaddleDy: paddleDy}
}

// Resolve returns the unit normal at contact fraction ct along the collider.
func (n Normal) Resolve(ct float64, cfg utils.Config) (float64, float64) {
	if n.Kind == NormalStatic {
		return n.X, n.Y
	}
	dy := ((2*ct - 1) + n.PaddleDy/cfg.PaddleMaxSpeed) * cfg.PaddleCurve
	return utils.Normalize(n.X, dy)
}

// Collider is a line segment anchored at (X, Y) spanning (Dx, Dy), already
// offset by the ball radius so it can be tested against the ball center.
type Collider struct {
	X, Y   float64
	Dx, Dy float64
	Normal Normal
	Kind   ContactKind
	Side   Side
}

// Collides solves where a point moving from (sx, sy) by (sdx, sdy) meets the
// line through the segment (tx, ty)+(tdx, tdy). cs is the fraction of the
// point's displacement at the crossing, ct the fraction along the segment.
// ok is false for a zero-length segment or a path that never approaches the line.
func Collides(sx, sy, sdx, sdy, tx, ty, tdx, tdy float64) (cs, ct float64, ok bool) {
	segLenSq := tdx*tdx + tdy*tdy
	if segLenSq == 0 {
		return 0, 0, false
	}

	// Foot of the perpendicular from the start point onto the supporting line.
	foot := ((sx-tx)*tdx + (sy-ty)*tdy) / segLenSq
	nx := tx + foot*tdx - sx
	ny := ty + foot*tdy - sy

	approach := nx*sdx + ny*sdy
	if approach == 0 {
		return 0, 0, false
	}
	cs = (nx*nx + ny*ny) / approach

	px := sx + cs*sdx
	py := sy + cs*sdy
	ct = ((px-tx)*tdx + (py-ty)*tdy) / segLenSq
	return cs, ct, true
}

// Hits reports whether a solved contact lies within both the sub-step and the segment.
func Hits(cs, ct float64) bool {
	return 0 < cs && cs <= 1 && 0 < ct && ct <= 1
}

// Colliders returns the collider table in priority order: top wall, bottom
// wall, left goal borders (above, below), right goal borders (above, below),
// left paddle face, right paddle face.
func (b *Board) Colliders() [8]Collider {
	r := b.cfg.BallRadius
	lhsBorder := (b.Height - b.LhsGoalHeight) / 2
	rhsBorder := (b.Height - b.RhsGoalHeight) / 2
	lhs := b.LhsPaddle.Bound
	rhs := b.RhsPaddle.Bound

	return [8]Collider{
		{X: 0, Y: r, Dx: b.Width, Dy: 0, Normal: StaticNormal(0, 1), Kind: ContactWall},
		{X: 0, Y: b.Height - r, Dx: b.Width, Dy: 0, Normal: StaticNormal(0, -1), Kind: ContactWall},
		{X: r, Y: 0, Dx: 0, Dy: lhsBorder, Normal: StaticNormal(1, 0), Kind: ContactGoalBorder, Side: SideLeft},
		{X: r, Y: b.Height, Dx: 0, Dy: -lhsBorder, Normal: StaticNormal(1, 0), Kind: ContactGoalBorder, Side: SideLeft},
		{X: b.Width - r, Y: 0, Dx: 0, Dy: rhsBorder, Normal: StaticNormal(-1, 0), Kind: ContactGoalBorder, Side: SideRight},
		{X: b.Width - r, Y: b.Height, Dx: 0, Dy: -rhsBorder, Normal: StaticNormal(-1, 0), Kind: ContactGoalBorder, Side: SideRight},
		{X: lhs.Right() + r, Y: lhs.Y, Dx: 0, Dy: lhs.Height, Normal: PaddleNormal(SideLeft, b.LhsPaddle.Dy), Kind: ContactPaddle, Side: SideLeft},
		{X: rhs.X - r, Y: rhs.Y, Dx: 0, Dy: rhs.Height, Normal: PaddleNormal(SideRight, b.RhsPaddle.Dy), Kind: ContactPaddle, Side: SideRight},
	}
}
