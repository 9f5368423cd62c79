package game

import (
	"fmt"
	"math"
)

const (
	PlayerSpeed = 6
	MaxAISpeed  = 6
	BatMinY     = 80
	BatMaxY     = 400
	LeftBatX    = 40
	RightBatX   = 760

	HitReactionTicks = 10 // Bat glow after returning the ball
	ScorePauseTicks  = 20 // Ticks between a point and the next serve
)

// MoveFunc returns how far a human-controlled bat should move this tick
type MoveFunc func() float64

type Bat struct {
	Actor
	Player int
	Score  int
	Timer  int
	Move   MoveFunc // nil means computer controlled
}

func NewBat(player int, move MoveFunc) *Bat {
	x := float64(LeftBatX)
	if player == 1 {
		x = RightBatX
	}
	return &Bat{
		Actor:  Actor{Kind: KindBat, X: x, Y: HalfHeight, Image: "blank"},
		Player: player,
		Move:   move,
	}
}

// IsAI returns true if the bat has no human controller
func (b *Bat) IsAI() bool {
	return b.Move == nil
}

// Update moves the bat and picks its sprite frame
func (b *Bat) Update(g *Game) {
	b.Timer--

	var delta float64
	if b.Move != nil {
		delta = b.Move()
	} else {
		delta = AIDelta(g.Ball.X, g.Ball.Y, b.X, b.Y, g.AIOffset)
	}
	b.apply(delta)

	frame := 0
	if b.Timer > 0 {
		if g.Ball.Out() {
			frame = 2
		} else {
			frame = 1
		}
	}
	b.Image = fmt.Sprintf("bat%d%d", b.Player, frame)
}

// apply moves the bat by delta, keeping it fully on the court
func (b *Bat) apply(delta float64) {
	b.Y = clamp(b.Y+delta, BatMinY, BatMaxY)
}

// AIDelta returns how far a computer bat at (batX, batY) moves this tick.
// A far away ball pulls the bat towards the vertical centre, a close one
// towards the ball's Y plus aiOffset. The result is capped to MaxAISpeed.
func AIDelta(ballX, ballY, batX, batY, aiOffset float64) float64 {
	xDistance := math.Abs(ballX - batX)

	weight1 := math.Min(1, xDistance/HalfWidth)
	weight2 := 1 - weight1

	target := weight1*HalfHeight + weight2*(ballY+aiOffset)

	return clamp(target-batY, -MaxAISpeed, MaxAISpeed)
}
