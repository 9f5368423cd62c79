package game

import "math"

const (
	BallStartSpeed = 5
	BatHitRange    = 64  // Max vertical distance from bat centre that still hits
	CollisionX     = 344 // Distance from centre where the bats' faces are
	WallY          = 220 // Distance from centre where the walls are
)

type Ball struct {
	Actor
	DX, DY float64
	Speed  int
}

// NewBall places a ball at the centre heading horizontally in direction dx
func NewBall(dx float64) *Ball {
	return &Ball{
		Actor: Actor{Kind: KindBall, X: HalfWidth, Y: HalfHeight, Image: "ball"},
		DX:    dx,
		Speed: BallStartSpeed,
	}
}

// Update moves the ball one pixel at a time, Speed times, resolving bat
// and wall collisions along the way.
func (b *Ball) Update(g *Game) {
	// A hit speeds the ball up from the next tick
	steps := b.Speed
	for i := 0; i < steps; i++ {
		originalX := b.X

		b.X += b.DX
		b.Y += b.DY

		if math.Abs(b.X-HalfWidth) >= CollisionX && math.Abs(originalX-HalfWidth) < CollisionX {
			b.hitBat(g)
		}

		if math.Abs(b.Y-HalfHeight) > WallY {
			b.DY = -b.DY
			b.Y += b.DY

			g.addImpact(b.X, b.Y)
			g.playSound(KindBall, "bounce", 5)
			g.playSound(KindBall, "bounce_synth", 1)
		}
	}
}

// hitBat deflects the ball if the bat on its side is close enough.
// Hitting off-centre adds vertical deflection.
func (b *Ball) hitBat(g *Game) {
	var newDirX float64
	var bat *Bat
	if b.X < HalfWidth {
		newDirX = 1
		bat = g.Bats[0]
	} else {
		newDirX = -1
		bat = g.Bats[1]
	}

	diffY := b.Y - bat.Y
	if diffY <= -BatHitRange || diffY >= BatHitRange {
		return
	}

	b.DX = -b.DX
	b.DY += diffY / 128
	b.DY = clamp(b.DY, -1, 1)
	b.DX, b.DY = normalised(b.DX, b.DY)

	g.addImpact(b.X-newDirX*10, b.Y)

	b.Speed++
	g.AIOffset = float64(g.rng.Intn(21) - 10)
	bat.Timer = HitReactionTicks

	g.playSound(KindBat, "hit", 5)
	switch {
	case b.Speed <= 10:
		g.playSound(KindBat, "hit_slow", 1)
	case b.Speed <= 12:
		g.playSound(KindBat, "hit_medium", 1)
	case b.Speed <= 16:
		g.playSound(KindBat, "hit_fast", 1)
	default:
		g.playSound(KindBat, "hit_veryfast", 1)
	}
	g.playSound(KindBat, "hit_synth", 1)
}

// Out reports whether the ball has left the court on the left or right
func (b *Ball) Out() bool {
	return b.X < 0 || b.X > Width
}

func normalised(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 1, 0
	}
	return x / length, y / length
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
