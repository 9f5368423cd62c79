package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blit struct {
	image string
	x, y  float64
}

// recordingSurface captures draw calls in order
type recordingSurface struct {
	blits []blit
}

func (r *recordingSurface) Blit(image string, x, y float64) {
	r.blits = append(r.blits, blit{image, x, y})
}

func (r *recordingSurface) images() []string {
	images := make([]string, len(r.blits))
	for i, b := range r.blits {
		images[i] = b.image
	}
	return images
}

func TestNewGame(t *testing.T) {
	g := NewGame([2]MoveFunc{}, 0, nil)

	if g.ID == "" {
		t.Error("expected game to have an ID")
	}
	if g.PointsToWin != DefaultPointsToWin {
		t.Errorf("expected default points %d, got %d", DefaultPointsToWin, g.PointsToWin)
	}
	if g.Bats[0].Player != 0 || g.Bats[1].Player != 1 {
		t.Errorf("expected bats for players 0 and 1, got %d and %d", g.Bats[0].Player, g.Bats[1].Player)
	}
	if !g.Bats[0].IsAI() || !g.Bats[1].IsAI() {
		t.Error("expected both bats to be AI without controls")
	}
	if g.Ball.DX != -1 {
		t.Errorf("expected first serve to the left, got DX=%f", g.Ball.DX)
	}
	for _, bat := range g.Bats {
		if bat.Score != 0 {
			t.Errorf("expected zero score, got %d", bat.Score)
		}
	}
}

func TestGame_ScoresOncePerPoint(t *testing.T) {
	sounds := &recordingSounds{}
	g := newTestGame(sounds)
	g.Ball.X = -1

	firstBall := g.Ball
	respawns := 0
	lastBall := g.Ball

	for i := 0; i < 40; i++ {
		g.Update()
		if g.Ball != lastBall {
			respawns++
			lastBall = g.Ball
		}
		if i == 0 && g.Bats[0].Timer != ScorePauseTicks {
			t.Errorf("expected loser timer armed to %d, got %d", ScorePauseTicks, g.Bats[0].Timer)
		}
	}

	if g.Bats[1].Score != 1 {
		t.Errorf("expected right player to score exactly once, got %d", g.Bats[1].Score)
	}
	if g.Bats[0].Score != 0 {
		t.Errorf("expected left player not to score, got %d", g.Bats[0].Score)
	}
	if respawns != 1 {
		t.Errorf("expected exactly one respawn, got %d", respawns)
	}
	if g.Ball == firstBall {
		t.Fatal("expected a new ball")
	}
	if g.Ball.DX >= 0 {
		t.Errorf("expected new ball towards the losing left side, got DX=%f", g.Ball.DX)
	}
	if !sounds.has("score_goal0") {
		t.Errorf("expected score sound, got %v", sounds.played)
	}
}

func TestGame_RespawnAfterPause(t *testing.T) {
	g := newTestGame(nil)
	g.Ball.X = Width + 1
	g.Ball.DX = 1
	out := g.Ball

	// One tick to score, then the loser's timer runs from 20 down to 0
	for i := 0; i < ScorePauseTicks; i++ {
		g.Update()
		if g.Ball != out {
			t.Fatalf("ball respawned too early, on tick %d", i+1)
		}
	}
	g.Update()

	if g.Ball == out {
		t.Fatal("expected ball to respawn once the pause is over")
	}
	if g.Ball.DX <= 0 {
		t.Errorf("expected new ball towards the losing right side, got DX=%f", g.Ball.DX)
	}
	if g.Bats[0].Score != 1 {
		t.Errorf("expected left player to score, got %d", g.Bats[0].Score)
	}
}

func TestGame_BallLeavesLeft(t *testing.T) {
	down := func() float64 { return PlayerSpeed }
	g := NewGame([2]MoveFunc{down, nil}, DefaultPointsToWin, nil)
	g.Seed(7)

	ticks := 0
	for !g.Ball.Out() && ticks < 500 {
		g.Update()
		ticks++
	}

	if !g.Ball.Out() {
		t.Fatalf("expected ball out of bounds, still at x=%f", g.Ball.X)
	}
	if g.Ball.X >= 0 {
		t.Errorf("expected ball to leave on the left, x=%f", g.Ball.X)
	}
	if g.Bats[1].Score != 1 {
		t.Errorf("expected right player to score, got %d", g.Bats[1].Score)
	}
}

func TestGame_SoundFailuresIgnored(t *testing.T) {
	sounds := &recordingSounds{err: errors.New("no audio device")}
	g := newTestGame(sounds)
	g.Ball.X = -1

	g.Update()

	if g.Bats[1].Score != 1 {
		t.Errorf("expected point despite sound failure, got %d", g.Bats[1].Score)
	}
	if len(sounds.played) == 0 {
		t.Error("expected a sound attempt")
	}
}

func TestGame_SoundFailureLogsSource(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	defer func() { log.Logger = saved }()

	sounds := &recordingSounds{err: errors.New("no audio device")}
	g := newTestGame(sounds)
	g.Ball.Y = HalfHeight + WallY
	g.Ball.DY = 1
	g.Ball.Speed = 1

	g.Ball.Update(g)

	out := buf.String()
	if !strings.Contains(out, `"source":"ball"`) {
		t.Errorf("expected wall bounce failure logged with source ball, got %s", out)
	}
	if !strings.Contains(out, `"sound":"bounce_synth0"`) {
		t.Errorf("expected failing sound name in log, got %s", out)
	}
}

func TestGame_ImpactsExpire(t *testing.T) {
	g := newTestGame(nil)
	g.addImpact(100, 100)

	for i := 1; i < ImpactLifetime; i++ {
		g.Update()
		if len(g.Impacts) != 1 {
			t.Fatalf("impact removed early after %d ticks", i)
		}
	}

	g.Update()
	if len(g.Impacts) != 0 {
		t.Errorf("expected impact removed after %d ticks, %d left", ImpactLifetime, len(g.Impacts))
	}
}

func TestGame_Winner(t *testing.T) {
	g := NewGame([2]MoveFunc{}, 3, nil)

	if _, ok := g.Winner(); ok {
		t.Error("expected no winner at 0-0")
	}

	g.Bats[1].Score = 3
	player, ok := g.Winner()
	if !ok || player != 1 {
		t.Errorf("expected player 1 to win, got %d (%v)", player, ok)
	}
}

func TestGame_Draw(t *testing.T) {
	g := newTestGame(nil)
	g.Bats[0].Score = 7
	g.Bats[1].Score = 12
	g.Update()

	s := &recordingSurface{}
	g.Draw(s)

	want := []string{
		"table",
		"bat00", "bat10", "ball",
		"digit00", "digit07", "digit01", "digit02",
	}
	got := s.images()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw call %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	digitX := []float64{255, 310, 415, 470}
	for i, x := range digitX {
		b := s.blits[4+i]
		if b.x != x || b.y != 46 {
			t.Errorf("digit %d drawn at (%f, %f), want (%f, 46)", i, b.x, b.y, x)
		}
	}
}

func TestGame_DrawScoreFlash(t *testing.T) {
	g := newTestGame(nil)
	g.Ball.X = -1
	g.Update()
	g.addImpact(50, 50)

	s := &recordingSurface{}
	g.Draw(s)

	got := s.images()
	if got[1] != "effect0" {
		t.Errorf("expected effect0 after table, got %v", got)
	}
	if got[5] != "blank" {
		t.Errorf("expected new impact drawn after the ball, got %v", got)
	}
}
