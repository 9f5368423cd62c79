package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Court dimensions, in the game's own pixel units
const (
	Width      = 800
	Height     = 480
	HalfWidth  = Width / 2
	HalfHeight = Height / 2

	DefaultPointsToWin = 10
)

// Game owns both bats, the ball and the impact animations
type Game struct {
	ID          string
	Bats        [2]*Bat
	Ball        *Ball
	Impacts     []*Impact
	AIOffset    float64 // Keeps the computer from always hitting dead centre
	PointsToWin int

	sounds Sounds
	rng    *rand.Rand
}

// NewGame creates a game. A nil control makes that bat computer
// controlled. sounds may be nil.
func NewGame(controls [2]MoveFunc, pointsToWin int, sounds Sounds) *Game {
	if pointsToWin < 1 {
		pointsToWin = DefaultPointsToWin
	}
	return &Game{
		ID:          uuid.NewString(),
		Bats:        [2]*Bat{NewBat(0, controls[0]), NewBat(1, controls[1])},
		Ball:        NewBall(-1),
		PointsToWin: pointsToWin,
		sounds:      sounds,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes AI offsets and sound variants reproducible
func (g *Game) Seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Update runs one tick
func (g *Game) Update() {
	// Impacts spawned by the ball this tick start animating next tick
	impacts := g.Impacts

	for _, bat := range g.Bats {
		bat.Update(g)
	}
	g.Ball.Update(g)
	for _, impact := range impacts {
		impact.Update()
	}

	live := g.Impacts[:0]
	for _, impact := range g.Impacts {
		if !impact.Expired() {
			live = append(live, impact)
		}
	}
	g.Impacts = live

	if g.Ball.Out() {
		g.checkScore()
	}
}

// checkScore awards the point on the first tick the ball is out, then
// serves a new ball once the loser's timer has run down.
func (g *Game) checkScore() {
	scorer := 0
	if g.Ball.X < HalfWidth {
		scorer = 1
	}
	loser := 1 - scorer

	switch {
	case g.Bats[loser].Timer < 0:
		g.Bats[scorer].Score++
		g.Bats[loser].Timer = ScorePauseTicks
		g.playSound(KindBall, "score_goal", 1)

		log.Info().
			Str("game", g.ID).
			Int("scorer", scorer).
			Int("left", g.Bats[0].Score).
			Int("right", g.Bats[1].Score).
			Msg("Point scored")

	case g.Bats[loser].Timer == 0:
		direction := -1.0
		if loser == 1 {
			direction = 1
		}
		g.Ball = NewBall(direction)
	}
}

// Winner returns the player who reached PointsToWin, if any
func (g *Game) Winner() (int, bool) {
	for _, bat := range g.Bats {
		if bat.Score >= g.PointsToWin {
			return bat.Player, true
		}
	}
	return 0, false
}

// Draw paints the court, the entities and the scores onto s
func (g *Game) Draw(s Surface) {
	s.Blit("table", 0, 0)

	// Flash the side that just conceded
	for player, bat := range g.Bats {
		if bat.Timer > 0 && g.Ball.Out() {
			s.Blit("effect"+strconv.Itoa(player), 0, 0)
		}
	}

	for _, actor := range g.actors() {
		actor.draw(s)
	}

	for player, bat := range g.Bats {
		score := fmt.Sprintf("%02d", bat.Score)
		for i := 0; i < 2; i++ {
			x := 255 + 160*player + 55*i
			s.Blit("digit0"+score[i:i+1], float64(x), 46)
		}
	}
}

// actors lists every drawable in paint order: bats, ball, impacts
func (g *Game) actors() []*Actor {
	actors := make([]*Actor, 0, 3+len(g.Impacts))
	for _, bat := range g.Bats {
		actors = append(actors, &bat.Actor)
	}
	actors = append(actors, &g.Ball.Actor)
	for _, impact := range g.Impacts {
		actors = append(actors, &impact.Actor)
	}
	return actors
}

func (g *Game) addImpact(x, y float64) {
	g.Impacts = append(g.Impacts, NewImpact(x, y))
}

// playSound plays one of count variants of name, e.g. "hit0".."hit4",
// on behalf of the entity kind that caused it.
// Sound is cosmetic so failures are only logged.
func (g *Game) playSound(source Kind, name string, count int) {
	if g.sounds == nil {
		return
	}
	variant := name + strconv.Itoa(g.rng.Intn(count))
	if err := g.sounds.Play(variant); err != nil {
		log.Debug().Err(err).Stringer("source", source).Str("sound", variant).Msg("Sound playback failed")
	}
}
