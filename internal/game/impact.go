package game

import "strconv"

const (
	ImpactFrames   = 5
	ImpactLifetime = ImpactFrames * 2 // Each frame shows for two ticks
)

// Impact is the short animation shown where the ball bounced
type Impact struct {
	Actor
	Time int
}

func NewImpact(x, y float64) *Impact {
	return &Impact{Actor: Actor{Kind: KindImpact, X: x, Y: y, Image: "blank"}}
}

func (i *Impact) Update() {
	i.Image = "impact" + strconv.Itoa(i.Time/2)
	i.Time++
}

// Expired is true once every frame has been shown
func (i *Impact) Expired() bool {
	return i.Time >= ImpactLifetime
}
