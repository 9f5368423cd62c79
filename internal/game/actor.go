package game

// Kind tags which entity an Actor belongs to
type Kind int

const (
	KindBall Kind = iota
	KindBat
	KindImpact
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindBat:
		return "bat"
	case KindImpact:
		return "impact"
	}
	return "unknown"
}

// Actor is the drawable part of every entity: a centre position and the
// image key the surface should show there.
type Actor struct {
	Kind  Kind
	X, Y  float64
	Image string
}

// Surface receives draw calls keyed by image name
type Surface interface {
	Blit(image string, x, y float64)
}

// Sounds plays named sound effects
type Sounds interface {
	Play(name string) error
}

func (a *Actor) draw(s Surface) {
	s.Blit(a.Image, a.X, a.Y)
}
