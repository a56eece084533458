package hop

import (
	"github.com/vovakirdan/tui-hop/internal/config"
	"github.com/vovakirdan/tui-hop/internal/core"
)

// ImageState selects the player sprite. It never affects physics.
type ImageState int

const (
	StateRising ImageState = iota
	StateFalling
	StateDead
)

// String returns the sprite name suffix for the state.
func (s ImageState) String() string {
	switch s {
	case StateRising:
		return "rising"
	case StateFalling:
		return "falling"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Cues are the sound effects a player triggers. Any field may be nil.
type Cues struct {
	Sink core.AudioSink
	Hop  core.SoundHandle
	Die  core.SoundHandle
}

func (c Cues) play(s core.SoundHandle) {
	if c.Sink == nil || s == nil {
		return
	}
	c.Sink.Play(s, false)
}

// Player is the hopping body. Y grows downward; positive velocity moves up.
type Player struct {
	X        float64
	Y        float64
	Velocity float64
	Alive    bool

	physics  config.Physics
	width    int
	height   int
	startDiv int
	cues     Cues
}

// NewPlayer creates a player ready for its first life.
func NewPlayer(cfg config.HopConfig, cues Cues) *Player {
	p := &Player{
		physics:  cfg.Physics,
		width:    cfg.Playfield.Width,
		height:   cfg.Playfield.Height,
		startDiv: cfg.Player.StartXDivisor,
		cues:     cues,
	}
	if p.startDiv < 1 {
		p.startDiv = 1
	}
	p.Start()
	return p
}

// Start resets the player for a new life.
func (p *Player) Start() {
	p.X = float64(p.width / p.startDiv)
	p.Y = float64(p.height) / 2
	p.Velocity = 0
	p.Alive = true
}

// Hop gives a living player an upward impulse.
func (p *Player) Hop() {
	if !p.Alive {
		return
	}
	p.Velocity += p.physics.HopImpulse
	p.cues.play(p.cues.Hop)
}

// Update integrates one tick and kills the player at the playfield edges.
func (p *Player) Update() {
	p.Velocity += p.physics.Gravity
	p.Y -= p.Velocity

	margin := p.physics.BoundaryMargin
	if p.Alive && (p.Y < margin || p.Y > float64(p.height)-margin) {
		p.Die()
	}
}

// Die ends the life with a final upward hop. Calling it again does nothing.
func (p *Player) Die() {
	if !p.Alive {
		return
	}
	p.Velocity = p.physics.DeathVelocity
	p.cues.play(p.cues.Die)
	p.Alive = false
}

// Offscreen reports whether the player has fallen out of the world.
// Only this ends a play level; a dead player keeps falling until then.
func (p *Player) Offscreen() bool {
	return p.Y > p.physics.OffscreenY
}

// ImageState returns the rendering hint for the current state.
func (p *Player) ImageState() ImageState {
	switch {
	case !p.Alive:
		return StateDead
	case p.Velocity >= 0:
		return StateRising
	default:
		return StateFalling
	}
}
