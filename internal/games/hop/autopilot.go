package hop

import "github.com/vovakirdan/tui-hop/internal/core"

// Autopilot is a simple deterministic player. On message screens it confirms;
// during play it hops whenever the hopper is about to sink below the gap of
// the next hoop.
type Autopilot struct {
	// Slack is how far below the gap centre the hopper may sink before hopping.
	Slack float64
	// Confirm controls whether the bot leaves message screens on its own.
	Confirm bool
}

// NewAutopilot returns a bot with tuned defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{Slack: 24, Confirm: true}
}

// Next returns the input for the coming tick of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	if g.Level().Kind() != LevelPlay {
		if a.Confirm {
			in.Set(core.ActionConfirm)
		}
		return in
	}

	p := g.Play().Player()
	if !p.Alive {
		return in
	}

	target := float64(g.cfg.Playfield.Height) / 2
	if next := g.Play().Field().Next(p); next != nil {
		target = next.Y
	}

	// Position after the next tick without a hop.
	v := p.Velocity + g.cfg.Physics.Gravity
	y := p.Y - v
	if v < 0 && y > target+a.Slack {
		in.Set(core.ActionHop)
	}
	return in
}
