// Package config provides YAML-based configuration loading for the hoop game
// variants. Every gameplay constant lives here so a variant is pure data.
package config

import (
	"errors"
	"fmt"
)

// Variant identifiers.
const (
	VariantHop     = "hop"
	VariantClassic = "hop_classic"
)

// ErrUnknownVariant is returned when no embedded defaults exist for a variant.
var ErrUnknownVariant = errors.New("config: unknown variant")

// HopConfig contains all configuration for one hoop game variant.
type HopConfig struct {
	Playfield Playfield `yaml:"playfield"`
	Physics   Physics   `yaml:"physics"`
	Hoops     Hoops     `yaml:"hoops"`
	Scroll    Scroll    `yaml:"scroll"`
	Player    Player    `yaml:"player"`
	Flow      Flow      `yaml:"flow"`
}

// Playfield is the logical drawing area in playfield units (pixels of the
// game window). Hosts scale it to whatever they display on.
type Playfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines the player's vertical motion.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`         // Added to velocity every tick (negative = falls)
	HopImpulse     float64 `yaml:"hop_impulse"`     // Added to velocity on a hop
	DeathVelocity  float64 `yaml:"death_velocity"`  // Final upward hop when dying
	BoundaryMargin float64 `yaml:"boundary_margin"` // Distance from top/bottom that kills
	OffscreenY     float64 `yaml:"offscreen_y"`     // Past this y the run is over
}

// Hoops defines the hoop conveyor and its respawn rule.
type Hoops struct {
	Count          int     `yaml:"count"`
	InitialRow     float64 `yaml:"initial_row"`
	StartOffset    float64 `yaml:"start_offset"`
	Spacing        float64 `yaml:"spacing"`
	RecycleX       float64 `yaml:"recycle_x"`
	RecycleAdvance float64 `yaml:"recycle_advance"`
	WindowAbove    int     `yaml:"window_above"` // Offset of the lowest candidate row from the previous hoop
	WindowBelow    int     `yaml:"window_below"` // Offset of the highest candidate row from the previous hoop
	BandMin        int     `yaml:"band_min"`
	BandMax        int     `yaml:"band_max"`
	MissX          float64 `yaml:"miss_x"`
	MissY          float64 `yaml:"miss_y"`
}

// Scroll defines the horizontal speed ramp of the play level.
type Scroll struct {
	BaseSpeed    float64 `yaml:"base_speed"`
	Acceleration float64 `yaml:"acceleration"`
}

// Player defines where a life starts.
type Player struct {
	StartXDivisor int `yaml:"start_x_divisor"` // x = width / divisor
}

// Flow defines which levels a variant uses.
type Flow struct {
	TitleScreen bool `yaml:"title_screen"`
}

// Validate checks that the constants describe a playable game.
// In particular the respawn window must contain the previous row, which
// guarantees the candidate range for a new hoop is never empty.
func (c HopConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Hoops.Count < 1 {
		return fmt.Errorf("config: hoops.count must be at least 1, got %d", c.Hoops.Count)
	}
	if c.Hoops.BandMin > c.Hoops.BandMax {
		return fmt.Errorf("config: hoop band [%d, %d] is empty", c.Hoops.BandMin, c.Hoops.BandMax)
	}
	if c.Hoops.WindowAbove > 0 || c.Hoops.WindowBelow < 0 {
		return fmt.Errorf("config: respawn window [%+d, %+d] must contain 0", c.Hoops.WindowAbove, c.Hoops.WindowBelow)
	}
	if c.Hoops.InitialRow < float64(c.Hoops.BandMin) || c.Hoops.InitialRow > float64(c.Hoops.BandMax) {
		return fmt.Errorf("config: hoops.initial_row %.0f outside band [%d, %d]", c.Hoops.InitialRow, c.Hoops.BandMin, c.Hoops.BandMax)
	}
	if c.Scroll.BaseSpeed < 0 {
		return fmt.Errorf("config: scroll.base_speed must not be negative, got %g", c.Scroll.BaseSpeed)
	}
	if c.Player.StartXDivisor < 1 {
		return fmt.Errorf("config: player.start_x_divisor must be at least 1, got %d", c.Player.StartXDivisor)
	}
	return nil
}
