package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/hop.yaml
var defaultHopYAML []byte

//go:embed defaults/hop_classic.yaml
var defaultClassicYAML []byte

// DefaultHopConfig returns the default Hoop Hop configuration.
func DefaultHopConfig() HopConfig {
	return HopConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Physics: Physics{
			Gravity:        -0.25,
			HopImpulse:     7.5,
			DeathVelocity:  5.0,
			BoundaryMargin: 32,
			OffscreenY:     1000,
		},
		Hoops: Hoops{
			Count:          6,
			InitialRow:     325,
			StartOffset:    400,
			Spacing:        200,
			RecycleX:       -200,
			RecycleAdvance: 1200,
			WindowAbove:    -150,
			WindowBelow:    125,
			BandMin:        150,
			BandMax:        500,
			MissX:          12,
			MissY:          72,
		},
		Scroll: Scroll{
			BaseSpeed:    3.0,
			Acceleration: 0.0025,
		},
		Player: Player{
			StartXDivisor: 3,
		},
		Flow: Flow{
			TitleScreen: true,
		},
	}
}

// DefaultClassicConfig returns the configuration of the classic rules.
func DefaultClassicConfig() HopConfig {
	cfg := DefaultHopConfig()
	cfg.Hoops.StartOffset = 600
	cfg.Scroll.BaseSpeed = 2.0
	cfg.Scroll.Acceleration = 0.003
	cfg.Player.StartXDivisor = 2
	cfg.Flow.TitleScreen = false
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantHop:
		return defaultHopYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}

// Default returns the built-in configuration of a variant, decoded from the
// embedded YAML. The hard-coded defaults are used if the embed is unreadable.
func Default(variant string) (HopConfig, error) {
	var fallback HopConfig
	switch variant {
	case VariantHop:
		fallback = DefaultHopConfig()
	case VariantClassic:
		fallback = DefaultClassicConfig()
	default:
		return HopConfig{}, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}

	var cfg HopConfig
	if err := yaml.Unmarshal(GetDefaultYAML(variant), &cfg); err != nil {
		return fallback, nil
	}
	return cfg, nil
}
