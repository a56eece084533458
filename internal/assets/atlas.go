// Package assets provides the images and sounds of the game from a yaml
// atlas: terminal art for sprites and note lists for synthesized audio.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hop/internal/core"
)

//go:embed atlas.yaml
var defaultAtlasYAML []byte

// ErrNotFound is returned for names the atlas does not define.
var ErrNotFound = errors.New("assets: not found")

// Layout controls how a sprite's art is placed inside its rectangle.
type Layout string

const (
	LayoutCenter Layout = "center" // Art centred on the rectangle (default)
	LayoutSpread Layout = "spread" // Rows spread over the height, tiled across the width
)

// spriteSpec is the yaml form of an image.
type spriteSpec struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Color  string   `yaml:"color"`
	Layout Layout   `yaml:"layout"`
	Art    []string `yaml:"art"`
}

// Note is one step of a tone. A zero frequency is a rest.
type Note struct {
	Freq   float64 `yaml:"freq"`
	Millis int     `yaml:"ms"`
}

// toneSpec is the yaml form of a sound or track.
type toneSpec struct {
	Volume float64 `yaml:"volume"`
	Notes  []Note  `yaml:"notes"`
}

type atlasFile struct {
	Images map[string]spriteSpec `yaml:"images"`
	Sounds map[string]toneSpec   `yaml:"sounds"`
	Music  map[string]toneSpec   `yaml:"music"`
}

// Sprite is terminal art with a logical size in playfield units.
type Sprite struct {
	Name   string
	Art    []string
	W, H   float64
	Color  core.Color
	Layout Layout
}

// Size returns the logical size.
func (s *Sprite) Size() (float64, float64) {
	return s.W, s.H
}

// Text is a rendered message.
type Text struct {
	Message  string
	Lines    []string
	FontSize int
}

// Size derives a logical size from the font size: half a font size per
// character, one font size per line.
func (t *Text) Size() (float64, float64) {
	width := 0
	for _, l := range t.Lines {
		width = core.Max(width, len([]rune(l)))
	}
	return float64(width*t.FontSize) / 2, float64(len(t.Lines) * t.FontSize)
}

// Tone is a synthesized sound: a sequence of notes.
type Tone struct {
	Name   string
	Notes  []Note
	Volume float64 // beep volume exponent (base 2), 0 is unchanged
	Music  bool
}

// SoundName returns the tone name.
func (t *Tone) SoundName() string {
	return t.Name
}

// Atlas holds every asset of the game and implements core.AssetProvider.
type Atlas struct {
	images map[string]*Sprite
	sounds map[string]*Tone
	music  map[string]*Tone
}

// Default parses the embedded atlas.
func Default() (*Atlas, error) {
	return Parse(defaultAtlasYAML)
}

// LoadFile parses an atlas file.
func LoadFile(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Parse builds an atlas from yaml.
func Parse(data []byte) (*Atlas, error) {
	var f atlasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: failed to parse atlas: %w", err)
	}

	a := &Atlas{
		images: make(map[string]*Sprite, len(f.Images)),
		sounds: make(map[string]*Tone, len(f.Sounds)),
		music:  make(map[string]*Tone, len(f.Music)),
	}

	for name, spec := range f.Images {
		if spec.Width <= 0 || spec.Height <= 0 {
			return nil, fmt.Errorf("assets: image %q: size must be positive", name)
		}
		color := core.ColorDefault
		if spec.Color != "" {
			c, ok := core.ParseColor(spec.Color)
			if !ok {
				return nil, fmt.Errorf("assets: image %q: unknown color %q", name, spec.Color)
			}
			color = c
		}
		layout := spec.Layout
		switch layout {
		case "":
			layout = LayoutCenter
		case LayoutCenter, LayoutSpread:
		default:
			return nil, fmt.Errorf("assets: image %q: unknown layout %q", name, layout)
		}
		a.images[name] = &Sprite{
			Name:   name,
			Art:    spec.Art,
			W:      spec.Width,
			H:      spec.Height,
			Color:  color,
			Layout: layout,
		}
	}

	for name, spec := range f.Sounds {
		t, err := newTone(name, spec, false)
		if err != nil {
			return nil, err
		}
		a.sounds[name] = t
	}
	for name, spec := range f.Music {
		t, err := newTone(name, spec, true)
		if err != nil {
			return nil, err
		}
		a.music[name] = t
	}

	return a, nil
}

func newTone(name string, spec toneSpec, music bool) (*Tone, error) {
	if len(spec.Notes) == 0 {
		return nil, fmt.Errorf("assets: sound %q has no notes", name)
	}
	for i, n := range spec.Notes {
		if n.Millis <= 0 || n.Freq < 0 {
			return nil, fmt.Errorf("assets: sound %q: note %d is invalid", name, i)
		}
	}
	return &Tone{Name: name, Notes: spec.Notes, Volume: spec.Volume, Music: music}, nil
}

// LoadImage returns the named sprite.
func (a *Atlas) LoadImage(name string) (core.ImageHandle, error) {
	s, ok := a.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: image %q", ErrNotFound, name)
	}
	return s, nil
}

// LoadSound returns the named sound effect.
func (a *Atlas) LoadSound(name string) (core.SoundHandle, error) {
	t, ok := a.sounds[name]
	if !ok {
		return nil, fmt.Errorf("%w: sound %q", ErrNotFound, name)
	}
	return t, nil
}

// LoadMusic returns the named music track.
func (a *Atlas) LoadMusic(name string) (core.SoundHandle, error) {
	t, ok := a.music[name]
	if !ok {
		return nil, fmt.Errorf("%w: music %q", ErrNotFound, name)
	}
	return t, nil
}

// TextImage returns a text image for the message.
func (a *Atlas) TextImage(message string, fontSize int) core.ImageHandle {
	return &Text{
		Message:  message,
		Lines:    strings.Split(message, "\n"),
		FontSize: fontSize,
	}
}
