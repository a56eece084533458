package core

import "time"

// ImageHandle is an opaque drawable produced by an AssetProvider.
// Size reports the image extent in playfield units.
type ImageHandle interface {
	Size() (w, h float64)
}

// SoundHandle is an opaque sound effect or music track produced by an AssetProvider.
type SoundHandle interface {
	SoundName() string
}

// AssetProvider loads the images, sounds and text images a game draws with.
// Games never touch the filesystem directly.
type AssetProvider interface {
	LoadImage(name string) (ImageHandle, error)
	LoadSound(name string) (SoundHandle, error)
	LoadMusic(name string) (SoundHandle, error)
	TextImage(message string, fontSize int) ImageHandle
}

// Transform carries the optional rotation, scale, anchor and tint of a draw call.
// Rotation is in degrees. Anchor is relative to the image size: (0.5, 0.5)
// places the image centre at the draw position.
type Transform struct {
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	AnchorX  float64
	AnchorY  float64
	Tint     Color
}

// Centered returns a transform anchored at the image centre with unit scale.
func Centered() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, AnchorX: 0.5, AnchorY: 0.5}
}

// Renderer receives draw calls in playfield coordinates. Larger z is drawn on top.
type Renderer interface {
	Draw(img ImageHandle, x, y, z float64)
	DrawTransformed(img ImageHandle, x, y, z float64, t Transform)
}

// AudioSink plays sounds. Looping sounds play until the sink is closed.
type AudioSink interface {
	Play(s SoundHandle, looping bool)
}

// Clock supplies monotonic time in seconds. Only cosmetic animation reads it.
type Clock interface {
	Seconds() float64
}

// MonotonicClock measures seconds elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Seconds returns the time elapsed since the clock started.
func (c *MonotonicClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}

// FixedClock always reports the same time. Useful for tests and headless runs.
type FixedClock float64

// Seconds returns the fixed time.
func (c FixedClock) Seconds() float64 {
	return float64(c)
}

// NopImage is an image with a fixed size that draws nothing by itself.
type NopImage struct {
	Name string
	W, H float64
}

// Size returns the image size.
func (i NopImage) Size() (float64, float64) {
	return i.W, i.H
}

// NopSound is a named sound that no sink knows how to play.
type NopSound string

// SoundName returns the sound name.
func (s NopSound) SoundName() string {
	return string(s)
}

// NopAssets hands out placeholder images and sounds for any name.
// Headless simulations and tests use it when nothing is displayed.
type NopAssets struct{}

// LoadImage returns a zero-sized placeholder.
func (NopAssets) LoadImage(name string) (ImageHandle, error) {
	return NopImage{Name: name}, nil
}

// LoadSound returns a placeholder sound.
func (NopAssets) LoadSound(name string) (SoundHandle, error) {
	return NopSound(name), nil
}

// LoadMusic returns a placeholder track.
func (NopAssets) LoadMusic(name string) (SoundHandle, error) {
	return NopSound(name), nil
}

// TextImage returns a placeholder sized from the message length.
func (NopAssets) TextImage(message string, fontSize int) ImageHandle {
	return NopImage{Name: message, W: float64(len(message) * fontSize / 2), H: float64(fontSize)}
}

// NopAudio discards every sound.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(SoundHandle, bool) {}

// NopRenderer discards every draw call.
type NopRenderer struct{}

// Draw does nothing.
func (NopRenderer) Draw(ImageHandle, float64, float64, float64) {}

// DrawTransformed does nothing.
func (NopRenderer) DrawTransformed(ImageHandle, float64, float64, float64, Transform) {}
