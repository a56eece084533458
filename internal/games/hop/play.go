package hop

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hop/internal/config"
	"github.com/vovakirdan/tui-hop/internal/core"
)

// playSprites are the images the play level draws.
type playSprites struct {
	rising  core.ImageHandle
	falling core.ImageHandle
	dead    core.ImageHandle
	hoop    core.ImageHandle
}

// PlayLevel composes the player and the hoop field and keeps the score.
type PlayLevel struct {
	player *Player
	field  *HoopField
	score  int

	assets   core.AssetProvider
	sprites  playSprites
	scoreImg core.ImageHandle
	shown    int
}

// NewPlayLevel creates the play level and starts the looping theme music.
func NewPlayLevel(cfg config.HopConfig, seed int64, assets core.AssetProvider, audio core.AudioSink, logger *log.Logger) (*PlayLevel, error) {
	sprites, err := loadPlaySprites(assets)
	if err != nil {
		return nil, err
	}

	cues := Cues{Sink: audio}
	if cues.Hop, err = assets.LoadSound(SoundHop); err != nil {
		return nil, fmt.Errorf("hop: load sound %q: %w", SoundHop, err)
	}
	if cues.Die, err = assets.LoadSound(SoundGameOver); err != nil {
		return nil, fmt.Errorf("hop: load sound %q: %w", SoundGameOver, err)
	}
	music, err := assets.LoadMusic(MusicTheme)
	if err != nil {
		return nil, fmt.Errorf("hop: load music %q: %w", MusicTheme, err)
	}
	audio.Play(music, true)

	return &PlayLevel{
		player:  NewPlayer(cfg, cues),
		field:   NewHoopField(cfg, seed, logger),
		assets:  assets,
		sprites: sprites,
		shown:   -1,
	}, nil
}

func loadPlaySprites(assets core.AssetProvider) (playSprites, error) {
	var s playSprites
	for _, it := range []struct {
		name string
		dst  *core.ImageHandle
	}{
		{ImageRising, &s.rising},
		{ImageFalling, &s.falling},
		{ImageDead, &s.dead},
		{ImageHoop, &s.hoop},
	} {
		img, err := assets.LoadImage(it.name)
		if err != nil {
			return s, fmt.Errorf("hop: load image %q: %w", it.name, err)
		}
		*it.dst = img
	}
	return s, nil
}

// Kind returns LevelPlay.
func (p *PlayLevel) Kind() LevelKind {
	return LevelPlay
}

// Start begins a fresh run.
func (p *PlayLevel) Start() {
	p.player.Start()
	p.field.Init()
	p.score = 0
}

// Seed restarts the hoop row sequence.
func (p *PlayLevel) Seed(seed int64) {
	p.field.Seed(seed)
}

// Score returns the score of the current run.
func (p *PlayLevel) Score() int {
	return p.score
}

// Movement returns the current scroll speed.
func (p *PlayLevel) Movement() float64 {
	return p.field.Movement
}

// Player returns the player.
func (p *PlayLevel) Player() *Player {
	return p.player
}

// Field returns the hoop field.
func (p *PlayLevel) Field() *HoopField {
	return p.field
}

// HandleInput applies discrete presses: quit, or hop.
func (p *PlayLevel) HandleInput(in core.InputFrame) Event {
	if in.Pressed(core.ActionQuit) {
		return EventQuit
	}
	if in.Pressed(core.ActionHop) {
		p.player.Hop()
	}
	return EventNone
}

// Update advances the run by one tick. It returns EventFail once the player
// has left the world; the hoops are still resolved on that tick.
func (p *PlayLevel) Update(core.InputFrame) Event {
	p.field.Accelerate()
	p.player.Update()

	ev := EventNone
	if p.player.Offscreen() {
		ev = EventFail
	}

	p.score += p.field.Update(p.player)
	return ev
}

// Draw draws the player, the hoops and the score.
// Things further left are drawn on top.
func (p *PlayLevel) Draw(r core.Renderer) {
	pl := p.player
	r.Draw(p.playerSprite(), pl.X-32, pl.Y-32, 1000-pl.X)

	for _, h := range p.field.Hoops {
		r.Draw(p.sprites.hoop, h.X-66, h.Y-98, 1000-h.X)
	}

	if p.scoreImg == nil || p.shown != p.score {
		p.scoreImg = p.assets.TextImage(fmt.Sprintf("Score: %d", p.score), scoreFontSize)
		p.shown = p.score
	}
	r.DrawTransformed(p.scoreImg, 700, 10, 1, core.Transform{ScaleX: 1, ScaleY: 1, Tint: core.ColorRed})
}

func (p *PlayLevel) playerSprite() core.ImageHandle {
	switch p.player.ImageState() {
	case StateRising:
		return p.sprites.rising
	case StateFalling:
		return p.sprites.falling
	default:
		return p.sprites.dead
	}
}
