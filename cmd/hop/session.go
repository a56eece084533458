package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hop/internal/assets"
	"github.com/vovakirdan/tui-hop/internal/core"
	"github.com/vovakirdan/tui-hop/internal/games/hop"
	"github.com/vovakirdan/tui-hop/internal/platform/audio"
	"github.com/vovakirdan/tui-hop/internal/registry"
	"github.com/vovakirdan/tui-hop/internal/storage"
)

// session holds what lives for the whole process: assets, the speaker and
// the in-memory scoreboard.
type session struct {
	atlas  *assets.Atlas
	sink   *audio.Sink
	store  *storage.Store
	logger *log.Logger
}

// sessionOptions selects the optional parts of a session.
type sessionOptions struct {
	atlasPath string
	audio     bool
	mute      bool
}

func openSession(logger *log.Logger, opts sessionOptions) (*session, error) {
	var (
		atlas *assets.Atlas
		err   error
	)
	if opts.atlasPath != "" {
		atlas, err = assets.LoadFile(opts.atlasPath)
	} else {
		atlas, err = assets.Default()
	}
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return nil, err
	}

	s := &session{atlas: atlas, store: store, logger: logger}
	if opts.audio {
		s.sink = audio.NewSink(logger, opts.mute)
		if err := s.sink.Initialize(); err != nil {
			logger.Warn("playing without sound", "err", err)
		}
	}
	return s, nil
}

// env returns the collaborators a game of this session is built with.
func (s *session) env(configPath string) registry.Env {
	env := registry.Env{
		Assets:     s.atlas,
		Clock:      core.NewMonotonicClock(),
		Logger:     s.logger,
		ConfigPath: configPath,
	}
	if s.sink != nil {
		env.Audio = s.sink
	}
	return env
}

// newGame builds a variant and returns it with its playfield size.
func (s *session) newGame(variant, configPath string) (registry.Game, int, int, error) {
	if !registry.Exists(variant) {
		return nil, 0, 0, fmt.Errorf("unknown variant %q (run 'hop list' to see them)", variant)
	}

	game, err := registry.Create(variant, s.env(configPath))
	if err != nil {
		return nil, 0, 0, err
	}

	w, h := 800, 600
	if hg, ok := game.(*hop.Game); ok {
		pf := hg.Config().Playfield
		w, h = pf.Width, pf.Height
	}
	return game, w, h, nil
}

func (s *session) Close() {
	if s.sink != nil {
		s.sink.Close()
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("failed to close scoreboard", "err", err)
	}
}
