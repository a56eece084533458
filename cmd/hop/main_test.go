package main

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hop/internal/core"
	"github.com/vovakirdan/tui-hop/internal/games/hop"
)

func testSession(t *testing.T) *session {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	sess, err := openSession(log.New(io.Discard), sessionOptions{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sess.Close)
	return sess
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	if _, _, err := newLogger(io.Discard); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}
}

func TestSessionNewGame(t *testing.T) {
	sess := testSession(t)

	game, w, h, err := sess.newGame("hop_classic", "")
	if err != nil {
		t.Fatal(err)
	}
	if game.ID() != "hop_classic" || w != 800 || h != 600 {
		t.Errorf("got %s %dx%d", game.ID(), w, h)
	}

	_, _, _, err = sess.newGame("snake", "")
	if err == nil || !strings.Contains(err.Error(), "unknown variant") {
		t.Errorf("unknown variant error = %v", err)
	}
}

func TestSimulateStopsAtTickLimit(t *testing.T) {
	sess := testSession(t)

	game, _, _, err := sess.newGame("hop", "")
	if err != nil {
		t.Fatal(err)
	}
	g := game.(*hop.Game)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})

	score, ticks, finished := simulate(g, 50)
	if finished {
		t.Error("the autopilot should survive the first 50 ticks")
	}
	if ticks != 50 || score != g.State().Score {
		t.Errorf("ticks = %d score = %d, expected 50 and %d", ticks, score, g.State().Score)
	}
}

func TestPrintSimStats(t *testing.T) {
	sess := testSession(t)
	sess.store.SaveScore("hop", 4, 120)

	if err := printSimStats(sess.store, "hop", 60, sess.logger); err != nil {
		t.Fatal(err)
	}
}
