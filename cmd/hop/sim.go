package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hop/internal/games/hop"
	"github.com/vovakirdan/tui-hop/internal/platform/tui"
	"github.com/vovakirdan/tui-hop/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Let the autopilot play headless runs",
	Long: `Play runs without a terminal frontend. The autopilot hops toward the
next hoop; every run is recorded and a summary is printed at the end.
Runs are reproducible with --seed.

Examples:
  hop sim
  hop sim hop_classic --runs 50 --seed 42
  hop sim --max-ticks 3600 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs to play")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 36000, "Stop a run after this many ticks")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runSim(_ *cobra.Command, args []string) error {
	variant := "hop"
	if len(args) == 1 {
		variant = args[0]
	}
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", flagRuns)
	}
	if flagMaxTicks < 1 {
		return fmt.Errorf("--max-ticks must be at least 1, got %d", flagMaxTicks)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := openSession(logger, sessionOptions{})
	if err != nil {
		return err
	}
	defer sess.Close()

	game, _, _, err := sess.newGame(variant, flagConfig)
	if err != nil {
		return err
	}
	hg, ok := game.(*hop.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot be driven by the autopilot", variant)
	}

	cfg := runtimeConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	for i := range flagRuns {
		cfg.Seed = seed + int64(i)
		hg.Reset(cfg)
		score, ticks, finished := simulate(hg, flagMaxTicks)
		if _, err := sess.store.SaveScore(variant, score, ticks); err != nil {
			return err
		}
		logger.Info("run", "n", i+1, "seed", cfg.Seed, "score", score, "ticks", ticks, "finished", finished)
	}

	return printSimStats(sess.store, variant, cfg.TickRate, logger)
}

// simulate plays one run with the autopilot. It returns the run's score and
// length, and whether the run ended before the tick limit.
func simulate(g *hop.Game, maxTicks int) (score, ticks int, finished bool) {
	pilot := hop.NewAutopilot()
	for ticks < maxTicks {
		res := g.Step(pilot.Next(g))
		ticks++
		if res.RunEnded {
			return res.FinalScore, ticks, true
		}
	}
	return g.State().Score, ticks, false
}

func printSimStats(store *storage.Store, variant string, tickRate int, logger *log.Logger) error {
	stats, err := store.GetGameStats(variant)
	if err != nil {
		return err
	}
	logger.Debug("stats", "runs", stats.GamesCount, "total", stats.TotalScore)

	summary, err := tui.RenderSummary(store, tickRate)
	if err != nil {
		return err
	}
	fmt.Print(summary)

	top, err := store.TopScores(variant, 3)
	if err != nil {
		return err
	}
	for i, e := range top {
		fmt.Printf("  #%d  %4d points  %.1fs\n", i+1, e.Score, float64(e.Ticks)/float64(tickRate))
	}
	return nil
}
