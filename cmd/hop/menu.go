package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a variant.
After a game closes, you return to the menu to play again.
Runs are kept on a scoreboard for as long as the program runs.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Session scoreboard
  Q            - Quit

Examples:
  hop menu
  hop menu --fps 30 --mute`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().StringVar(&flagAtlas, "atlas", "", "Path to a custom asset atlas YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := openSession(logger, sessionOptions{atlasPath: flagAtlas, audio: true, mute: flagMute})
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(sess.store, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(sess.store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, fieldW, fieldH, err := sess.newGame(menuResult.GameID, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for every game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, sess.store, cfg, fieldW, fieldH, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if sess.sink != nil {
			sess.sink.Stop()
		}
	}

	summary, err := tui.RenderSummary(sess.store, cfg.TickRate)
	if err != nil {
		return err
	}
	fmt.Print(summary)
	return nil
}
