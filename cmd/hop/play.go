package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hop/internal/platform/term"
	"github.com/vovakirdan/tui-hop/internal/platform/tui"
)

var (
	flagConfig   string
	flagFrontend string
	flagMute     bool
	flagAtlas    string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: hop).

Controls:
  Space        - Hop / continue
  Enter        - Continue
  Esc/Q        - Quit

Frontends:
  bubbletea    - Bubble Tea program (default)
  tcell        - Raw tcell screen

Examples:
  hop play
  hop play hop_classic
  hop play --frontend tcell --mute
  hop play --config ./my-hop.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "bubbletea", "Frontend: bubbletea or tcell")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagAtlas, "atlas", "", "Path to a custom asset atlas YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := "hop"
	if len(args) == 1 {
		variant = args[0]
	}
	if flagFrontend != "bubbletea" && flagFrontend != "tcell" {
		return fmt.Errorf("unknown frontend %q", flagFrontend)
	}

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

	game, fieldW, fieldH, err := sess.newGame(variant, flagConfig)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	logger.Info("starting", "variant", variant, "frontend", flagFrontend, "seed", cfg.Seed)

	if flagFrontend == "tcell" {
		err = term.Run(cmd.Context(), game, sess.store, cfg, fieldW, fieldH, logger)
	} else {
		err = tui.Run(game, sess.store, cfg, fieldW, fieldH, logger)
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	summary, err := tui.RenderSummary(sess.store, cfg.TickRate)
	if err != nil {
		return err
	}
	fmt.Print(summary)
	return nil
}
