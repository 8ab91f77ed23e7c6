package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flytype/internal/audio"
	"github.com/vovakirdan/flytype/internal/core"
	"github.com/vovakirdan/flytype/internal/platform/tui"
)

var (
	flagSound   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session in this terminal",
	Long: `Start a flytype session.

Controls:
  Up/W       - Climb
  Down/S     - Dive
  Right/D    - Boost
  Left/A     - Fly back
  Enter      - Choose the tile the bird is lined up with
  Esc        - Back (ends a running run)
  R          - Restart (on the results screen)
  Q/Ctrl+C   - Quit

Terminals report no key releases, so Enter taps closer together than
input.confirm_hold_ms (default 350ms) count as one held press.

Difficulty options:
  easy   - Slower flight, calmer tiles, rarer reshuffles
  normal - The configured values
  hard   - Faster flight, livelier tiles, frequent reshuffles

Examples:
  flytype play
  flytype play --difficulty hard
  flytype play --sound
  flytype play --config ./my-flytype.toml --log-file ./flytype.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides audio.enabled)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Get terminal size early so the first frame fits
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		// Continue without sound - the run still works
		player = audio.NopPlayer{}
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
		Player:  player,
	})

	// Close outputs before potential exit
	player.Close()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running flytype: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a debug logger writing to path, or a silent one when
// path is empty. The terminal belongs to the UI while a session runs.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flytype",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
