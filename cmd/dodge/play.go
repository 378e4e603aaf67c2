package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a dodge session in the current terminal.

Controls:
  Arrows / WASD / HJKL  - Move one cell
  Q / Ctrl+C            - Quit

A collision immediately starts a new round. The high score lasts for the
session; finished rounds are also appended to the history database.

Difficulty options:
  easy   - Slower enemies, the swarm grows half as fast
  normal - Standard curve
  hard   - Faster enemies, one enemy from the first second
  fixed  - No escalation, a constant swarm of three

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --seed 42 --log-file dodge.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closer, err := newLogger("dodge", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	sim := dodge.NewSim(
		dodge.NewArena(gameCfg.Arena.BoardSize, gameCfg.Arena.UnitSize),
		dodge.ParamsFromConfig(gameCfg),
		flagSeed,
	)
	opts := dodge.EngineOptions{
		Logger:  logger,
		Session: "local",
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round history", "error", err)
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	engine := dodge.NewEngine(sim, dodge.PeriodsFromConfig(gameCfg.Clock), opts)
	logger.Info("session started", "seed", flagSeed, "difficulty", flagDifficulty)

	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}
	if err := tui.Run(context.Background(), engine, cfg); err != nil {
		fail("running game: %v", err)
	}

	if final, err := engine.Snapshot(context.Background()); err == nil {
		logger.Info("session ended",
			"round", final.Number,
			"high_score", max(final.HighScore, final.Score),
		)
	}
}
