package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagSimSeconds int
	flagSimRounds  int
	flagSimIdle    bool
	flagSimRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with an autopilot",
	Long: `Run the simulation on a virtual clock, as fast as the CPU allows, with
an autopilot steering the player. Useful for checking a config or a
difficulty preset. Equal seeds give equal runs.

The run stops after --seconds of simulated time or after --rounds
collisions, whichever comes first.

Examples:
  dodge simulate
  dodge simulate --seconds 3600 --seed 7
  dodge simulate --rounds 100 --difficulty hard
  dodge simulate --idle --rounds 1     # Player never moves`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimSeconds, "seconds", 600, "Simulated seconds to run (0 = no limit)")
	simulateCmd.Flags().IntVar(&flagSimRounds, "rounds", 0, "Stop after this many rounds (0 = no limit)")
	simulateCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Disable the autopilot")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Append finished rounds to the history database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	if flagSimSeconds <= 0 && flagSimRounds <= 0 {
		fail("one of --seconds or --rounds must be positive")
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := newLogger("dodge-sim", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := dodge.NewSim(
		dodge.NewArena(gameCfg.Arena.BoardSize, gameCfg.Arena.UnitSize),
		dodge.ParamsFromConfig(gameCfg),
		seed,
	)
	opts := dodge.HeadlessOptions{
		Duration: time.Duration(flagSimSeconds) * time.Second,
		Rounds:   flagSimRounds,
		Session:  fmt.Sprintf("sim-%d", seed),
	}
	if !flagSimIdle {
		opts.Pilot = dodge.NewAutopilot(seed + 1)
	}

	started := time.Now()
	report := dodge.RunHeadless(sim, dodge.PeriodsFromConfig(gameCfg.Clock), opts)
	logger.Debug("simulation finished", "wall", time.Since(started), "simulated", report.Simulated)

	for _, res := range report.Results {
		logger.Info("round over",
			"round", res.Number,
			"score", res.Score,
			"elapsed", res.Elapsed,
			"speed", fmt.Sprintf("%.1f", res.EnemySpeed),
			"target", res.TargetEnemies,
		)
	}

	if flagSimRecord && len(report.Results) > 0 {
		if err := recordResults(report.Results); err != nil {
			fail("%v", err)
		}
		logger.Info("rounds recorded", "count", len(report.Results), "db", flagDBPath)
	}

	fmt.Printf("Seed:           %d\n", seed)
	fmt.Printf("Simulated:      %s\n", report.Simulated)
	fmt.Printf("Rounds ended:   %d\n", len(report.Results))
	fmt.Printf("Current round:  %d (%ds, score %d)\n", report.Final.Number, report.Final.Elapsed, report.Final.Score)
	fmt.Printf("Highest score:  %d\n", report.HighScore())
}

func recordResults(results []dodge.RoundResult) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, res := range results {
		if err := store.SaveRound(context.Background(), res); err != nil {
			return err
		}
	}
	return nil
}
