package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded rounds",
	Long: `Display the best recorded rounds.

On a terminal this opens an interactive table (tab switches between best
and most recent rounds). When output is piped, or with --plain, a text
listing is printed instead.

Examples:
  dodge history
  dodge history --limit 50
  dodge history --plain > rounds.txt`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of rounds to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening round history: %v", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, flagHistoryLimit, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	if err := printHistory(store, flagHistoryLimit); err != nil {
		fail("%v", err)
	}
}

func printHistory(store *storage.Store, limit int) error {
	rounds, err := store.TopRounds(limit)
	if err != nil {
		return err
	}

	fmt.Println("Dodge - Best Rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to start the history!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-6s  %-20s  %s\n", "Rank", "Score", "Time", "Round", "Speed", "Session", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-6s  %-20s  %s\n", "----", "-----", "----", "-----", "-----", "-------", "----")
	for i, row := range tui.HistoryRows(rounds) {
		fmt.Printf("  %-4d  %-7s  %-6s  %-5s  %-6s  %-20s  %s\n", i+1, row[1], row[2], row[3], row[4], row[5], row[6])
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Rounds played: %d   Best: %d   Average: %.0f   Longest: %ds\n",
		stats.Rounds, stats.BestScore, stats.AvgScore, stats.Longest)
	return nil
}
