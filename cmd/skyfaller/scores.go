package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfaller/internal/platform/tui"
	"github.com/vovakirdan/skyfaller/internal/storage"
)

var (
	flagLimit       int
	flagPlayer      string
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs stored in the scores database.

Examples:
  skyfaller scores
  skyfaller scores --limit 20
  skyfaller scores --player alice
  skyfaller scores --recent
  skyfaller scores --interactive
  skyfaller scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of score")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	switch {
	case flagPlayer != "":
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	case flagRecent:
		runs, err = store.RecentRuns(flagLimit)
	default:
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Skyfaller")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyfaller play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-4s  %-6s  %s\n", "Rank", "Player", "Score", "Time", "Hits", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-4s  %-6s  %s\n", "----", "------", "-----", "----", "----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-8s  %-4d  %-6s  %s\n",
			i+1, truncate(r.Player, 12), r.Score, fmt.Sprintf("%.1fs", r.Elapsed),
			r.Hits, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Time played: %.0fs\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalSeconds)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
