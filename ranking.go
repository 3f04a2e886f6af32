package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"go-memotest/internal/scoring"

	"github.com/spf13/cobra"
)

var flagTop int

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the ranking",
	Long: `Display the best scores kept in the ranking store.

Examples:
  memotest ranking
  memotest ranking --top 3
  memotest ranking --store text --format highscores`,
	Args: cobra.NoArgs,
	RunE: runRanking,
}

func init() {
	rankingCmd.Flags().IntVar(&flagTop, "top", scoring.DefaultLimit, "Number of entries to show")
}

func runRanking(_ *cobra.Command, _ []string) error {
	storage, closer, err := openStorage()
	if err != nil {
		return fmt.Errorf("error opening ranking: %w", err)
	}
	defer closer.Close()

	r, err := scoring.Load(storage, scoring.DefaultLimit)
	if err != nil {
		return fmt.Errorf("error reading ranking: %w", err)
	}

	entries := r.Top(flagTop)
	if len(entries) == 0 {
		fmt.Println("No scores yet. Play a match to get on the board!")
		return nil
	}

	fmt.Println("Ranking")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tSCORE\tBOARD\tDATE")
	for i, e := range entries {
		board, date := "-", "-"
		if e.Rows > 0 && e.Columns > 0 {
			board = fmt.Sprintf("%dx%d", e.Rows, e.Columns)
		}
		if len(e.Timestamp) >= 10 {
			date = e.Timestamp[:10]
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", i+1, e.Name, e.Score, board, date)
	}
	return w.Flush()
}
