package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagID     string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show game history",
	Long: `Display the best games, or the latest ones with --recent.

Examples:
  simon scores
  simon scores --limit 20
  simon scores --recent
  simon scores --id 3f1c...
  simon scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show latest games instead of best")
	scoresCmd.Flags().StringVar(&flagID, "id", "", "Show a single game by record ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearGames(); err != nil {
			return err
		}
		logger.Info("history cleared", "db", flagDBPath)
		fmt.Println("History cleared.")
		return nil

	case flagID != "":
		game, err := store.GameByRecordID(flagID)
		if err != nil {
			return err
		}
		if game == nil {
			return fmt.Errorf("no game with ID %q", flagID)
		}
		printGame(*game)
		return nil
	}

	var games []storage.GameRecord
	title := "High Scores"
	if flagRecent {
		title = "Recent Games"
		games, err = store.RecentGames(flagLimit)
	} else {
		games, err = store.TopGames(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving games: %w", err)
	}

	fmt.Printf("Simon - %s\n", title)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'simon play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "Rank", "Score", "Ended by", "Length", "Played")
	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "--------", "------", "------")

	for i, g := range games {
		fmt.Printf("  %-4d  %-5d  %-8s  %-8s  %s\n",
			i+1, g.Score, g.Reason, g.Duration.Round(time.Second), humanize.Time(g.CreatedAt))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %s   Average: %.1f\n",
			stats.BestScore, humanize.Comma(int64(stats.GamesCount)), stats.AvgScore)
	}
	return nil
}

func printGame(g storage.GameRecord) {
	fmt.Printf("Game %s\n", g.RecordID)
	fmt.Printf("  Score:    %d\n", g.Score)
	fmt.Printf("  Ended by: %s\n", g.Reason)
	fmt.Printf("  Length:   %s\n", g.Duration.Round(time.Second))
	fmt.Printf("  Played:   %s (%s)\n", g.CreatedAt.Local().Format("2006-01-02 15:04"), humanize.Time(g.CreatedAt))
}
