package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barrage/internal/platform/tui"
	"github.com/vovakirdan/tui-barrage/internal/registry"
	"github.com/vovakirdan/tui-barrage/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show saved session results",
	Long: `Display the top session results and recent matches for a game.

Examples:
  barrage scores
  barrage scores barrage --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr)

	gameID := "barrage"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		logger.Error("unknown game", "id", gameID)
		logger.Print("Run 'barrage list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("could not create game", "err", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open scores database", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		if err := tui.RunScoreboard(store, gameID, title); err != nil {
			logger.Error("could not run scoreboard", "err", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		logger.Error("could not retrieve scores", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Session Results - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'barrage play %s' to record the first one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Shots", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	matches, err := store.RecentMatches(gameID, 5)
	if err == nil && len(matches) > 0 {
		fmt.Println()
		fmt.Println("Recent matches:")
		for _, m := range matches {
			fmt.Printf("  %s  %d tanks, %d shots, %ds (%s)\n",
				m.CreatedAt.Format("2006-01-02 15:04"),
				m.Tanks, m.Shots, m.DurationSecs, m.EndReason)
		}
	}
}
