// barrage is a terminal turn-based artillery game: tanks take turns aiming
// a turret and firing gravity-driven shells across a flat terrain.
//
// Usage:
//
//	barrage list              - List available games
//	barrage play              - Start a hot-seat match
//	barrage scores [game]     - Show saved session results
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for games that use randomness
//	--db <path>     - Set database path (default: ~/.barrage/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barrage",
	Short: "Barrage - turn-based tank artillery in your terminal",
	Long: `Barrage is a terminal-based artillery game. Two or more tanks take
turns aiming a turret and firing a shell across a simple 2D terrain.

Available commands:
  list     - Show all available games
  play     - Start a hot-seat match
  scores   - View saved session results

Examples:
  barrage play
  barrage play --tanks 4
  barrage scores barrage
  barrage scores barrage --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for games that use randomness (barrage is deterministic)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.barrage/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
