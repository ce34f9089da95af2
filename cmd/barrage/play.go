package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/games/barrage"
	"github.com/vovakirdan/tui-barrage/internal/platform/tui"
	"github.com/vovakirdan/tui-barrage/internal/registry"
	"github.com/vovakirdan/tui-barrage/internal/storage"
)

var (
	flagConfig string
	flagTanks  int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a hot-seat match",
	Long: `Start a hot-seat match. Players share one keyboard and take turns.

Controls:
  ←/a        - Raise the turret
  →/d        - Lower the turret
  Space      - Fire and pass the turn
  P          - Pause
  R          - Restart the match
  Q/Ctrl+C   - Quit

Examples:
  barrage play
  barrage play --tanks 4
  barrage play --config ./my-match.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagTanks, "tanks", 0, "Number of tanks (0 = config default)")
}

func runPlay(cmd *cobra.Command, args []string) {
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

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h - 1 // Leave room for the help line
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	barrage.SetConfigPath(flagConfig)
	barrage.SetTankCount(flagTanks)

	// Resolve the tank count for the session record
	tanks := flagTanks
	if tanks == 0 {
		if conf, confErr := config.Load(flagConfig); confErr == nil {
			tanks = conf.Tanks.Count
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("could not create game", "err", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tanks)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("could not run game", "err", runErr)
		os.Exit(1)
	}
}
