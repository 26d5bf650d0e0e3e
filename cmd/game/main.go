// game is a Bubble Trouble clone: pop the bouncing balls before one lands on you.
//
// Usage:
//
//	game play                 - Open the game window
//	game sim                  - Run a scripted round headless and print a summary
//	game replay <file>        - Re-simulate a recorded round headless
//
// Global flags:
//
//	--config <path>  - Use a game.yaml instead of the embedded default
//	--verbose        - Log debug events
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/system"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/infrastructure/collision"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Bubble Trouble - pop every ball without getting hit",
	Long: `A Bubble Trouble clone. Balls bounce around the arena; each arrow hit
splits a ball into two smaller ones until the smallest vanish. Touching any
ball ends the round.

Available commands:
  play     - Open the game window
  sim      - Run a scripted round without a window
  replay   - Re-simulate a recorded round without a window

Examples:
  game play
  game play --record run.json
  game sim --ticks 3000 --fire-every 30
  game replay run.json --config ./hard.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game.yaml (default: embedded)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bubble",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads path, or the embedded default when path is empty.
// The returned name is what recordings store.
func loadConfig(path string) (*config.GameConfig, string, error) {
	if path == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, "", fmt.Errorf("failed to get config subfs: %w", err)
		}
		cfg, err := config.NewFSLoader(fsys, "configs").LoadGame()
		if err != nil {
			return nil, "", err
		}
		return cfg, config.DefaultFile, nil
	}

	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	cfg, err := config.NewLoader(dir).LoadFile(file)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// newSimulation wires the configured collider into a fresh simulation
func newSimulation(cfg *config.GameConfig) (*system.Simulation, error) {
	simCfg, err := cfg.SimConfig()
	if err != nil {
		return nil, err
	}
	col, err := collision.New(cfg.Collision.Backend, simCfg.Arena, cfg.Collision.CellSize)
	if err != nil {
		return nil, err
	}
	return system.NewSimulation(simCfg, col), nil
}
