package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/game"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/scene/playing"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/system"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and play.

Controls:
  A/D, Left/Right   - Move
  Space, W, Up      - Fire
  Tab               - Toggle hitboxes
  Esc               - Pause
  Z/Space           - Restart (after the round ends)
  Q                 - Quit (after the round ends)
  F5                - Save the recording so far (with --record)`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, name, err := loadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	sim, err := newSimulation(cfg)
	if err != nil {
		return fmt.Errorf("failed to build simulation: %w", err)
	}
	logger.Info("starting",
		"config", name,
		"collision", cfg.Collision.Backend,
		"projectile", cfg.Projectile.Policy,
		"bounce", cfg.Balls.BouncePolicy)

	scene := playing.New(playing.Options{
		Sim:        sim,
		Bindings:   system.DefaultKeyBindings(),
		Logger:     logger,
		RecordPath: flagRecord,
		ConfigName: name,
	})
	d := cfg.Display
	g := game.New(scene, d.Width, d.Height, d.Framerate)

	scale := max(d.Scale, 1)
	ebiten.SetWindowSize(d.Width*scale, d.Height*scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
