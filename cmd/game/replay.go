package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded round without a window",
	Long: `Feed a recording made with "game play --record" back into the simulation
and print a summary. Use the same --config the round was recorded with.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	data, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	r := replay.NewReplayer(data)
	cfg, name, err := loadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if recorded := r.Config(); recorded != "" && recorded != name {
		logger.Warn("replay was recorded with a different config", "recorded", recorded, "using", name)
	}
	sim, err := newSimulation(cfg)
	if err != nil {
		return fmt.Errorf("failed to build simulation: %w", err)
	}

	s := summary{Title: "replay " + args[0], State: sim.State()}
	replay.Play(sim, r, s.add)
	s.Balls = sim.World().CountBalls()

	logger.Debug("replay finished", "frames", r.Len(), "consumed", r.Pos())
	fmt.Fprintln(cmd.OutOrStdout(), s.render())
	return nil
}
