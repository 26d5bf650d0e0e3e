package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/system"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

var (
	flagTicks     int
	flagFireEvery int
	flagStrafe    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted round without a window",
	Long: `Run the simulation headless with a scripted player and print a summary.

The script fires every --fire-every ticks and, when --strafe is set, walks
left and right in alternating runs of that many ticks.`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to run")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 30, "Fire once every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagStrafe, "strafe", 0, "Alternate direction every N ticks (0 = stand still)")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if flagFireEvery < 0 || flagStrafe < 0 {
		return fmt.Errorf("--fire-every and --strafe must not be negative")
	}

	logger := newLogger()
	cfg, name, err := loadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	sim, err := newSimulation(cfg)
	if err != nil {
		return fmt.Errorf("failed to build simulation: %w", err)
	}
	logger.Debug("sim", "config", name, "ticks", flagTicks, "fireEvery", flagFireEvery, "strafe", flagStrafe)

	s := runScripted(sim, flagTicks, scriptedInput(flagFireEvery, flagStrafe))
	s.Title = "sim " + name
	fmt.Fprintln(cmd.OutOrStdout(), s.render())
	return nil
}

// scriptedInput returns the input for tick i (counting from 0)
func scriptedInput(fireEvery, strafe int) func(i int) ecs.Input {
	return func(i int) ecs.Input {
		var in ecs.Input
		if fireEvery > 0 && i%fireEvery == 0 {
			in.Fire = true
		}
		if strafe > 0 {
			if (i/strafe)%2 == 0 {
				in.MoveLeft = true
			} else {
				in.MoveRight = true
			}
		}
		return in
	}
}

// runScripted steps sim for at most ticks ticks or until the round ends
func runScripted(sim *system.Simulation, ticks int, input func(i int) ecs.Input) summary {
	s := summary{State: sim.State()}
	for i := 0; i < ticks && !sim.State().Finished(); i++ {
		s.add(sim.Step(input(i)))
	}
	s.Balls = sim.World().CountBalls()
	return s
}
