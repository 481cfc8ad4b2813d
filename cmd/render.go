package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/maze"
	"os"
)

func newRenderCmd(shared *settings) *cobra.Command {
	var solve bool

	renderCmd := &cobra.Command{
		Use:   "render SNAPSHOT FILE",
		Short: "Render a saved maze snapshot to an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, logger, err := shared.load(cmd)
			if err != nil {
				return err
			}

			in, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			snapshot, err := maze.LoadSnapshot(string(in))
			if err != nil {
				return err
			}
			m, err := snapshot.Maze()
			if err != nil {
				return err
			}

			if solve {
				if err := drawSolution(m, cfg, logger); err != nil {
					return err
				}
			}

			if err := m.Save(args[1]); err != nil {
				return err
			}
			logger.WithField("path", args[1]).Info("Saved maze")
			return nil
		},
	}

	renderCmd.Flags().BoolVar(&solve, "solve", false, "Draw the route from the start to the farthest cell")

	return renderCmd
}
