package cmd

import "github.com/spf13/cobra"

func newShowCmd(shared *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show generated mazes in a window",
		Long: `Open a window with a generated maze.

	Enter   generate a new maze
	S       toggle the route to the farthest cell
	Escape  quit
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, logger, err := shared.load(cmd)
			if err != nil {
				return err
			}
			cfg.Seed = resolveSeed(cfg.Seed)

			return showWindow(cfg, logger)
		},
	}
}
