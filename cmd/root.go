package cmd

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/config"
	"os"
)

var version = "0.2.0"

// settings holds flags shared by every command.
type settings struct {
	configPath string
	logLevel   string
	geometry   config.Geometry
	seed       int64
}

func newRootCmd() *cobra.Command {
	shared := &settings{}
	var solve bool
	var snapshotPath string

	rootCmd := &cobra.Command{
		Use:   "gomaze [flags] FILE",
		Short: "Generate maze background images",
		Long: `gomaze draws a maze with a randomized Prim's algorithm and saves it
as an image. The format follows the file extension (png, jpg, gif, bmp, tif).

Generate a 100x100 maze
	gomaze maze.png

Pick the size and seed, and mark the way to the farthest cell
	gomaze -g 640x480 --seed 7 --solve maze.png
`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, logger, err := shared.load(cmd)
			if err != nil {
				return err
			}

			m := generate(cfg, logger)

			if solve {
				if err := drawSolution(m, cfg, logger); err != nil {
					return err
				}
			}

			if snapshotPath != "" {
				if err := os.WriteFile(snapshotPath, []byte(m.Snapshot().Serialize()), 0644); err != nil {
					return fmt.Errorf("writing snapshot: %w", err)
				}
				logger.WithField("path", snapshotPath).Info("Saved snapshot")
			}

			if err := m.Save(args[0]); err != nil {
				return err
			}
			logger.WithField("path", args[0]).Info("Saved maze")
			return nil
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&shared.configPath, "config", "", "YAML config file")
	persistent.StringVar(&shared.logLevel, "log-level", "", "Log level (overrides config)")
	persistent.VarP(newGeometryValue(config.Geometry{Width: 100, Height: 100}, &shared.geometry), "geometry", "g", "Geometry of the image to generate, in pixels")
	persistent.Int64Var(&shared.seed, "seed", -1, "Random seed; negative picks one from the clock")

	rootCmd.Flags().BoolVar(&solve, "solve", false, "Draw the route from the start to the farthest cell")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Also save a YAML snapshot of the maze to this path")

	rootCmd.AddCommand(newRenderCmd(shared))
	rootCmd.AddCommand(newShowCmd(shared))

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the config file and environment, then applies any flags that
// were set explicitly, and builds the logger.
func (shared *settings) load(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(shared.configPath)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("geometry") {
		cfg.Geometry = shared.geometry.String()
	}
	if flags.Changed("seed") {
		cfg.Seed = shared.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = shared.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

type geometryValue config.Geometry

func newGeometryValue(val config.Geometry, p *config.Geometry) *geometryValue {
	*p = val
	return (*geometryValue)(p)
}

func (geometryVal *geometryValue) String() string {
	return config.Geometry(*geometryVal).String()
}

func (geometryVal *geometryValue) Set(value string) error {
	geometry, err := config.ParseGeometry(value)
	if err != nil {
		return err
	}
	*geometryVal = geometryValue(geometry)
	return nil
}

func (geometryVal *geometryValue) Type() string {
	return "WIDTHxHEIGHT"
}

