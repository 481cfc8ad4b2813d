package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v2"
	"os"
	"strconv"
)

const envPrefix = "GOMAZE_"

type Config struct {
	Geometry string `yaml:"geometry"` // image size, WIDTHxHEIGHT
	Seed     int64  `yaml:"seed"`     // negative picks a time-based seed

	LogLevel  string `yaml:"log_level"`  // any logrus level name
	LogFormat string `yaml:"log_format"` // text or json

	// Name from golang.org/x/image/colornames used to draw solutions
	SolutionColor string `yaml:"solution_color"`
}

func Default() Config {
	return Config{
		Geometry:      "100x100",
		Seed:          -1,
		LogLevel:      "info",
		LogFormat:     "text",
		SolutionColor: "crimson",
	}
}

// Load returns the defaults, overlaid by the YAML file at path (skipped when
// path is empty) and then by GOMAZE_* environment variables. A .env file in
// the working directory is read into the environment first, if present.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		in, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.UnmarshalStrict(in, &config); err != nil {
			return config, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// A missing .env is normal
	_ = godotenv.Load()

	if err := config.applyEnv(); err != nil {
		return config, err
	}

	return config, config.Validate()
}

func (config *Config) applyEnv() error {
	fields := map[string]*string{
		"GEOMETRY":       &config.Geometry,
		"LOG_LEVEL":      &config.LogLevel,
		"LOG_FORMAT":     &config.LogFormat,
		"SOLUTION_COLOR": &config.SolutionColor,
	}
	for key, field := range fields {
		if value, ok := os.LookupEnv(envPrefix + key); ok {
			*field = value
		}
	}

	if value, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED must be an integer: %w", envPrefix, err)
		}
		config.Seed = seed
	}

	return nil
}

func (config Config) Validate() error {
	if _, err := ParseGeometry(config.Geometry); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if config.LogFormat != "text" && config.LogFormat != "json" {
		return fmt.Errorf("log format %q: want text or json", config.LogFormat)
	}
	if _, ok := colornames.Map[config.SolutionColor]; !ok {
		return fmt.Errorf("solution color %q is not a known color name", config.SolutionColor)
	}
	return nil
}
