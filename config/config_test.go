package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		in   string
		want Geometry
		ok   bool
	}{
		{"100x100", Geometry{100, 100}, true},
		{"13x7", Geometry{13, 7}, true},
		{"1x1", Geometry{1, 1}, true},
		{"16384x1", Geometry{16384, 1}, true},
		{"16385x10", Geometry{}, false},
		{"4294967295x4294967295", Geometry{}, false},
		{"100", Geometry{}, false},
		{"100x", Geometry{}, false},
		{"x100", Geometry{}, false},
		{"10x10x10", Geometry{}, false},
		{"0x10", Geometry{}, false},
		{"-5x10", Geometry{}, false},
		{"ax10", Geometry{}, false},
		{"10X10", Geometry{}, false},
		{" 10x10", Geometry{}, false},
		{"", Geometry{}, false},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseGeometry(test.in)
			if test.ok {
				require.NoError(t, err)
				assert.Equal(t, test.want, got)
				assert.Equal(t, test.in, got.String())
			} else {
				assert.ErrorIs(t, err, ErrInvalidGeometry)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"geometry", func(config *Config) { config.Geometry = "big" }},
		{"log level", func(config *Config) { config.LogLevel = "loud" }},
		{"log format", func(config *Config) { config.LogFormat = "xml" }},
		{"solution color", func(config *Config) { config.SolutionColor = "notacolor" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := Default()
			test.modify(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "gomaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geometry: 64x32\nseed: 9\nlog_format: json\n"), 0644))

	t.Setenv("GOMAZE_LOG_LEVEL", "debug")
	t.Setenv("GOMAZE_SEED", "12")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "64x32", config.Geometry)
	assert.Equal(t, int64(12), config.Seed)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "crimson", config.SolutionColor)
}

func TestLoadDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("GOMAZE_SOLUTION_COLOR=gold\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("GOMAZE_SOLUTION_COLOR") })

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gold", config.SolutionColor)
}

func TestLoadErrors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("GOMAZE_SEED", "soon")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv("GOMAZE_SEED", "1")
	t.Setenv("GOMAZE_GEOMETRY", "1x2x3")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}
