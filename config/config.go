// Package config provides the configuration of the interpreter.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/avm/api"
	"github.com/sarchlab/avm/core"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be given in a YAML file.
type Config struct {
	LogLevel string  `yaml:"log_level"`
	Trace    bool    `yaml:"trace"`
	FreqGHz  float64 `yaml:"freq_ghz"`
	MaxSteps int     `yaml:"max_steps"`
	Color    bool    `yaml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "warn",
		FreqGHz:  1,
		Color:    true,
	}
}

// Load reads a YAML file. Fields missing from the file keep their default
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over the default configuration.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the values of the configuration.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.FreqGHz <= 0 {
		return fmt.Errorf("freq_ghz must be positive, got %v", c.FreqGHz)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps cannot be negative, got %d", c.MaxSteps)
	}
	return nil
}

// SlogLevel converts the log level name into a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "trace":
		return core.LevelTrace, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// Logger returns a text logger that writes records at or above the
// configured level to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), nil
}

// DriverBuilder returns a driver builder configured with c. Program output
// and diagnostics go to out; the stack trace, if enabled, goes to traceOut.
func (c Config) DriverBuilder(out, traceOut io.Writer) api.DriverBuilder {
	b := api.MakeDriverBuilder().
		WithFreq(sim.Freq(c.FreqGHz) * sim.GHz).
		WithOutput(out).
		WithMaxSteps(c.MaxSteps)

	if c.Trace {
		b = b.WithTrace(traceOut)
	}

	return b
}
