// Package config loads the thing-doer configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"github.com/open-control-systems/thing-doer/components/status"
)

// Config is the thing-doer configuration.
type Config struct {
	// Times is the number of repetitions, non-positive value produces no output.
	Times int `toml:"times"`

	// LogLevel is the zap level name.
	LogLevel string `toml:"log_level"`

	// LogPath is the log file path, stderr is used if empty.
	LogPath string `toml:"log_path"`
}

// Default returns configuration used when no file is provided.
func Default() Config {
	return Config{
		Times:    1,
		LogLevel: "info",
	}
}

// Load reads TOML configuration from path.
//
// Remarks:
//   - Keys missing in the file keep their default values.
//   - Empty path returns the default configuration.
func Load(path string) (Config, error) {
	c := Default()

	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: file not found: path=%s: %w",
				path, status.StatusNoData)
		}

		return Config{}, fmt.Errorf("config: failed to read: path=%s err=%v: %w",
			path, err, status.StatusError)
	}

	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse: path=%s err=%v: %w",
			path, err, status.StatusInvalidArg)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate ensures the configuration can be applied.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log level: level=%s: %w",
			c.LogLevel, status.StatusInvalidArg)
	}

	return nil
}
