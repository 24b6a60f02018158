package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vtwire/internal/logging"
	"github.com/dshills/vtwire/internal/transport"
)

// Transport kinds accepted in the [transport] section.
const (
	KindSerial = "serial"
	KindStdio  = "stdio"
)

// Config is the full vtwire configuration.
type Config struct {
	Transport TransportConfig `toml:"transport"`
	Log       LogConfig       `toml:"log"`
}

// TransportConfig selects and tunes the byte stream to the terminal.
type TransportConfig struct {
	// Kind is the transport to open: serial or stdio.
	Kind string `toml:"kind"`

	// Device is the serial device path, such as /dev/ttyUSB0.
	// Ignored for the stdio transport.
	Device string `toml:"device"`

	// Baud is the serial line rate. Ignored for the stdio transport.
	Baud transport.Baud `toml:"baud"`

	// FlowControl enables XON/XOFF pacing on the serial line.
	FlowControl bool `toml:"flow_control"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is the minimum severity to record: debug, info, warn
	// or error.
	Level string `toml:"level"`

	// File is the log file path. Empty logs to stderr.
	File string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Transport: TransportConfig{
			Kind: KindStdio,
			Baud: transport.Baud9600,
		},
		Log: LogConfig{
			Level: logging.LevelInfo,
		},
	}
}

// DefaultPath returns the conventional location of the configuration
// file, under the user configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vtwire.toml"
	}
	return filepath.Join(dir, "vtwire", "config.toml")
}

// Load reads and validates the configuration at path. A missing file
// is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no component could
// act on.
func (c *Config) Validate() error {
	switch c.Transport.Kind {
	case KindStdio:
	case KindSerial:
		if c.Transport.Device == "" {
			return ErrMissingDevice
		}
		if !c.Transport.Baud.Valid() {
			return fmt.Errorf("baud %d: %w", c.Transport.Baud, transport.ErrUnknownBaud)
		}
	default:
		return fmt.Errorf("%q: %w", c.Transport.Kind, ErrUnknownKind)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
