package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration for a voxctl session, loaded from a
// TOML file. Flags given on the command line override the fields here.
type Config struct {
	// ModelDir is the path to the speech-recognition model directory used
	// by the external decoder. The core does not read this itself; it is
	// passed straight through to the decoder process.
	ModelDir string `toml:"model_dir"`

	// ConsoleWidth is the column width used to wrap diagnostic messages
	// printed to the console.
	ConsoleWidth int `toml:"console_width"`

	// ForceDirect forces reading commands directly from stdin rather than
	// through GNU readline, even when connected to a TTY.
	ForceDirect bool `toml:"force_direct"`
}

// FillDefaults returns a copy of cfg with zero-valued fields set to their
// defaults.
func (cfg Config) FillDefaults() Config {
	out := cfg
	if out.ConsoleWidth == 0 {
		out.ConsoleWidth = 72
	}
	return out
}

// LoadConfig reads and parses a TOML config file at path. A missing file is
// not an error; it yields a zero Config so that FillDefaults alone governs
// behavior.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return cfg, nil
}
