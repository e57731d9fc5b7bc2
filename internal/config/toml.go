// Package config provides TOML configuration parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// AnalysisConfig maps normalization settings.
type AnalysisConfig struct {
	Punctuation *bool   `toml:"punctuation"`
	Lower       *bool   `toml:"lower"`
	Stem        *bool   `toml:"stem"`
	Stop        *bool   `toml:"stop"`
	Proper      *bool   `toml:"proper"`
	NFC         *bool   `toml:"nfc"`
	StopFile    *string `toml:"stop-file"`
}

// OutputConfig maps report and chart settings.
type OutputConfig struct {
	Output   *string `toml:"output"`
	Format   *string `toml:"format"`
	Plot     *string `toml:"plot"`
	NoPlot   *bool   `toml:"no-plot"`
	Top      *int    `toml:"top"`
	TermPlot *bool   `toml:"term-plot"`
}

// LogConfig maps logger settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. An empty path yields an
// empty config; a path that does not exist is an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
