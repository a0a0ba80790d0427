// Package config loads cs2ir settings from flags, environment and YAML files.
package config

// Copyright (C) 2025 Rizome Labs, Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidLevel  = errors.New("invalid log level")
)

// EnvPrefix prefixes every environment override, e.g. CS2IR_LOG_LEVEL.
const EnvPrefix = "CS2IR"

// Config is the resolved configuration.
type Config struct {
	Engine Engine `mapstructure:"engine"`
	Log    Log    `mapstructure:"log"`
	Output Output `mapstructure:"output"`
}

// Engine selects the engine description table.
type Engine struct {
	// Table is an optional YAML file overlaid on the built-in table.
	Table string `mapstructure:"table"`
}

// Log selects the slog level and handler.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Output selects how commands print results.
type Output struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("engine.table", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "text")
}

// Init points v at configFile, or at cs2ir.yaml in the working directory and
// in ~/.cs2ir when configFile is empty, then reads it. A missing file is only
// an error when it was named explicitly.
func Init(v *viper.Viper, configFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		return nil
	}

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".cs2ir"))
	}
	v.SetConfigName("cs2ir")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: log.level %q", ErrInvalidLevel, cfg.Log.Level)
	}
	if err := oneOf("log.format", cfg.Log.Format, "text", "json"); err != nil {
		return nil, err
	}
	if err := oneOf("output.format", cfg.Output.Format, "text", "yaml"); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func oneOf(key, val string, allowed ...string) error {
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (use %s)", ErrInvalidFormat, key, val, strings.Join(allowed, " or "))
}
