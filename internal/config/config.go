/*
 * config.go, part of gtno.
 *
 * Copyright 2026 The gtno authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config manages the gtno.toml file that holds the loading and
// output settings used by the gtno command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/luke-a-thompson/gtno/data"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the configuration file looked up when no path is given.
const DefaultFile = "gtno.toml"

// Schema holds the header suffixes of each column group
type Schema struct {
	ChargeSuffix string `toml:"charge_suffix"`
	CoordSuffix  string `toml:"coord_suffix"`
	ForceSuffix  string `toml:"force_suffix"`
}

// Load holds the settings used while reading a table
type Load struct {
	StrictAlignment bool  `toml:"strict_alignment"`
	DropElements    []int `toml:"drop_elements"`
}

// Output holds the settings of the exports and reports
type Output struct {
	Precision int `toml:"precision"` // decimals kept in STF trajectories
	Bins      int `toml:"bins"`      // energy histogram bins
	Index     int `toml:"index"`     // record printed by "show" when --index is not given
}

// Config represents the gtno configuration
type Config struct {
	Schema Schema `toml:"schema"`
	Load   Load   `toml:"load"`
	Output Output `toml:"output"`
}

// Default returns the configuration used when there is no file
func Default() *Config {
	s := data.DefaultSchema()
	return &Config{
		Schema: Schema{
			ChargeSuffix: s.ChargeSuffix,
			CoordSuffix:  s.CoordSuffix,
			ForceSuffix:  s.ForceSuffix,
		},
		Output: Output{Precision: 3, Bins: 20, Index: 4},
	}
}

// LoadFile reads the configuration at path. Keys missing from the file keep
// their default values, and a missing file gives the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that the loaders and writers cannot work with
func (c *Config) Validate() error {
	if c.Schema.ChargeSuffix == "" || c.Schema.CoordSuffix == "" || c.Schema.ForceSuffix == "" {
		return fmt.Errorf("schema suffixes cannot be empty")
	}
	if err := CheckPrecision(c.Output.Precision); err != nil {
		return err
	}
	if c.Output.Bins < 1 {
		return fmt.Errorf("bins must be positive, got %d", c.Output.Bins)
	}
	if c.Output.Index < 0 {
		return fmt.Errorf("index cannot be negative, got %d", c.Output.Index)
	}
	return nil
}

// CheckPrecision checks the number of decimals kept in STF trajectories
func CheckPrecision(p int) error {
	if p < 1 || p > 6 {
		return fmt.Errorf("precision must be between 1 and 6, got %d", p)
	}
	return nil
}

// Save saves the configuration to path
func (c *Config) Save(path string) error {
	raw, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, raw, 0644)
}

// Options returns the loading options described by the configuration,
// reporting to logger.
func (c *Config) Options(logger *slog.Logger) *data.Options {
	opts := data.DefaultOptions()
	opts.Schema = data.Schema{
		ChargeSuffix: c.Schema.ChargeSuffix,
		CoordSuffix:  c.Schema.CoordSuffix,
		ForceSuffix:  c.Schema.ForceSuffix,
	}
	opts.StrictAlignment = c.Load.StrictAlignment
	opts.DropElements = append([]int(nil), c.Load.DropElements...)
	if logger != nil {
		opts.Logger = logger
	}
	return opts
}
