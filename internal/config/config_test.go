/*
 * config_test.go, part of gtno.
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

package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "_charge", cfg.Schema.ChargeSuffix)
	assert.Equal(t, "_coord", cfg.Schema.CoordSuffix)
	assert.Equal(t, "_force", cfg.Schema.ForceSuffix)
	assert.Equal(t, 4, cfg.Output.Index)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	content := `
[load]
strict_alignment = true
drop_elements = [1]

[output]
bins = 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Load.StrictAlignment)
	assert.Equal(t, []int{1}, cfg.Load.DropElements)
	assert.Equal(t, 7, cfg.Output.Bins)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, "_coord", cfg.Schema.CoordSuffix)
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[output\nbins = "), 0644))
	_, err := LoadFile(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.toml")
	require.NoError(t, os.WriteFile(zero, []byte("[output]\nprecision = 9\n"), 0644))
	_, err = LoadFile(zero)
	assert.ErrorContains(t, err, "precision")

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("[schema]\nforce_suffix = \"\"\n"), 0644))
	_, err = LoadFile(empty)
	assert.ErrorContains(t, err, "suffixes")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := Default()
	cfg.Schema.ForceSuffix = "_grad"
	cfg.Load.DropElements = []int{1, 6}
	require.NoError(t, cfg.Save(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Schema.ChargeSuffix = "_z"
	cfg.Load.StrictAlignment = true
	cfg.Load.DropElements = []int{1}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	opts := cfg.Options(logger)
	assert.Equal(t, "_z", opts.Schema.ChargeSuffix)
	assert.True(t, opts.StrictAlignment)
	assert.Equal(t, []int{1}, opts.DropElements)
	assert.Same(t, logger, opts.Logger)

	opts.DropElements[0] = 8
	assert.Equal(t, []int{1}, cfg.Load.DropElements)
	assert.NotNil(t, cfg.Options(nil).Logger)
}

func TestCheckPrecision(t *testing.T) {
	assert.NoError(t, CheckPrecision(1))
	assert.NoError(t, CheckPrecision(6))
	assert.Error(t, CheckPrecision(0))
	assert.Error(t, CheckPrecision(7))
}
