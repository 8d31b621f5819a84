/*
 * dataset.go, part of gtno.
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

package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/luke-a-thompson/gtno"
)

//Options control how a trajectory table is loaded.
type Options struct {
	Schema Schema

	//Logger receives the cells skipped while loading. The default
	//logs text to stderr.
	Logger *slog.Logger

	//StrictAlignment makes loading fail if the header doesn't have the same
	//number of charge, coordinate and force columns. If false, the mismatch
	//is only logged.
	StrictAlignment bool

	//DropElements lists nuclear charges whose atoms are removed from every record.
	DropElements []int
}

//DefaultOptions returns the options for the tables written by the
//cleaning script, with all atoms kept.
func DefaultOptions() *Options {
	r := new(Options)
	r.Schema = DefaultSchema()
	r.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	return r
}

//Dataset is an in-memory trajectory: one record per row of the table.
//It is built once by Load or Read and never modified afterwards, so it
//can be read from several goroutines.
type Dataset struct {
	filename string
	header   []string
	groups   ColumnGroups
	records  []gtno.TimestepRecord
	diags    []Diagnostic
}

var _ gtno.Dataset = (*Dataset)(nil)

//Load reads the whole table in the file filename. Files ending in .zst or .gz
//are decompressed on the fly. If opts is nil, DefaultOptions() is used.
//On error, no dataset is returned.
func Load(filename string, opts *Options) (*Dataset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: filename, Column: -1, cause: err, deco: []string{"Load"}, critical: true}
	}
	defer f.Close()
	r, closer, err := decompressor(filename, f)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: filename, Column: -1, cause: err, deco: []string{"Load"}, critical: true}
	}
	defer closer()
	return Read(r, filename, opts)
}

//decompressor picks a reader for the file from its extension.
func decompressor(filename string, f io.Reader) (io.Reader, func(), error) {
	b := bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zst", ".zstd":
		z, err := zstd.NewReader(b)
		if err != nil {
			return nil, nil, err
		}
		return z, z.Close, nil
	case ".gz":
		z, err := gzip.NewReader(b)
		if err != nil {
			return nil, nil, err
		}
		return z, func() { z.Close() }, nil
	default:
		return b, func() {}, nil
	}
}

//Read reads a whole table from r. name is used only in messages.
//If opts is nil, DefaultOptions() is used.
func Read(r io.Reader, name string, opts *Options) (*Dataset, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	fail := func(msg string, row int, cause error) error {
		return Error{message: msg, filename: name, Row: row, Column: -1, cause: cause, deco: []string{"Read"}, critical: true}
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty table")
		}
		return nil, fail(NoHeader, 0, err)
	}
	D := &Dataset{filename: name, header: header}
	D.groups = opts.Schema.Classify(header)
	logger.Debug("classified columns", "file", name, "charges", len(D.groups.Charges), "coords", len(D.groups.Coords), "forces", len(D.groups.Forces))
	if !D.groups.Aligned() {
		if opts.StrictAlignment {
			return nil, fail(MisalignedCols, 0, fmt.Errorf("%d charge, %d coordinate and %d force columns", len(D.groups.Charges), len(D.groups.Coords), len(D.groups.Forces)))
		}
		logger.Warn("column groups differ in size, atoms may be misaligned", "file", name, "charges", len(D.groups.Charges), "coords", len(D.groups.Coords), "forces", len(D.groups.Forces))
	}

	dec := NewDecoder(header, D.groups, name)
	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fail(ReadError, rowNum, err)
		}
		rec, diags, err := dec.DecodeRow(row, rowNum)
		if err != nil {
			return nil, err
		}
		for _, d := range diags {
			logger.Warn("skipped unreadable vector cell", "file", name, "row", d.Row, "column", d.Column, "header", d.Header, "field", d.Field.String(), "error", d.Err)
		}
		D.diags = append(D.diags, diags...)
		if len(opts.DropElements) > 0 {
			filtered, err := rec.WithoutElements(opts.DropElements...)
			if err != nil {
				d := Diagnostic{Row: rowNum, Column: -1, Field: ChargeField, Err: err}
				logger.Warn("record kept with all its atoms", "file", name, "row", rowNum, "error", err)
				D.diags = append(D.diags, d)
			} else {
				rec = filtered
			}
		}
		D.records = append(D.records, rec)
	}
	logger.Debug("loaded trajectory", "file", name, "frames", len(D.records), "skipped", len(D.diags))
	return D, nil
}

//Len returns the number of frames in the dataset.
func (D *Dataset) Len() int {
	return len(D.records)
}

//Get returns a copy of the i-th record, or false if i is out of range.
func (D *Dataset) Get(i int) (gtno.TimestepRecord, bool) {
	if i < 0 || i >= len(D.records) {
		return gtno.TimestepRecord{}, false
	}
	return D.records[i].Clone(), true
}

//Records returns a copy of all the records.
func (D *Dataset) Records() []gtno.TimestepRecord {
	ret := make([]gtno.TimestepRecord, len(D.records))
	for i, r := range D.records {
		ret[i] = r.Clone()
	}
	return ret
}

//FileName returns the name given to Load or Read.
func (D *Dataset) FileName() string { return D.filename }

//Header returns a copy of the header row.
func (D *Dataset) Header() []string { return slices.Clone(D.header) }

//Groups returns a copy of the column groups found in the header.
func (D *Dataset) Groups() ColumnGroups { return D.groups.Clone() }

//Diagnostics returns the cells skipped while loading.
func (D *Dataset) Diagnostics() []Diagnostic { return slices.Clone(D.diags) }

//Energies returns the energy of each frame, in order.
func (D *Dataset) Energies() []float64 {
	ret := make([]float64, len(D.records))
	for i, r := range D.records {
		ret[i] = r.Energy
	}
	return ret
}

//Timesteps returns the timestep of each frame, in order.
func (D *Dataset) Timesteps() []int {
	ret := make([]int, len(D.records))
	for i, r := range D.records {
		ret[i] = r.Timestep
	}
	return ret
}

//Validate returns one error per record whose per-atom arrays differ in length.
func (D *Dataset) Validate() []error {
	var errs []error
	for _, r := range D.records {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
