/*
 * decode.go, part of gtno.
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
	"fmt"
	"strconv"

	"github.com/luke-a-thompson/gtno"
)

const (
	timestepCol = 0
	energyCol   = 1
)

//Diagnostic describes a cell that was skipped while decoding a row.
type Diagnostic struct {
	Row    int //1-based data row
	Column int
	Header string
	Field  Field
	Err    error
}

func (D Diagnostic) String() string {
	return fmt.Sprintf("row %d, column %d (%s, %s): %v", D.Row, D.Column, D.Header, D.Field, D.Err)
}

//Decoder turns table rows into frame records, using the column groups
//obtained from the header. A Decoder is never modified after NewDecoder,
//so it can be shared.
type Decoder struct {
	header []string
	groups ColumnGroups
	file   string
}

//NewDecoder returns a Decoder for rows of a table with the given header and
//column groups. filename is only used in error messages.
func NewDecoder(header []string, groups ColumnGroups, filename string) *Decoder {
	return &Decoder{header: header, groups: groups.Clone(), file: filename}
}

func (D *Decoder) headerName(col int) string {
	if col >= 0 && col < len(D.header) {
		return D.header[col]
	}
	return ""
}

func (D *Decoder) fatal(msg string, row, col int, cause error) error {
	return Error{message: msg, filename: D.file, Row: row, Column: col, cause: cause, deco: []string{"DecodeRow"}, critical: true}
}

//DecodeRow decodes the data row number rowNum (1-based, used for reporting).
//A timestep, energy or charge that can't be read is an error, and no record is returned.
//Coordinate or force cells that can't be read are left out of the record, and
//described in the returned diagnostics.
func (D *Decoder) DecodeRow(row []string, rowNum int) (gtno.TimestepRecord, []Diagnostic, error) {
	var rec gtno.TimestepRecord
	var diags []Diagnostic
	if len(row) <= energyCol {
		return rec, nil, D.fatal(MissingColumn, rowNum, len(row), nil)
	}
	ts, err := strconv.Atoi(row[timestepCol])
	if err != nil {
		return rec, nil, D.fatal(BadTimestep, rowNum, timestepCol, err)
	}
	energy, err := strconv.ParseFloat(row[energyCol], 64)
	if err != nil {
		return rec, nil, D.fatal(BadEnergy, rowNum, energyCol, err)
	}
	rec.Timestep = ts
	rec.Energy = energy

	rec.NuclearCharges = make([]int, 0, len(D.groups.Charges))
	for _, col := range D.groups.Charges {
		if col >= len(row) {
			return rec, nil, D.fatal(MissingColumn, rowNum, col, nil)
		}
		z, err := strconv.Atoi(row[col])
		if err != nil {
			return rec, nil, D.fatal(BadCharge, rowNum, col, err)
		}
		rec.NuclearCharges = append(rec.NuclearCharges, z)
	}
	rec.Coords, diags = D.vectors(row, rowNum, CoordField, D.groups.Coords, diags)
	rec.Forces, diags = D.vectors(row, rowNum, ForceField, D.groups.Forces, diags)
	return rec, diags, nil
}

//vectors collects the decodable cells in cols, and appends a Diagnostic
//to diags for every other one.
func (D *Decoder) vectors(row []string, rowNum int, f Field, cols []int, diags []Diagnostic) ([][3]float64, []Diagnostic) {
	ret := make([][3]float64, 0, len(cols))
	for _, col := range cols {
		cell := DecodeVectorCell(row, col)
		if !cell.OK() {
			diags = append(diags, Diagnostic{Row: rowNum, Column: col, Header: D.headerName(col), Field: f, Err: cell.Err})
			continue
		}
		ret = append(ret, cell.Vec)
	}
	return ret, diags
}

//Decode decodes all the rows with a Decoder built from header and groups.
//It stops at the first error.
func Decode(header []string, rows [][]string, groups ColumnGroups) ([]gtno.TimestepRecord, []Diagnostic, error) {
	dec := NewDecoder(header, groups, "")
	recs := make([]gtno.TimestepRecord, 0, len(rows))
	var diags []Diagnostic
	for i, row := range rows {
		rec, d, err := dec.DecodeRow(row, i+1)
		if err != nil {
			return nil, nil, err
		}
		diags = append(diags, d...)
		recs = append(recs, rec)
	}
	return recs, diags, nil
}
