/*
 * vector.go, part of gtno.
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
	"strconv"
	"strings"
)

const ncomps = 3

//ParseVector reads a cell of the form "[x, y, z]". Any number of leading and
//trailing brackets is removed, the rest is split on commas and each piece,
//trimmed of whitespace, must be a float. Exactly 3 pieces are required.
//The returned error is a *VectorError.
func ParseVector(cell string) ([3]float64, error) {
	var ret [3]float64
	pieces := strings.Split(strings.Trim(cell, "[]"), ",")
	vals := make([]float64, 0, len(pieces))
	for _, p := range pieces {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return ret, &VectorError{Raw: cell, Err: ErrComponentParse, Cause: err}
		}
		vals = append(vals, v)
	}
	if len(vals) != ncomps {
		return ret, &VectorError{Raw: cell, Err: ErrComponentCount}
	}
	copy(ret[:], vals)
	return ret, nil
}

//VectorCell is the outcome of decoding one vector cell: either Vec
//or Err is meaningful, never both.
type VectorCell struct {
	Column int
	Vec    [3]float64
	Err    error
}

//OK returns true if the cell was decoded.
func (C VectorCell) OK() bool { return C.Err == nil }

//DecodeVectorCell decodes the cell in column col of row.
func DecodeVectorCell(row []string, col int) VectorCell {
	if col < 0 || col >= len(row) {
		return VectorCell{Column: col, Err: &VectorError{Err: ErrMissingCell}}
	}
	v, err := ParseVector(row[col])
	return VectorCell{Column: col, Vec: v, Err: err}
}
