/*
 * schema.go, part of gtno.
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
	"slices"
	"strings"
)

//Field identifies the per-atom quantity stored in a column.
type Field int

const (
	ChargeField Field = iota
	CoordField
	ForceField
)

var fieldNames = map[Field]string{
	ChargeField: "charge",
	CoordField:  "coord",
	ForceField:  "force",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

//Schema holds the column-name suffixes that mark the per-atom columns.
type Schema struct {
	ChargeSuffix string
	CoordSuffix  string
	ForceSuffix  string
}

//DefaultSchema returns the suffixes written by the cleaning script:
//atom_{i}_charge, atom_{i}_coord and atom_{i}_force.
func DefaultSchema() Schema {
	return Schema{
		ChargeSuffix: "_charge",
		CoordSuffix:  "_coord",
		ForceSuffix:  "_force",
	}
}

//ColumnGroups holds the 0-based positions of the charge, coordinate
//and force columns, in header order. The i-th element of each group is
//taken to belong to the i-th atom.
type ColumnGroups struct {
	Charges []int
	Coords  []int
	Forces  []int
}

//Atoms returns the number of atoms announced by the header, i.e. the
//number of charge columns.
func (G ColumnGroups) Atoms() int {
	return len(G.Charges)
}

//Aligned returns true if the three groups have the same number of columns.
func (G ColumnGroups) Aligned() bool {
	return len(G.Charges) == len(G.Coords) && len(G.Charges) == len(G.Forces)
}

//Clone returns a copy of G that shares no memory with it.
func (G ColumnGroups) Clone() ColumnGroups {
	return ColumnGroups{
		Charges: slices.Clone(G.Charges),
		Coords:  slices.Clone(G.Coords),
		Forces:  slices.Clone(G.Forces),
	}
}

type rule struct {
	match  func(name string) bool
	target func(G *ColumnGroups) *[]int
}

//rules are tried top to bottom. The first match wins.
func (S Schema) rules() []rule {
	suffix := func(s string) func(string) bool {
		return func(name string) bool { return s != "" && strings.HasSuffix(name, s) }
	}
	return []rule{
		{suffix(S.ChargeSuffix), func(G *ColumnGroups) *[]int { return &G.Charges }},
		{suffix(S.CoordSuffix), func(G *ColumnGroups) *[]int { return &G.Coords }},
		{suffix(S.ForceSuffix), func(G *ColumnGroups) *[]int { return &G.Forces }},
	}
}

//Classify partitions the positions of the header columns in the three
//groups, according to their suffixes. Columns that match no suffix (the
//timestep and the energy, for instance) are left out. Empty groups are
//not an error.
func (S Schema) Classify(header []string) ColumnGroups {
	var G ColumnGroups
	rules := S.rules()
	for i, name := range header {
		for _, r := range rules {
			if r.match(name) {
				g := r.target(&G)
				*g = append(*g, i)
				break
			}
		}
	}
	return G
}

//Classify is a shortcut for DefaultSchema().Classify(header)
func Classify(header []string) ColumnGroups {
	return DefaultSchema().Classify(header)
}
