/*
 * record.go, part of gtno.
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

package gtno

import (
	"fmt"
	"slices"
	"strings"

	v3 "github.com/luke-a-thompson/gtno/v3"
)

// TimestepRecord is the molecular graph for one trajectory frame.
// The i-th entry of NuclearCharges, Coords and Forces refer to the same atom.
// Coords and Forces may be shorter than NuclearCharges if some vector
// cells could not be read; Validate reports that case.
type TimestepRecord struct {
	Timestep       int
	Energy         float64
	NuclearCharges []int
	Coords         [][3]float64
	Forces         [][3]float64
}

// Len returns the number of atoms in the record, i.e. the number of nuclear charges.
func (R TimestepRecord) Len() int {
	return len(R.NuclearCharges)
}

// Clone returns a deep copy of R.
func (R TimestepRecord) Clone() TimestepRecord {
	R.NuclearCharges = slices.Clone(R.NuclearCharges)
	R.Coords = slices.Clone(R.Coords)
	R.Forces = slices.Clone(R.Forces)
	return R
}

// Aligned returns true if the record has one coordinate and one force
// vector per nuclear charge.
func (R TimestepRecord) Aligned() bool {
	return len(R.Coords) == len(R.NuclearCharges) && len(R.Forces) == len(R.NuclearCharges)
}

// Validate returns an error describing any length mismatch between the
// per-atom arrays of R, or nil if they all have the same length.
func (R TimestepRecord) Validate() error {
	if R.Aligned() {
		return nil
	}
	return MisalignedError{
		Timestep: R.Timestep,
		Charges:  len(R.NuclearCharges),
		Coords:   len(R.Coords),
		Forces:   len(R.Forces),
	}
}

// WithoutElements returns a copy of R where all the atoms with one of the given
// nuclear charges have been removed. It fails on records that are not aligned,
// since the atom each vector belongs to can't be told in that case.
func (R TimestepRecord) WithoutElements(z ...int) (TimestepRecord, error) {
	if err := R.Validate(); err != nil {
		return R, err
	}
	ret := TimestepRecord{
		Timestep:       R.Timestep,
		Energy:         R.Energy,
		NuclearCharges: make([]int, 0, len(R.NuclearCharges)),
		Coords:         make([][3]float64, 0, len(R.Coords)),
		Forces:         make([][3]float64, 0, len(R.Forces)),
	}
	for i, q := range R.NuclearCharges {
		if slices.Contains(z, q) {
			continue
		}
		ret.NuclearCharges = append(ret.NuclearCharges, q)
		ret.Coords = append(ret.Coords, R.Coords[i])
		ret.Forces = append(ret.Forces, R.Forces[i])
	}
	return ret, nil
}

// Symbols returns the element symbols for the atoms in R.
func (R TimestepRecord) Symbols() []string {
	ret := make([]string, len(R.NuclearCharges))
	for i, z := range R.NuclearCharges {
		ret[i] = Symbol(z)
	}
	return ret
}

// CoordMatrix returns the coordinates of R as a Nx3 matrix.
func (R TimestepRecord) CoordMatrix() (*v3.Matrix, error) {
	return v3.FromVecs(R.Coords)
}

// ForceMatrix returns the forces of R as a Nx3 matrix.
func (R TimestepRecord) ForceMatrix() (*v3.Matrix, error) {
	return v3.FromVecs(R.Forces)
}

// String renders the record in a human-readable, multi-line form with
// 6 decimals for the energy and for every vector component. Values are
// printed at single precision, the precision of the MD17 tables.
func (R TimestepRecord) String() string {
	var b strings.Builder
	b.WriteString("Graph at Timestep:\n")
	b.WriteString("--------------------\n")
	fmt.Fprintf(&b, "Timestep: %d\n", R.Timestep)
	fmt.Fprintf(&b, "Energy: %.6f\n", single(R.Energy))
	b.WriteString("Nuclear Charges:\n")
	b.WriteString(intList(R.NuclearCharges))
	b.WriteString("\nCoordinates:\n")
	b.WriteString(vecLines(R.Coords))
	b.WriteString("\nForces:\n")
	b.WriteString(vecLines(R.Forces))
	b.WriteString("\n")
	return b.String()
}

// single rounds v to the nearest float32.
func single(v float64) float64 {
	return float64(float32(v))
}

func intList(l []int) string {
	s := make([]string, len(l))
	for i, v := range l {
		s[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func vecLines(vecs [][3]float64) string {
	s := make([]string, len(vecs))
	for i, v := range vecs {
		s[i] = fmt.Sprintf("  [%.6f, %.6f, %.6f]", single(v[0]), single(v[1]), single(v[2]))
	}
	return strings.Join(s, "\n")
}

// MisalignedError is returned when the per-atom arrays of a record
// don't have the same length.
type MisalignedError struct {
	Timestep int
	Charges  int
	Coords   int
	Forces   int
	deco     []string
}

func (E MisalignedError) Error() string {
	return fmt.Sprintf("timestep %d: %d nuclear charges, %d coordinates and %d forces", E.Timestep, E.Charges, E.Coords, E.Forces)
}

// Decorate adds new information to the error
func (E MisalignedError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Critical returns false. A misaligned record is still a usable record.
func (E MisalignedError) Critical() bool { return false }
