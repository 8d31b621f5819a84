/*
 * record_test.go, part of gtno.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordString(Te *testing.T) {
	r := TimestepRecord{
		Timestep:       4,
		Energy:         -1.234560,
		NuclearCharges: []int{6, 6, 1},
		Coords:         [][3]float64{{0.1, 0.2, 0.3}},
		Forces:         [][3]float64{{0.0, 0.0, 0.0}},
	}
	expected := "Graph at Timestep:\n" +
		"--------------------\n" +
		"Timestep: 4\n" +
		"Energy: -1.234560\n" +
		"Nuclear Charges:\n" +
		"[6, 6, 1]\n" +
		"Coordinates:\n" +
		"  [0.100000, 0.200000, 0.300000]\n" +
		"Forces:\n" +
		"  [0.000000, 0.000000, 0.000000]\n"
	assert.Equal(Te, expected, r.String())
}

func TestRecordStringSeveralVectors(Te *testing.T) {
	r := TimestepRecord{
		Timestep:       0,
		Energy:         2,
		NuclearCharges: []int{8, 1},
		Coords:         [][3]float64{{1, 2, 3}, {-4.5, 5.25, 6}},
		Forces:         [][3]float64{{0.5, 0, 0}, {0, -0.5, 0}},
	}
	expected := "Graph at Timestep:\n" +
		"--------------------\n" +
		"Timestep: 0\n" +
		"Energy: 2.000000\n" +
		"Nuclear Charges:\n" +
		"[8, 1]\n" +
		"Coordinates:\n" +
		"  [1.000000, 2.000000, 3.000000]\n" +
		"  [-4.500000, 5.250000, 6.000000]\n" +
		"Forces:\n" +
		"  [0.500000, 0.000000, 0.000000]\n" +
		"  [0.000000, -0.500000, 0.000000]\n"
	assert.Equal(Te, expected, r.String())
}

func TestRecordStringSinglePrecision(Te *testing.T) {
	r := TimestepRecord{
		Timestep:       9,
		Energy:         -406757.59,
		NuclearCharges: []int{6},
		Coords:         [][3]float64{{123456.7, 0, 0}},
		Forces:         [][3]float64{{0, 0, 0}},
	}
	s := r.String()
	assert.Contains(Te, s, "Energy: -406757.593750\n")
	assert.Contains(Te, s, "  [123456.703125, 0.000000, 0.000000]\n")
	assert.Equal(Te, -406757.59, r.Energy)
}

func TestValidate(Te *testing.T) {
	r := TimestepRecord{
		Timestep:       3,
		NuclearCharges: []int{6, 1},
		Coords:         [][3]float64{{1, 2, 3}},
		Forces:         [][3]float64{{1, 2, 3}, {4, 5, 6}},
	}
	err := r.Validate()
	require.Error(Te, err)
	var mis MisalignedError
	require.True(Te, errors.As(err, &mis))
	assert.Equal(Te, 2, mis.Charges)
	assert.Equal(Te, 1, mis.Coords)
	assert.Equal(Te, 2, mis.Forces)
	assert.False(Te, mis.Critical())

	r.Coords = append(r.Coords, [3]float64{0, 0, 0})
	assert.NoError(Te, r.Validate())
}

func TestWithoutElements(Te *testing.T) {
	r := TimestepRecord{
		Timestep:       1,
		Energy:         -3,
		NuclearCharges: []int{6, 1, 8, 1},
		Coords:         [][3]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}},
		Forces:         [][3]float64{{0, 0, 1}, {1, 1, 2}, {2, 2, 3}, {3, 3, 4}},
	}
	heavy, err := r.WithoutElements(Hydrogen)
	require.NoError(Te, err)
	assert.Equal(Te, []int{6, 8}, heavy.NuclearCharges)
	assert.Equal(Te, [][3]float64{{0, 0, 0}, {2, 2, 2}}, heavy.Coords)
	assert.Equal(Te, [][3]float64{{0, 0, 1}, {2, 2, 3}}, heavy.Forces)
	assert.Equal(Te, r.Energy, heavy.Energy)
	assert.Len(Te, r.NuclearCharges, 4, "the original record must not change")

	r.Forces = r.Forces[:3]
	_, err = r.WithoutElements(Hydrogen)
	assert.Error(Te, err)
}

func TestClone(Te *testing.T) {
	r := TimestepRecord{NuclearCharges: []int{6}, Coords: [][3]float64{{1, 2, 3}}, Forces: [][3]float64{{4, 5, 6}}}
	c := r.Clone()
	c.NuclearCharges[0] = 1
	c.Coords[0][0] = 9
	c.Forces[0][0] = 9
	assert.Equal(Te, 6, r.NuclearCharges[0])
	assert.Equal(Te, 1.0, r.Coords[0][0])
	assert.Equal(Te, 4.0, r.Forces[0][0])
}

func TestMatrices(Te *testing.T) {
	r := TimestepRecord{NuclearCharges: []int{6, 8}, Coords: [][3]float64{{1, 2, 3}, {4, 5, 6}}, Forces: [][3]float64{{3, 4, 0}, {0, 0, 1}}}
	c, err := r.CoordMatrix()
	require.NoError(Te, err)
	assert.Equal(Te, 5.0, c.At(1, 1))
	f, err := r.ForceMatrix()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{5, 1}, f.Norms(nil), 1e-12)
	assert.Equal(Te, []string{"C", "O"}, r.Symbols())
}

func TestElements(Te *testing.T) {
	assert.Equal(Te, "H", Symbol(1))
	assert.Equal(Te, "C", Symbol(6))
	assert.Equal(Te, "X", Symbol(0))
	assert.Equal(Te, "X", Symbol(500))
	z, ok := AtomicNumber("O")
	assert.True(Te, ok)
	assert.Equal(Te, 8, z)
	_, ok = AtomicNumber("Qq")
	assert.False(Te, ok)
	m, ok := Mass(6)
	assert.True(Te, ok)
	assert.InDelta(Te, 12.01, m, 1e-9)
	_, ok = Mass(2)
	assert.False(Te, ok)
}
