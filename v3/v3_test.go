/*
 * v3_test.go, part of gtno.
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

package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, 6.0, A.At(1, 2))

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	assert.Error(Te, err)
	_, err = NewMatrix(nil)
	assert.Error(Te, err)
}

func TestVecsRoundTrip(Te *testing.T) {
	in := [][3]float64{{0.1, 0.2, 0.3}, {-1, 0, 2.5}}
	A, err := FromVecs(in)
	require.NoError(Te, err)
	assert.Equal(Te, in, A.Vecs())

	//Vecs is a copy.
	out := A.Vecs()
	out[0][0] = 100
	assert.Equal(Te, 0.1, A.At(0, 0))

	_, err = FromVecs(nil)
	assert.Error(Te, err)
}

func TestVecView(Te *testing.T) {
	A := Zeros(3)
	view := A.VecView(1)
	view.Set(0, 2, 7)
	assert.Equal(Te, 7.0, A.At(1, 2))
	assert.Equal(Te, 1, view.NVecs())
}

func TestNorms(Te *testing.T) {
	A, err := FromVecs([][3]float64{{3, 4, 0}, {0, 0, 0}, {1, 2, 2}})
	require.NoError(Te, err)
	n := A.Norms(nil)
	assert.InDeltaSlice(Te, []float64{5, 0, 3}, n, 1e-12)

	buf := make([]float64, 10)
	n = A.Norms(buf)
	assert.Len(Te, n, 3)
}

func TestNot3ColumnsPanics(Te *testing.T) {
	A := &Matrix{mat.NewDense(2, 2, nil)}
	assert.PanicsWithValue(Te, not3xXMatrix, func() { A.NVecs() })
	assert.NotPanics(Te, func() { Zeros(2).NVecs() })
}
