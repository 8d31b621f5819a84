/*
 * vector_test.go, part of gtno.
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
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(Te *testing.T) {
	cases := []struct {
		cell string
		want [3]float64
	}{
		{"[1.0, 2.0, 3.0]", [3]float64{1, 2, 3}},
		{"[-0.5,1e-3 ,  7]", [3]float64{-0.5, 0.001, 7}},
		{"1,2,3", [3]float64{1, 2, 3}},
		{"[[4, 5, 6]]", [3]float64{4, 5, 6}},
	}
	for _, c := range cases {
		v, err := ParseVector(c.cell)
		require.NoError(Te, err, c.cell)
		assert.Equal(Te, c.want, v, c.cell)
	}
}

func TestParseVectorWrongCount(Te *testing.T) {
	for _, cell := range []string{"[1.0, 2.0]", "[1.0, 2.0, 3.0, 4.0]", "[7]"} {
		_, err := ParseVector(cell)
		require.Error(Te, err, cell)
		assert.True(Te, errors.Is(err, ErrComponentCount), cell)
		assert.False(Te, errors.Is(err, ErrComponentParse), cell)
		assert.Contains(Te, err.Error(), cell)
	}
}

func TestParseVectorNotANumber(Te *testing.T) {
	for _, cell := range []string{"[a, 2.0, 3.0]", "[1.0, , 3.0]", "[]", ""} {
		_, err := ParseVector(cell)
		require.Error(Te, err, cell)
		assert.True(Te, errors.Is(err, ErrComponentParse), cell)
		assert.True(Te, errors.Is(err, strconv.ErrSyntax), cell)
		var verr *VectorError
		require.True(Te, errors.As(err, &verr))
		assert.Equal(Te, cell, verr.Raw)
	}
}

func TestParseVectorIsPure(Te *testing.T) {
	for _, cell := range []string{"[1.0, 2.0, 3.0]", "[1.0, 2.0]", "[a, 2.0, 3.0]"} {
		v1, err1 := ParseVector(cell)
		v2, err2 := ParseVector(cell)
		assert.Equal(Te, v1, v2)
		assert.Equal(Te, err1, err2)
	}
}

func TestDecodeVectorCell(Te *testing.T) {
	row := []string{"0", "1.5", "[1, 2, 3]", "[1, 2]"}
	c := DecodeVectorCell(row, 2)
	assert.True(Te, c.OK())
	assert.Equal(Te, 2, c.Column)
	assert.Equal(Te, [3]float64{1, 2, 3}, c.Vec)

	c = DecodeVectorCell(row, 3)
	assert.False(Te, c.OK())
	assert.ErrorIs(Te, c.Err, ErrComponentCount)

	c = DecodeVectorCell(row, 9)
	assert.False(Te, c.OK())
	assert.ErrorIs(Te, c.Err, ErrMissingCell)
}
