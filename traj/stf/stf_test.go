/*
 * stf_test.go, part of gtno.
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

package stf

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/luke-a-thompson/gtno"
	v3 "github.com/luke-a-thompson/gtno/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frames []gtno.TimestepRecord

func (f frames) Len() int { return len(f) }

func (f frames) Get(i int) (gtno.TimestepRecord, bool) {
	if i < 0 || i >= len(f) {
		return gtno.TimestepRecord{}, false
	}
	return f[i], true
}

func testFrames() frames {
	return frames{
		{Timestep: 0, Energy: -1, NuclearCharges: []int{6, 8}, Coords: [][3]float64{{0.1, 0.2, 0.3}, {1.111, -2.5, 3}}, Forces: [][3]float64{{0, 0, 0}, {0, 0, 0}}},
		{Timestep: 1, Energy: -2, NuclearCharges: []int{6, 8}, Coords: [][3]float64{{0.2}}, Forces: [][3]float64{{0, 0, 0}, {0, 0, 0}}},
		{Timestep: 2, Energy: -3, NuclearCharges: []int{6, 8}, Coords: [][3]float64{{-0.1, 0, 0}, {4, 5, 6}}, Forces: [][3]float64{{0, 0, 0}, {0, 0, 0}}},
	}
}

func readAll(Te *testing.T, name string) ([]*v3.Matrix, map[string]string) {
	r, header, err := New(name)
	require.NoError(Te, err)
	defer r.Close()
	var ret []*v3.Matrix
	for {
		m := v3.Zeros(r.Len())
		err := r.Next(m)
		if err != nil {
			var last gtno.LastFrameError
			require.True(Te, errors.As(err, &last), err.Error())
			break
		}
		ret = append(ret, m)
	}
	return ret, header
}

func TestWriteDataset(Te *testing.T) {
	for _, name := range []string{"out.stf", "out.stz", "out.str", "out.stl"} {
		path := filepath.Join(Te.TempDir(), name)
		written, skipped, err := WriteDataset(path, testFrames(), 3)
		require.NoError(Te, err, name)
		assert.Equal(Te, 2, written, name)
		assert.Equal(Te, 1, skipped, name)

		mats, header := readAll(Te, path)
		require.Len(Te, mats, 2, name)
		assert.Equal(Te, "3", header["prec"], name)
		z, err := Charges(header)
		require.NoError(Te, err)
		assert.Equal(Te, []int{6, 8}, z, name)
		assert.InDelta(Te, 1.111, mats[0].At(1, 0), 1e-9, name)
		assert.InDelta(Te, -2.5, mats[0].At(1, 1), 1e-9, name)
		assert.InDelta(Te, -0.1, mats[1].At(0, 0), 1e-9, name)
		assert.InDelta(Te, 6, mats[1].At(1, 2), 1e-9, name)
	}
}

func TestDefaultPrecisionRounds(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "prec.stf")
	f := frames{{NuclearCharges: []int{1}, Coords: [][3]float64{{1.23456, 0, 0}}}}
	_, _, err := WriteDataset(path, f, 0)
	require.NoError(Te, err)
	mats, header := readAll(Te, path)
	assert.Equal(Te, "2", header["prec"])
	require.Len(Te, mats, 1)
	assert.InDelta(Te, 1.23, mats[0].At(0, 0), 1e-9)
}

func TestWriteDatasetNothingToWrite(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "none.stf")
	f := frames{{NuclearCharges: []int{1, 1}, Coords: [][3]float64{{1, 0, 0}}}}
	_, skipped, err := WriteDataset(path, f, 2)
	assert.Error(Te, err)
	assert.Equal(Te, 1, skipped)
}

func TestBox(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "box.stf")
	w, err := NewWriter(path, 1, nil)
	require.NoError(Te, err)
	c, err := v3.FromVecs([][3]float64{{1, 2, 3}})
	require.NoError(Te, err)
	require.NoError(Te, w.WNext(c, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10}))
	require.NoError(Te, w.WNext(c))
	assert.Error(Te, w.WNext(v3.Zeros(2)))
	require.NoError(Te, w.Close())
	assert.Error(Te, w.WNext(c))

	r, _, err := New(path)
	require.NoError(Te, err)
	defer r.Close()
	box := make([]float64, 9)
	require.NoError(Te, r.Next(nil, box))
	assert.Equal(Te, 10.0, box[4])
	m := v3.Zeros(1)
	require.NoError(Te, r.Next(m))
	assert.InDelta(Te, 2, m.At(0, 1), 1e-9)
	err = r.Next(m)
	var last gtno.LastFrameError
	assert.True(Te, errors.As(err, &last))
	assert.False(Te, r.Readable())
}

func TestOpenMissing(Te *testing.T) {
	_, _, err := New(filepath.Join(Te.TempDir(), "missing.stf"))
	require.Error(Te, err)
	var ferr gtno.FileError
	require.True(Te, errors.As(err, &ferr))
	assert.Equal(Te, "stf", ferr.Format())
	assert.True(Te, ferr.Critical())
}

func TestCharges(Te *testing.T) {
	z, err := Charges(map[string]string{"charges": "6,1,1"})
	require.NoError(Te, err)
	assert.Equal(Te, []int{6, 1, 1}, z)
	z, err = Charges(map[string]string{})
	assert.NoError(Te, err)
	assert.Nil(Te, z)
	_, err = Charges(map[string]string{"charges": "6,C"})
	assert.Error(Te, err)
}

//writeRaw gzips content into a new .stz file and returns its path.
func writeRaw(Te *testing.T, content string) string {
	path := filepath.Join(Te.TempDir(), "raw.stz")
	f, err := os.Create(path)
	require.NoError(Te, err)
	z := gzip.NewWriter(f)
	_, err = io.WriteString(z, content)
	require.NoError(Te, err)
	require.NoError(Te, z.Close())
	require.NoError(Te, f.Close())
	return path
}

func TestInvalidPrecision(Te *testing.T) {
	for _, p := range []string{"0", "-3", "two"} {
		path := filepath.Join(Te.TempDir(), "bad.stf")
		_, err := NewWriter(path, 1, map[string]string{"prec": p})
		require.Error(Te, err, p)
		assert.ErrorContains(Te, err, InvalidPrec, p)
		assert.NoFileExists(Te, path, p)
	}
	_, _, err := New(writeRaw(Te, "prec=0\n** 1\n1 2 3\n*\n"))
	assert.ErrorContains(Te, err, InvalidPrec)
}

func TestBadBoxIsLogged(Te *testing.T) {
	path := writeRaw(Te, "prec=2\n** 1\n100 200 300\n* 1 2 3 4 x 6 7 8 9\n")
	r, _, err := New(path)
	require.NoError(Te, err)
	defer r.Close()
	var logs bytes.Buffer
	r.Logger = slog.New(slog.NewTextHandler(&logs, nil))
	box := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}
	m := v3.Zeros(1)
	require.NoError(Te, r.Next(m, box))
	assert.InDelta(Te, 2, m.At(0, 1), 1e-9)
	assert.Equal(Te, make([]float64, 9), box)
	assert.Contains(Te, logs.String(), "failed to read box")
}

func TestReadDataset(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "back.stz")
	_, _, err := WriteDataset(path, testFrames(), 3)
	require.NoError(Te, err)
	recs, err := ReadDataset(path)
	require.NoError(Te, err)
	require.Len(Te, recs, 2)
	assert.Equal(Te, []int{6, 8}, recs[1].NuclearCharges)
	assert.Equal(Te, 1, recs[1].Timestep)
	assert.InDelta(Te, -0.1, recs[1].Coords[0][0], 1e-9)
	assert.InDelta(Te, 1.111, recs[0].Coords[1][0], 1e-9)
	assert.Empty(Te, recs[0].Forces)

	_, err = ReadDataset(writeRaw(Te, "charges=6,1\n** 1\n1 2 3\n*\n"))
	assert.Error(Te, err)
	_, err = ReadDataset(filepath.Join(Te.TempDir(), "missing.stf"))
	assert.Error(Te, err)
}
