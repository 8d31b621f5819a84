/*
 * gonum.go, part of gtno.
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space, one per row.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates (or force) of one atom.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, Error{"Empty input slice", []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors, for instance to
//receive the frames of a trajectory.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//FromVecs copies the vectors in vecs into a new Matrix, one per row.
func FromVecs(vecs [][3]float64) (*Matrix, error) {
	if len(vecs) == 0 {
		return nil, Error{"No vectors given", []string{"FromVecs"}, true}
	}
	f := make([]float64, 0, cols*len(vecs))
	for _, v := range vecs {
		f = append(f, v[0], v[1], v[2])
	}
	return NewMatrix(f)
}

//Vecs returns a copy of the rows of F as 3-vectors.
func (F *Matrix) Vecs() [][3]float64 {
	n := F.NVecs()
	ret := make([][3]float64, n)
	for i := range ret {
		r := F.RawRowView(i)
		ret[i] = [3]float64{r[0], r[1], r[2]}
	}
	return ret
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(not3xXMatrix)
	}
	return r
}

//VecView returns a view of the ith vector of F. Changes in
//the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

//Norms puts in dst, and returns, the euclidean norm of each vector of F.
//A new slice is allocated if dst is nil or too short.
func (F *Matrix) Norms(dst []float64) []float64 {
	n := F.NVecs()
	if len(dst) < n {
		dst = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		dst[i] = mat.Norm(F.VecView(i), 2)
	}
	return dst[:n]
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf("%6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	return "\n[" + strings.Join(v, "\n ") + " ]"
}

//Error is the error type for the v3 package. It satisfies gtno.Error,
//without importing it, to avoid circular imports.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const not3xXMatrix = PanicMsg("gtno/v3: A v3.Matrix should have 3 columns")
