/*
 * chemstat.go, part of gtno.
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

//Package chemstat computes summaries and time correlation functions
//over the frames of a dataset.
package chemstat

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/luke-a-thompson/gtno"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//ErrConstant is returned when a correlation is requested for a series
//with no variance.
var ErrConstant = errors.New("gtno/chemstat: series has zero variance")

//Summary holds descriptive statistics of a dataset.
type Summary struct {
	Frames      int
	Atoms       int //atoms in the first frame
	Misaligned  int
	EnergyMean  float64
	EnergyStd   float64
	EnergyMin   float64
	EnergyMax   float64
	ForceMean   float64 //mean norm of the force vectors, over all atoms and frames
	ForceMax    float64
	ForceVector int //number of force vectors considered
}

func (S Summary) String() string {
	return fmt.Sprintf("Frames: %d (%d misaligned)\nAtoms: %d\nEnergy: mean %.6f std %.6f min %.6f max %.6f\nForce norm: mean %.6f max %.6f over %d vectors",
		S.Frames, S.Misaligned, S.Atoms, S.EnergyMean, S.EnergyStd, S.EnergyMin, S.EnergyMax, S.ForceMean, S.ForceMax, S.ForceVector)
}

//Summarize computes a Summary for D. It returns an error if D is empty.
func Summarize(D gtno.Dataset) (Summary, error) {
	var S Summary
	S.Frames = D.Len()
	if S.Frames == 0 {
		return S, errors.New("gtno/chemstat: empty dataset")
	}
	energies := make([]float64, 0, S.Frames)
	var norms []float64
	for i := 0; i < S.Frames; i++ {
		r, _ := D.Get(i)
		if i == 0 {
			S.Atoms = r.Len()
		}
		if !r.Aligned() {
			S.Misaligned++
		}
		energies = append(energies, r.Energy)
		norms = forceNorms(r, norms)
	}
	S.EnergyMean, S.EnergyStd = stat.PopMeanStdDev(energies, nil)
	S.EnergyMin = floats.Min(energies)
	S.EnergyMax = floats.Max(energies)
	S.ForceVector = len(norms)
	if len(norms) > 0 {
		S.ForceMean = stat.Mean(norms, nil)
		S.ForceMax = floats.Max(norms)
	}
	return S, nil
}

func forceNorms(r gtno.TimestepRecord, dst []float64) []float64 {
	if len(r.Forces) == 0 {
		return dst
	}
	f, err := r.ForceMatrix()
	if err != nil {
		return dst
	}
	return append(dst, f.Norms(nil)...)
}

//Energy returns the energy of the frame.
func Energy(r gtno.TimestepRecord) float64 {
	return r.Energy
}

//MeanForce returns the mean norm of the force vectors of the frame,
//or 0 if it has none.
func MeanForce(r gtno.TimestepRecord) float64 {
	n := forceNorms(r, nil)
	if len(n) == 0 {
		return 0
	}
	return stat.Mean(n, nil)
}

//RMSDFunc returns a function that gives the root mean square deviation of
//the coordinates of a frame from those of ref, without any superposition.
//Frames with a different number of coordinates than ref give NaN.
func RMSDFunc(ref gtno.TimestepRecord) func(r gtno.TimestepRecord) float64 {
	refc := flatten(ref.Coords)
	return func(r gtno.TimestepRecord) float64 {
		if len(r.Coords) != len(ref.Coords) || len(refc) == 0 {
			return math.NaN()
		}
		d := floats.Distance(flatten(r.Coords), refc, 2)
		return d / math.Sqrt(float64(len(ref.Coords)))
	}
}

func flatten(v [][3]float64) []float64 {
	ret := make([]float64, 0, 3*len(v))
	for _, w := range v {
		ret = append(ret, w[:]...)
	}
	return ret
}

//Series applies f to every frame of D, in order.
func Series(D gtno.Dataset, f func(r gtno.TimestepRecord) float64) []float64 {
	ret := make([]float64, D.Len())
	for i := range ret {
		r, _ := D.Get(i)
		ret[i] = f(r)
	}
	return ret
}

//MDCorrelation returns the cross-correlation of the series produced by f1 on D1
//and f2 on D2, for lags 0 to len-1. If both datasets and functions are the same,
//this is the autocorrelation function.
func MDCorrelation(D1, D2 gtno.Dataset, f1, f2 func(r gtno.TimestepRecord) float64) ([]float64, error) {
	return CrossCorrelation(Series(D1, f1), Series(D2, f2))
}

//Autocorrelation returns the normalized autocorrelation of c for lags 0 to len(c)-1.
//The value at lag 0 is 1.
func Autocorrelation(c []float64) ([]float64, error) {
	return CrossCorrelation(c, c)
}

//CrossCorrelation returns the normalized cross-correlation of c1 and c2,
//which must have the same length, for lags 0 to len(c1)-1.
//The transform is done on zero-padded copies so the correlation is not circular.
func CrossCorrelation(c1, c2 []float64) ([]float64, error) {
	if len(c1) != len(c2) {
		return nil, fmt.Errorf("gtno/chemstat: series of different lengths %d and %d", len(c1), len(c2))
	}
	if len(c1) == 0 {
		return nil, errors.New("gtno/chemstat: empty series")
	}
	c1mean, c1std := stat.PopMeanStdDev(c1, nil)
	c2mean, c2std := stat.PopMeanStdDev(c2, nil)
	if c1std == 0 || c2std == 0 {
		return nil, ErrConstant
	}
	c1pad := make([]complex128, 2*len(c1))
	c2pad := make([]complex128, 2*len(c2))
	for i, v := range c1 {
		c1pad[i] = complex(v-c1mean, 0)
		c2pad[i] = complex(c2[i]-c2mean, 0)
	}
	f := fourier.NewCmplxFFT(len(c1pad))
	f.Coefficients(c1pad, c1pad)
	f.Coefficients(c2pad, c2pad)
	for i, v := range c2pad {
		c1pad[i] *= cmplx.Conj(v)
	}
	f.Sequence(c1pad, c1pad)
	//Sequence does not normalize.
	scale := 1 / (float64(len(c1pad)) * c1std * c2std * float64(len(c1)))
	ret := make([]float64, len(c1))
	for i := range ret {
		ret[i] = real(c1pad[i]) * scale
	}
	return ret, nil
}
