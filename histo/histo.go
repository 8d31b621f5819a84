/*
 * histo.go, part of gtno.
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

//Package histo builds histograms of per-frame quantities of a dataset,
//such as the energy.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/luke-a-thompson/gtno"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i holds the values v with dividers[i] <= v < dividers[i+1].
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("gtno/histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//String prints a -hopefully- pretty string representation of
//the histogram, one bin per line.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	lines := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		lines = append(lines, fmt.Sprintf("%12.4f - %12.4f %9.3f", D.dividers[i], D.dividers[i+1], v))
	}
	return ret + strings.Join(lines, "\n")
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//It panics if there are less than 2 dividers.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("gtno/histo.NewData: at least 2 dividers are needed")
	}
	d := new(Data)
	d.dividers = slices.Clone(dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	return d
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		for j, w := range D.dividers {
			//Values that are larger than the last divider are just omitted.
			if j == len(D.dividers)-1 {
				break
			}
			if w <= v && v < D.dividers[j+1] {
				D.histo[j]++
				break
			}
		}
	}
	D.total += len(point)
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Total returns the number of points given to the histogram, including
//those that fell outside the dividers.
func (D *Data) Total() int {
	return D.total
}

//Dividers returns a copy of the dividers of the histogram
func (D *Data) Dividers() []float64 {
	return slices.Clone(D.dividers)
}

//View returns the bins of the histogram. Changes to the slice
//change the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto discards the contents of the histogram, and fills it again with rawdata,
//using the given dividers. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	D.dividers = slices.Clone(dividers)
	D.normalized = false
	D.total = len(rawdata)
	rawdata = slices.Clone(rawdata)
	sort.Float64s(rawdata)
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(rawdata, dividers[len(dividers)-1])
	rawdata = rawdata[:maxi]
	mini := sort.SearchFloat64s(rawdata, dividers[0])
	rawdata = rawdata[mini:]
	D.histo = stat.Histogram(nil, dividers, rawdata, nil)
}

//Dividers returns n+1 evenly spaced dividers for n bins covering all of data.
//The last divider is nudged up so that the largest value falls in the last bin.
func Dividers(data []float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	lo, hi := floats.Min(data), floats.Max(data)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	d := floats.Span(make([]float64, n+1), lo, hi)
	d[n] = math.Nextafter(hi, math.Inf(1))
	return d
}

//Energies returns a histogram of the energies in D, with n bins.
//It returns nil if D is empty.
func Energies(D gtno.Dataset, n int) *Data {
	if D.Len() == 0 {
		return nil
	}
	e := make([]float64, D.Len())
	for i := range e {
		r, _ := D.Get(i)
		e[i] = r.Energy
	}
	return NewData(Dividers(e, n), e)
}
