/*
 * dataset.go, part of gtno.
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
	"errors"
	"strconv"
	"strings"

	"github.com/luke-a-thompson/gtno"
	v3 "github.com/luke-a-thompson/gtno/v3"
)

//WriteDataset writes the coordinates of every frame in D to a new STF file, name,
//with prec decimals (the default if prec < 1). The nuclear charges of the first frame go to the "charges"
//header key. Frames without one coordinate per charge, or with a different
//number of atoms than the first frame, are skipped; the number of frames written
//and the number skipped are returned.
func WriteDataset(name string, D gtno.Dataset, prec int) (written, skipped int, err error) {
	if prec < 1 {
		prec = defaultPrec
	}
	natoms := -1
	var charges []string
	for i := 0; i < D.Len(); i++ {
		r, _ := D.Get(i)
		if len(r.Coords) == r.Len() && r.Len() > 0 {
			natoms = r.Len()
			for _, z := range r.NuclearCharges {
				charges = append(charges, strconv.Itoa(z))
			}
			break
		}
	}
	if natoms < 0 {
		return 0, D.Len(), Error{"No frame with a full set of coordinates", name, []string{"WriteDataset"}, true}
	}
	header := map[string]string{
		"prec":    strconv.Itoa(prec),
		"charges": strings.Join(charges, ","),
	}
	w, err := NewWriter(name, natoms, header)
	if err != nil {
		return 0, 0, errDecorate(err, "WriteDataset")
	}
	for i := 0; i < D.Len(); i++ {
		r, _ := D.Get(i)
		if r.Len() != natoms || len(r.Coords) != natoms {
			skipped++
			continue
		}
		coords, err := r.CoordMatrix()
		if err != nil {
			w.Close()
			return written, skipped, Error{err.Error(), name, []string{"WriteDataset"}, true}
		}
		if err := w.WNext(coords); err != nil {
			w.Close()
			return written, skipped, errDecorate(err, "WriteDataset")
		}
		written++
	}
	if err := w.Close(); err != nil {
		return written, skipped, errDecorate(err, "WriteDataset")
	}
	return written, skipped, nil
}

//Charges parses the "charges" header key written by WriteDataset.
func Charges(header map[string]string) ([]int, error) {
	s, ok := header["charges"]
	if !ok || s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	ret := make([]int, len(fields))
	for i, f := range fields {
		z, err := strconv.Atoi(f)
		if err != nil {
			return nil, Error{"Malformed charges in header: " + s, "", []string{"Charges"}, true}
		}
		ret[i] = z
	}
	return ret, nil
}

//ReadDataset reads back a trajectory written by WriteDataset. Each frame becomes
//a record with the charges from the header, its coordinates, and its position in
//the file as timestep. Energies and forces are not stored in STF files, so the
//records have neither.
func ReadDataset(name string) ([]gtno.TimestepRecord, error) {
	r, header, err := New(name)
	if err != nil {
		return nil, errDecorate(err, "ReadDataset")
	}
	defer r.Close()
	charges, err := Charges(header)
	if err != nil {
		return nil, errDecorate(err, "ReadDataset")
	}
	if charges != nil && len(charges) != r.Len() {
		return nil, Error{"Number of charges in header doesn't match the atoms per frame", name, []string{"ReadDataset"}, true}
	}
	var ret []gtno.TimestepRecord
	coords := v3.Zeros(r.Len())
	for frame := 0; ; frame++ {
		err := r.Next(coords)
		var last gtno.LastFrameError
		if errors.As(err, &last) {
			return ret, nil
		}
		if err != nil {
			return nil, errDecorate(err, "ReadDataset")
		}
		ret = append(ret, gtno.TimestepRecord{
			Timestep:       frame,
			NuclearCharges: append([]int(nil), charges...),
			Coords:         coords.Vecs(),
		})
	}
}
