/*
 * xyz.go, part of gtno.
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

//Package xyz reads and writes frames in the extended XYZ format, with the species,
//positions and forces of each atom, and the energy and timestep in the comment line.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/luke-a-thompson/gtno"
)

const properties = "Properties=species:S:1:pos:R:3:forces:R:3"

//WriteFrame writes r to w as one extended XYZ frame. The record must have one
//coordinate and one force per atom.
func WriteFrame(w io.Writer, r gtno.TimestepRecord) error {
	if err := r.Validate(); err != nil {
		return Error{err.Error(), "", []string{"WriteFrame"}, false}
	}
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%d\n", r.Len())
	fmt.Fprintf(b, "%s energy=%.8f timestep=%d pbc=\"F F F\"\n", properties, r.Energy, r.Timestep)
	for i, z := range r.NuclearCharges {
		c := r.Coords[i]
		f := r.Forces[i]
		fmt.Fprintf(b, "%-2s %14.8f %14.8f %14.8f %14.8f %14.8f %14.8f\n", gtno.Symbol(z), c[0], c[1], c[2], f[0], f[1], f[2])
	}
	if err := b.Flush(); err != nil {
		return Error{err.Error(), "", []string{"WriteFrame"}, true}
	}
	return nil
}

//WriteDataset writes every frame of D to the file name, which is created or
//overwritten. Frames that are not aligned are skipped and counted.
func WriteDataset(name string, D gtno.Dataset) (written, skipped int, err error) {
	out, err := os.Create(name)
	if err != nil {
		return 0, 0, Error{err.Error(), name, []string{"WriteDataset"}, true}
	}
	written, skipped, err = writeAll(out, D)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return written, skipped, Error{err.Error(), name, []string{"WriteDataset"}, true}
	}
	return written, skipped, nil
}

func writeAll(out io.Writer, D gtno.Dataset) (written, skipped int, err error) {
	w := bufio.NewWriter(out)
	for i := 0; i < D.Len(); i++ {
		r, _ := D.Get(i)
		if !r.Aligned() {
			skipped++
			continue
		}
		if err := WriteFrame(w, r); err != nil {
			return written, skipped, err
		}
		written++
	}
	return written, skipped, w.Flush()
}

//Read reads all the frames in an extended XYZ stream written by WriteFrame.
//Symbols that are not known elements get a nuclear charge of 0.
func Read(in io.Reader) ([]gtno.TimestepRecord, error) {
	xyz := bufio.NewReader(in)
	var ret []gtno.TimestepRecord
	for frame := 0; ; frame++ {
		line, err := xyz.ReadString('\n')
		if err == io.EOF && strings.TrimSpace(line) == "" {
			return ret, nil
		}
		if err != nil && err != io.EOF {
			return nil, Error{err.Error(), "", []string{"Read"}, true}
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || natoms < 0 {
			return nil, Error{fmt.Sprintf("Ill formatted atom number in frame %d", frame), "", []string{"Read"}, true}
		}
		comment, err := xyz.ReadString('\n')
		if err != nil {
			return nil, Error{fmt.Sprintf("Missing comment line in frame %d", frame), "", []string{"Read"}, true}
		}
		//The atom number is not trusted for allocation, the lines read are.
		var r gtno.TimestepRecord
		if err := parseComment(comment, &r); err != nil {
			return nil, Error{fmt.Sprintf("frame %d: %s", frame, err), "", []string{"Read"}, true}
		}
		for i := 0; i < natoms; i++ {
			line, err = xyz.ReadString('\n')
			if err != nil && !(err == io.EOF && line != "") {
				return nil, Error{fmt.Sprintf("frame %d: expected %d atoms, got %d", frame, natoms, i), "", []string{"Read"}, true}
			}
			fields := strings.Fields(line)
			if len(fields) < 7 {
				return nil, Error{fmt.Sprintf("Line %d of frame %d ill formed", i, frame), "", []string{"Read"}, true}
			}
			z, _ := gtno.AtomicNumber(fields[0])
			var c, f [3]float64
			for j := 0; j < 3; j++ {
				c[j], err = strconv.ParseFloat(fields[j+1], 64)
				if err == nil {
					f[j], err = strconv.ParseFloat(fields[j+4], 64)
				}
				if err != nil {
					return nil, Error{fmt.Sprintf("Line %d of frame %d: %s", i, frame, err), "", []string{"Read"}, true}
				}
			}
			r.NuclearCharges = append(r.NuclearCharges, z)
			r.Coords = append(r.Coords, c)
			r.Forces = append(r.Forces, f)
		}
		ret = append(ret, r)
	}
}

func parseComment(comment string, r *gtno.TimestepRecord) error {
	var err error
	for _, kv := range strings.Fields(comment) {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch k {
		case "energy":
			r.Energy, err = strconv.ParseFloat(v, 64)
		case "timestep":
			r.Timestep, err = strconv.Atoi(v)
		}
		if err != nil {
			return fmt.Errorf("bad %s in comment line: %w", k, err)
		}
	}
	return nil
}

//Error is the error type for XYZ files. It fulfills gtno.FileError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return "xyz error: " + err.message
	}
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Format() string { return "xyz" }

func (err Error) Critical() bool { return err.critical }
