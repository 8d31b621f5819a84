/*
 * errors.go, part of gtno.
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
	"fmt"
)

//Error is the general structure for trajectory table errors. It fulfills gtno.Error and gtno.FileError.
//Row is the 1-based data row (0 for the header or the file as a whole) and Column the
//0-based column involved, or -1 if none.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	Row      int
	Column   int
	cause    error
	deco     []string
	critical bool
}

func (err Error) Error() string {
	loc := ""
	switch {
	case err.Row > 0 && err.Column >= 0:
		loc = fmt.Sprintf(" (row %d, column %d)", err.Row, err.Column)
	case err.Row > 0:
		loc = fmt.Sprintf(" (row %d)", err.Row)
	}
	msg := fmt.Sprintf("trajectory table %s error%s: %s", err.filename, loc, err.message)
	if err.cause != nil {
		msg += ": " + err.cause.Error()
	}
	return msg
}

//Unwrap returns the error that caused err, if any.
func (err Error) Unwrap() error { return err.cause }

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing table was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error
func (err Error) Format() string { return "csv" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen   = "Unable to open file"
	NoHeader       = "Unable to read the header row"
	ReadError      = "Error reading row"
	BadTimestep    = "Unable to read the timestep"
	BadEnergy      = "Unable to read the energy"
	BadCharge      = "Unable to read a nuclear charge"
	MissingColumn  = "Row too short"
	MisalignedCols = "Charge, coordinate and force columns differ in number"
)

//Errors for the vector-cell decoder. A *VectorError wraps one of them.
var (
	ErrComponentCount = errors.New("vector cell does not have 3 components")
	ErrComponentParse = errors.New("vector component is not a number")
	ErrMissingCell    = errors.New("vector cell missing from row")
)

//VectorError is returned when a vector cell can't be decoded. Raw is the
//cell as found in the table.
type VectorError struct {
	Raw   string
	Err   error //ErrComponentCount, ErrComponentParse or ErrMissingCell
	Cause error //the strconv error, for ErrComponentParse
}

func (E *VectorError) Error() string {
	switch {
	case E.Cause != nil:
		return fmt.Sprintf("%s in %q: %s", E.Err, E.Raw, E.Cause)
	default:
		return fmt.Sprintf("%s: %q", E.Err, E.Raw)
	}
}

//Unwrap allows errors.Is to find both the sentinel and the strconv error.
func (E *VectorError) Unwrap() []error {
	if E.Cause == nil {
		return []error{E.Err}
	}
	return []error{E.Err, E.Cause}
}
