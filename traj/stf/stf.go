/*
 * stf.go, part of gtno.
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
	"bufio"
	"compress/lzw"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/luke-a-thompson/gtno"
	v3 "github.com/luke-a-thompson/gtno/v3"
)

const (
	lzwLitwidth int = 8
	defaultPrec int = 2
)

//Write!
type StfW struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	prec      int
}

//Close flushes the compressor and closes the file.
func (S *StfW) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	err := S.h.Close()
	if err2 := S.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return Error{err.Error(), S.filename, []string{"Close"}, true}
	}
	return nil
}

//Len returns the number of atoms per frame.
func (S *StfW) Len() int {
	return S.natoms
}

//WNext writes the coordinates in coord as a new frame. If box is given, and it has
//at least 9 elements, they are written as the box vectors for the frame.
func (S *StfW) WNext(coord *v3.Matrix, box ...[]float64) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	v := coord.NVecs()
	if v != S.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, S.natoms), S.filename, []string{"WNext"}, true}
	}
	var temp [3]int
	var floats [3]float64
	w := bufio.NewWriter(S.h)
	for i := 0; i < v; i++ {
		floats[0] = coord.At(i, 0)
		floats[1] = coord.At(i, 1)
		floats[2] = coord.At(i, 2)
		w.WriteString(coordsEncode(floats, temp, S.prec))
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		b := box[0]
		fmt.Fprintf(w, "* %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f\n", b[0],
			b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8])
	} else {
		w.WriteString("*\n")
	}
	if err := w.Flush(); err != nil {
		return Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	return nil
}

//NewWriter creates the file name and returns a handle to write natoms-atom frames to it.
//The compression is chosen from the last letter of the name: stf and stz use zstd and gzip,
//str flate and stl lzw. The pairs in header are written to the file header; the "prec"
//key, if present, sets the number of decimals kept, and must be a positive integer.
func NewWriter(name string, natoms int, header map[string]string) (*StfW, error) {
	S := new(StfW)
	var err error
	S.filename = name
	S.prec = defaultPrec
	if p, ok := header["prec"]; ok {
		S.prec, err = parsePrec(p)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
		}
	}
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	zwriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flate.BestCompression) }
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.BestCompression) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch lastLetter(name) {
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewWriter = gzipwriter
	case 'r':
		AnyNewWriter = zwriter
	default:
		AnyNewWriter = zstdwriter
	}
	S.h, err = AnyNewWriter(S.f)
	if err != nil {
		S.f.Close()
		return nil, Error{"Can't set up compression " + err.Error(), S.filename, []string{"NewWriter"}, true}
	}
	S.natoms = natoms
	S.writeable = true
	if header == nil {
		header = map[string]string{}
	}
	header["prec"] = strconv.Itoa(S.prec)
	//sorted, so the files are reproducible
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var headerstr strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&headerstr, "%s=%s\n", k, header[k])
	}
	fmt.Fprintf(&headerstr, "** %d\n", S.natoms)
	if _, err := io.WriteString(S.h, headerstr.String()); err != nil {
		S.Close()
		return nil, Error{"Can't write header " + err.Error(), S.filename, []string{"NewWriter"}, true}
	}
	return S, nil
}

func lastLetter(name string) byte {
	if name == "" {
		return 0
	}
	return strings.ToLower(name)[len(name)-1]
}

//Read!
type StfR struct {
	f        *os.File
	dec      io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	prec     int
	readable bool

	//Logger receives the frames whose box can't be read. If nil, slog.Default() is used.
	Logger *slog.Logger
}

func (S *StfR) logger() *slog.Logger {
	if S.Logger == nil {
		return slog.Default()
	}
	return S.Logger
}

//parsePrec reads the "prec" header value.
func parsePrec(p string) (int, error) {
	prec, err := strconv.Atoi(p)
	if err != nil || prec < 1 {
		return 0, fmt.Errorf("%s: %q", InvalidPrec, p)
	}
	return prec, nil
}

//stdql gives a *zstd.Decoder an io.ReadCloser-compatible Close.
type stdql struct {
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.Decoder.Close()
	return nil
}

func coordsEncode(f [3]float64, temp [3]int, prec int) string {
	p := math.Pow(10.0, float64(prec))
	for i, v := range f {
		temp[i] = int(math.RoundToEven(v * p))
	}
	return fmt.Sprintf("%d %d %d\n", temp[0], temp[1], temp[2])
}

//New opens a STF trajectory for reading, and returns a pointer
//to the handle, a map with the metadata (empty if the file has none)
//and error or nil.
func New(name string) (*StfR, map[string]string, error) {
	S := new(StfR)
	S.natoms = -1 //just so we know if things don't work
	S.prec = defaultPrec
	m := make(map[string]string)
	var err error
	S.filename = name
	S.f, err = os.Open(S.filename)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return stdql{r}, nil
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch lastLetter(name) {
	case 'l':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case 'r':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	default:
		AnyNewReader = zstdreader
	}
	S.dec, err = AnyNewReader(bufio.NewReader(S.f))
	if err != nil {
		S.f.Close()
		return nil, nil, Error{"Can't read header " + err.Error(), S.filename, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.dec)
	fail := func(msg string) (*StfR, map[string]string, error) {
		S.readable = true
		S.Close()
		return nil, nil, Error{msg, S.filename, []string{"New"}, true}
	}
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			return fail("Can't read header " + err.Error())
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return fail(fmt.Sprintf("Can't read atom number from '%s'", str))
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				return fail(fmt.Sprintf("Can't read atom number from '%s': %s", nat[1], err.Error()))
			}
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			return fail("Malformed header line: " + str)
		}
		m[k] = v
	}
	if p, ok := m["prec"]; ok {
		S.prec, err = parsePrec(p)
		if err != nil {
			return fail(err.Error())
		}
	}
	S.readable = true
	return S, m, nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (S *StfR) Readable() bool {
	return S.readable
}

func coordsDecode(str string, temp *[3]float64, prec int) error {
	p := math.Pow(10.0, float64(prec))
	s := strings.Fields(str)
	if len(s) < 3 {
		return fmt.Errorf("Ill formated coordinates line in stf: Too few fields: %s", str)
	}
	if len(s) > 3 {
		return fmt.Errorf("Ill formated coordinates line in stf: Too many fields: %s", str)
	}
	for i, v := range s {
		f, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Can't parse coordinate %d (%s). Error: %s", i, v, err.Error())
		}
		temp[i] = float64(f) / p
	}
	return nil
}

//Next puts in the given matrix (c) the coordinates for the next frame of the trajectory
//and, if given, and the information is present, puts the box vector information in box.
//If c is nil, the frame is read and checked, but discarded.
//At the end of the trajectory, it returns an error satisfying gtno.LastFrameError.
func (S *StfR) Next(c *v3.Matrix, box ...[]float64) error {
	if !S.readable {
		return Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	var temp [3]float64
	for i := 0; i < S.natoms; i++ {
		b, err := S.h.ReadString('\n')
		if err != nil {
			// EOF should only happen when reading the first atom
			if err == io.EOF && i == 0 && b == "" {
				//nothing bad happened here, the trajectory just ended.
				S.Close()
				return newlastFrameError(S.filename, "Next")
			}
			return Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		err = coordsDecode(strings.TrimSuffix(b, "\n"), &temp, S.prec)
		if err != nil {
			return Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		if c == nil {
			continue //We ignore this whole frame, reading the content but not saving it.
		}
		for j, v := range temp {
			c.Set(i, j, v)
		}
	}
	s, err := S.h.ReadString('\n')
	if err != nil {
		return Error{"Can't read the frame termination mark " + err.Error(), S.filename, []string{"Next"}, true}
	}
	if s == "" || s[0] != '*' {
		return Error{WrongFormat + ": wrong number of atoms in frame", S.filename, []string{"Next"}, true}
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		fields := strings.Fields(s)
		if len(fields) >= 10 { // The "*" and the 9 numbers
			var errbox error
			for j, v := range fields[1:10] {
				box[0][j], errbox = strconv.ParseFloat(v, 64)
				if errbox != nil {
					break
				}
			}
			//If we got an error reading any of the values, we just set the whole thing to zero
			//and log, no error returned.
			if errbox != nil {
				S.logger().Warn("failed to read box", "file", S.filename, "error", errbox)
				for i := range box[0] {
					box[0][i] = 0.0
				}
			}
		}
	}
	return nil
}

//Close closes the object, and marks it as unreadable
func (S *StfR) Close() {
	if !S.readable {
		return
	}
	S.dec.Close()
	S.f.Close()
	S.readable = false
}

//Len returns the number of atoms in each frame of the trajectory.
func (S *StfR) Len() int {
	return S.natoms
}

//Errors

//errDecorate is a helper function that asserts that the error is
//implements gtno.Error and decorates the error with the caller's name before returning it.
//if used with a non-gtno.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(gtno.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for STF trajectory errors. It fullfills gtno.Error and gtno.FileError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("stf file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "stf") associated to the error
func (err Error) Format() string { return "stf" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	UnableToOpen   = "Unable to open file"
	NilCoordinates = "Given nil coordinates"
	WrongFormat    = "Wrong format in the STF file or frame"
	InvalidPrec    = "Precision must be a positive integer"
)

//lastFrameError implements gtno.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "stf" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
