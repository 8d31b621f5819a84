/*
 * interfaces.go, part of gtno.
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

package gtno

// Dataset is an ordered, randomly indexable collection of frames.
// Implementations must not change after construction, so Get can be
// called from several goroutines at once.
type Dataset interface {
	//Len returns the number of frames.
	Len() int

	//Get returns a copy of the frame at index i, and false if i is
	//out of range.
	Get(i int) (TimestepRecord, bool)
}

// Error is the interface for errors that all packages in this module implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it will just return the current decoration.
	Critical() bool
}

// FileError is an Error associated with an input or output file.
type FileError interface {
	Error
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	FileError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other FileError's
}
