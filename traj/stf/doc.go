/*
 * doc.go, part of gtno.
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

/*Package stf implements the simple trajectory format, a small compressed text
trajectory that is easy to read from other languages. It is used to hand the
coordinates of a loaded MD dataset to visualization and analysis programs.

******************** Format Specification ***************************************************

An STF file is compressed; this package uses the last letter of the file name to choose how:
"f" (.stf) and anything not listed is z-standard, "z" (.stz) gzip, "r" (.str) raw deflate and
"l" (.stl) lzw.

A STF file may only contain ASCII symbols.

A STF file has a header starting in the first line, and ending with a line that starts with the
characters "**" followed by one or more spaces, and the number of atoms per frame.

Each line of the header is a pair key=value. The precision must be included, with the key
"prec". Files written from a dataset also carry the key "charges", a comma-separated list
of the nuclear charges of the atoms.

After the header, the file has one line per atom, per frame. Each line contains 3 integers:
the x y and z cartesian coordinates multiplied by 10 to the power of the precision, and rounded.

Each frame ends with a line starting with the character "*", optionally followed by one
or more whitespace and 9 floating-point numbers separated by spaces: the box vectors.

**********************************************************************************************/
package stf
