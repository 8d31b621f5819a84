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

/*Package data loads MD17-style trajectory tables into memory.

The table has one row per frame. Column 0 is the integer timestep and column 1
the energy. Every other column belongs to one atom, and its name ends in
"_charge", "_coord" or "_force". Charge cells hold an integer, and coordinate
and force cells a vector written as "[x, y, z]". The number of atoms is not
known in advance: it is found from the header, and the i-th charge, coordinate
and force columns are taken to belong to the i-th atom.

A timestep, energy or charge that can't be read aborts the load. A vector cell
that can't be read is logged, recorded as a Diagnostic and left out of its
record, which then has fewer vectors than charges.
*/
package data
