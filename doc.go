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

//Package gtno contains the basic types for molecular-dynamics training data:
//one graph (nuclear charges, coordinates, forces and energy) per trajectory frame.
//
//The table loader lives in the data subpackage. v3 offers the coordinates and forces
//of a frame as gonum matrices, traj/stf and xyz write frames to trajectory files,
//and histo, chemstat and chemplot summarize a loaded dataset.
package gtno
