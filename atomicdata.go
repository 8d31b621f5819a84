/*
 * atomicdata.go, part of gtno.
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

//Element symbols indexed by nuclear charge. Index 0 is the
//placeholder used for unknown elements.
var zSymbol = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// Hydrogen is the nuclear charge of hydrogen, the element most often
// dropped from training sets.
const Hydrogen = 1

// Symbol returns the element symbol for the nuclear charge z, or "X"
// if z is not a known element.
func Symbol(z int) string {
	if z <= 0 || z >= len(zSymbol) {
		return zSymbol[0]
	}
	return zSymbol[z]
}

// AtomicNumber returns the nuclear charge for the element symbol s.
func AtomicNumber(s string) (int, bool) {
	for z, sym := range zSymbol {
		if z > 0 && sym == s {
			return z, true
		}
	}
	return 0, false
}

// Mass returns the atomic mass of the element with nuclear charge z, in amu.
// The second value is false if no mass is tabulated for that element.
func Mass(z int) (float64, bool) {
	m, ok := symbolMass[Symbol(z)]
	return m, ok
}
