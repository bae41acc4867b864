// Package ptable models the periodic table of elements.
//
// The table is defined entirely in code: 118 Element values plus the
// standard groupings used by school chemistry (A/B groups, periods,
// trivial families such as the alkali metals, and the metal/nonmetal
// division). All data is immutable after package initialization.
//
// Position in the table determines the properties the rest of the
// toolkit needs: oxidation states follow from the group, metallic
// character from the METALS/NONMETALS division, and electronegativity
// is tabulated per element.
package ptable
