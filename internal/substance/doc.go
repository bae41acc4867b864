// Package substance models the chemical species that participate in
// reactions: simple substances, ions, ion groups and molecules.
//
// Every species implements the Particle interface: a composition (atom
// counts per element), a net charge, a derived molar mass and a textual
// formula. The model follows the school-chemistry simplifications the
// whole toolkit is built on:
//
//   - a Molecule always consists of exactly two ions, a cation and an
//     anion, and is always electrically neutral;
//   - cations consist of a single element (polyatomic cations such as
//     ammonium are not supported);
//   - an IonGroup is a partially dissociated acid or base and always
//     carries a nonzero charge;
//   - isomers are not modeled, so two particles with equal composition
//     and charge are the same particle.
//
// Molecules are classified into the four school substance classes:
// acids (cation is the proton), bases (anion is hydroxide), oxides
// (anion is the oxide ion) and salts (everything else). Water is an
// oxide even though it matches the acid and base conditions too.
package substance
