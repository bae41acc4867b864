// Package predict classifies reagents and routes them to a reaction
// mechanism. Each reagent maps onto an effective class (metal, base,
// ternary salt, nitrate, ...); the unordered tuple of classes is
// looked up in an ordered rule list, first match wins. A rule names
// the mechanism that builds the products and the restriction that
// decides whether the reaction proceeds.
//
// Two algorithms exist: the molecular one works on whole substances,
// the ionic one on dissolved species (ions, ion groups, molecules).
package predict
