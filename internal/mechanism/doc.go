// Package mechanism implements the school reaction mechanisms: pure
// procedures from reagent particles to unbalanced product particles.
//
// The molecular mechanisms work on whole substances. The four simple
// ones (addition, decomposition, substitution, exchange) cover binary
// chemistry; the complex ones route oxide reactions through the acid
// and base compatibility tables; nitrate decomposition stands apart
// because its products depend on the metal's activity class.
//
// The ionic mechanisms work on dissolved species and may produce ions
// and ion groups instead of neutral substances.
//
// Restrictions decide whether predicted products actually form. They
// inspect products, not reagents, and return false for a reaction
// that will not proceed.
//
// Mechanisms needing reference data (solubility, acid/base tables,
// the activity series) are methods on Set; the rest are package
// functions.
package mechanism
