// Package problem is the exercise toolkit: a textual problem grammar,
// YAML problem files, solvers and a randomized exercise generator.
//
// The text grammar gives data lines, a reaction line and target
// lines:
//
//	C[ Ba(NO3)2; Na2SO4 ] = 0.25 M
//	r: Ba(NO3)2 + Na2SO4
//	t: m[ BaSO4 ] = 0 g
//
// A data line names a variable symbol, the substances it applies to
// (empty brackets mean every participant of the reaction), a value
// and a unit. The reaction line holds either bare reagents, whose
// products are predicted, or a full scheme with "->". Lines starting
// with "#" are comments.
package problem
