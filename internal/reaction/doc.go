// Package reaction models a chemical reaction as reagents, products
// and a category, and renders it as an unbalanced scheme or a balanced
// equation.
//
// A Reaction comes from one of three places: explicit sides, reagents
// run through a predictor, or a textual scheme like
// "Zn + HCl -> ZnCl2 + H2". Balancing is lazy: coefficients are
// computed on first use and remembered.
//
// A HalfReaction is the redox building block: it carries electrons as
// explicit e(-1) particles, sorts against another half by standard
// potential, and combines with its counterpart into a full Reaction.
package reaction
