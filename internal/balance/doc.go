// Package balance finds stoichiometric coefficients for reaction
// schemes. The scheme is encoded as a conservation matrix with one
// row per element plus a charge row and one column per substance,
// reagents entering positively and products negatively. Any vector in
// the matrix's nullspace with positive integer entries balances the
// scheme; the smallest such vector (entries coprime) is returned.
package balance
