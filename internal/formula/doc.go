// Package formula parses textual chemical formulas into particle
// values. The accepted notation is the one the rest of the toolkit
// prints: neutral substances are bare formulas ("Fe", "O2", "NaCl",
// "Al2(SO4)3"), charged species carry the charge in a trailing
// parenthesis without a plus sign ("Na(1)", "SO4(-2)", "HSO4(-1)").
//
// Complex substances are resolved against the reference database:
// the cation candidates come from the registered charges of the
// leading element, the anion is matched by its element ratios, and
// the parse is accepted only when the reconstructed species renders
// back to the input. Parsing and formatting therefore round-trip.
package formula
