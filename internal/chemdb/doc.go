// Package chemdb holds the reference data the prediction and
// calculation layers consult: the solubility table (which doubles as
// the registry of known ions and substances), the acid and base
// compatibility tables, the metal activity series, and the standard
// potentials of the half reaction table.
//
// The built-in data ships with the binary. A SQLite-backed overlay
// (Store) can add user-defined substances on top of it; built-in rows
// always win on conflict.
package chemdb
