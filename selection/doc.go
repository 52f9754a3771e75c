// Package selection implements the textual selection language: a parser from
// selection strings to rule trees, and a compiler from rule trees to
// tri-state closures over the structure proxies.
//
// Grammar: whitespace-separated tokens with parentheses for grouping and the
// case-insensitive operators AND, OR, NOT (AND binds tighter than OR; NOT
// consumes the next token or group). Sigils qualify a token: ":" chain, "/"
// model, "." atom name, "_" element, "%" altloc, "^" insertion code, "@"
// atom-index list, "[...]" residue-name list. A bare number or A-B range
// selects residue numbers, a bare 1-4 letter word that is not a keyword
// selects a residue name, and a closed keyword set covers classification
// (protein, water, hetero, ...), secondary structure (helix, sheet, turn) and
// atom roles (backbone, sidechain, ring, ...). Amino-acid class keywords and
// LIGAND expand into explicit sub-trees at parse time.
//
// Malformed input never produces a panic or an error return from Parse: the
// tree degrades to an error leaf that compiles to a constant-false test, and
// the reason is inspectable on Selection.Err.
package selection
