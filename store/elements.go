package store

import "strings"

// elementInfo carries the per-element constants used for bond derivation and
// classification.
type elementInfo struct {
	Number   int8
	VdW      float32 // van der Waals radius, Angstrom
	Covalent float32 // covalent radius, Angstrom
}

var elements = map[string]elementInfo{
	"H":  {1, 1.10, 0.31},
	"D":  {1, 1.10, 0.31},
	"HE": {2, 1.40, 0.28},
	"LI": {3, 1.81, 1.28},
	"BE": {4, 1.53, 0.96},
	"B":  {5, 1.92, 0.84},
	"C":  {6, 1.70, 0.76},
	"N":  {7, 1.55, 0.71},
	"O":  {8, 1.52, 0.66},
	"F":  {9, 1.47, 0.57},
	"NE": {10, 1.54, 0.58},
	"NA": {11, 2.27, 1.66},
	"MG": {12, 1.73, 1.41},
	"AL": {13, 1.84, 1.21},
	"SI": {14, 2.10, 1.11},
	"P":  {15, 1.80, 1.07},
	"S":  {16, 1.80, 1.05},
	"CL": {17, 1.75, 1.02},
	"AR": {18, 1.88, 1.06},
	"K":  {19, 2.75, 2.03},
	"CA": {20, 2.31, 1.76},
	"MN": {25, 2.05, 1.39},
	"FE": {26, 2.04, 1.32},
	"CO": {27, 2.00, 1.26},
	"NI": {28, 1.97, 1.24},
	"CU": {29, 1.96, 1.32},
	"ZN": {30, 2.01, 1.22},
	"SE": {34, 1.90, 1.20},
	"BR": {35, 1.85, 1.20},
	"MO": {42, 2.17, 1.54},
	"CD": {48, 2.18, 1.44},
	"I":  {53, 1.98, 1.39},
	"W":  {74, 2.18, 1.62},
	"PT": {78, 2.13, 1.36},
	"AU": {79, 2.14, 1.36},
	"HG": {80, 2.23, 1.32},
	"PB": {82, 2.02, 1.46},
	"U":  {92, 2.41, 1.96},
}

// metalNumbers marks the atomic numbers treated as metals.
var metalNumbers = map[int8]bool{
	3: true, 4: true, 11: true, 12: true, 13: true, 19: true, 20: true,
	25: true, 26: true, 27: true, 28: true, 29: true, 30: true, 42: true,
	48: true, 74: true, 78: true, 79: true, 80: true, 82: true, 92: true,
}

const (
	defaultVdW      = 2.0
	defaultCovalent = 1.6
)

// GuessElement derives an element symbol from a PDB-style atom name:
// digits and primes are stripped, then a two-letter match is preferred when
// the name starts with one, else the first letter wins.
func GuessElement(atomname string) string {
	name := strings.ToUpper(strings.TrimLeft(atomname, "0123456789 "))
	name = strings.TrimRight(name, "0123456789'\" ")
	if name == "" {
		return ""
	}
	if len(name) >= 2 {
		if _, ok := elements[name[:2]]; ok {
			// Avoid misreading CA/CD etc. in standard residues; those callers
			// pass an explicit element instead of relying on the guess.
			return name[:2]
		}
	}
	if _, ok := elements[name[:1]]; ok {
		return name[:1]
	}
	return name[:1]
}

func lookupElement(element string) elementInfo {
	if info, ok := elements[strings.ToUpper(element)]; ok {
		return info
	}
	return elementInfo{0, defaultVdW, defaultCovalent}
}

// IsMetalElement reports whether the element symbol names a metal.
func IsMetalElement(element string) bool {
	return metalNumbers[lookupElement(element).Number]
}
