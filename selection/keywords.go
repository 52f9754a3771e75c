package selection

import "sort"

// Keyword identifies one of the closed set of selection keywords.
type Keyword uint8

const (
	// KwUnset marks a leaf without a keyword constraint.
	KwUnset Keyword = iota
	KwAll
	KwNone
	KwProtein
	KwNucleic
	KwRna
	KwDna
	KwPolymer
	KwWater
	KwIon
	KwSaccharide
	KwHetero
	KwHelix
	KwSheet
	KwTurn
	KwBackbone
	KwSidechain
	KwBonded
	KwRing
	KwAromaticRing
	KwMetal
	KwPolarH
)

var keywords = map[string]Keyword{
	"*":            KwAll,
	"ALL":          KwAll,
	"NONE":         KwNone,
	"PROTEIN":      KwProtein,
	"NUCLEIC":      KwNucleic,
	"RNA":          KwRna,
	"DNA":          KwDna,
	"POLYMER":      KwPolymer,
	"WATER":        KwWater,
	"ION":          KwIon,
	"SACCHARIDE":   KwSaccharide,
	"SUGAR":        KwSaccharide,
	"HETERO":       KwHetero,
	"HELIX":        KwHelix,
	"SHEET":        KwSheet,
	"TURN":         KwTurn,
	"BACKBONE":     KwBackbone,
	"SIDECHAIN":    KwSidechain,
	"BONDED":       KwBonded,
	"RING":         KwRing,
	"AROMATICRING": KwAromaticRing,
	"METAL":        KwMetal,
	"POLARH":       KwPolarH,
}

// Amino-acid class composites expand into explicit resname-list leaves.
var aminoClasses = map[string][]string{
	"SMALL":        {"ALA", "GLY", "SER"},
	"NUCLEOPHILIC": {"CYS", "SER", "THR"},
	"HYDROPHOBIC":  {"ALA", "ILE", "LEU", "MET", "PHE", "PRO", "TRP", "VAL"},
	"AROMATIC":     {"HIS", "PHE", "TRP", "TYR"},
	"AMIDE":        {"ASN", "GLN"},
	"ACIDIC":       {"ASP", "GLU"},
	"BASIC":        {"ARG", "HIS", "LYS"},
	"CHARGED":      {"ARG", "ASP", "GLU", "HIS", "LYS"},
	"POLAR":        {"ARG", "ASN", "ASP", "GLN", "GLU", "HIS", "LYS", "SER", "THR", "TYR"},
	"NONPOLAR":     {"ALA", "CYS", "GLY", "ILE", "LEU", "MET", "PHE", "PRO", "TRP", "VAL"},
}

// classRule builds the resname-list leaf an amino-acid class keyword expands
// into, or nil when the token is not a class keyword.
func classRule(tok string) *Rule {
	names, ok := aminoClasses[tok]
	if !ok {
		return nil
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return &Rule{Resnames: sorted}
}

// ligandExpansion is the canonical tree the LIGAND composite stands for.
const ligandExpansion = "( not polymer or hetero ) and not ( water or ion )"

// ligandRule returns a fresh copy of the LIGAND expansion tree.
func ligandRule() *Rule {
	return Parse(ligandExpansion)
}
