package store

// Residue-name tables used for molecule-type classification. Names follow the
// wwPDB chemical component dictionary.

func makeSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// AA3 is the set of three-letter amino-acid codes, including common
// non-standard residues that occur in polymer chains.
var AA3 = makeSet(
	"ALA", "ARG", "ASN", "ASP", "CYS", "GLN", "GLU", "GLY", "HIS", "ILE",
	"LEU", "LYS", "MET", "PHE", "PRO", "SER", "THR", "TRP", "TYR", "VAL",
	"MSE", "CSO", "SEC", "PYL", "SEP", "TPO", "PTR", "HYP", "MLY",
)

// RnaResnames and DnaResnames are the canonical nucleotide codes.
var RnaResnames = makeSet("A", "C", "G", "U", "I", "N", "RA", "RC", "RG", "RU")

var DnaResnames = makeSet("DA", "DC", "DG", "DT", "DU", "DI", "DN", "T")

// PurineResnames marks bases whose rung end atom is N1 rather than N3.
var PurineResnames = makeSet("A", "G", "I", "DA", "DG", "DI", "RA", "RG")

var WaterResnames = makeSet("HOH", "WAT", "H2O", "SOL", "DOD", "D2O", "TIP", "TIP3", "TIP4", "SPC")

var IonResnames = makeSet(
	"NA", "K", "LI", "RB", "CS", "MG", "CA", "SR", "BA", "ZN", "FE", "FE2",
	"MN", "CU", "CU1", "NI", "CO", "CD", "HG", "AL", "F", "CL", "BR", "IOD",
	"SO4", "PO4", "NO3", "CO3", "NH4", "OH",
)

var SaccharideResnames = makeSet(
	"GLC", "GAL", "MAN", "FUC", "FUL", "XYS", "NAG", "NDG", "BMA", "BGC",
	"SIA", "GLA", "RIB", "ARA", "FRU", "A2G", "BDP", "GCU", "IDS", "RAM",
)

// Backbone atom names per polymer class.
var ProteinBackboneAtoms = makeSet("N", "CA", "C", "O", "OXT", "H", "H1", "H2", "H3", "HA")

var NucleicBackboneAtoms = makeSet(
	"P", "OP1", "OP2", "O5'", "C5'", "C4'", "O4'", "C3'", "O3'", "C2'", "O2'", "C1'",
)
