package testutil

import (
	"github.com/hupe1980/molgo/structure"
)

// alanine is the residue-local geometry of one fixture residue. The intra
// distances fall inside covalent range (N-CA, CA-C, C-O, CA-CB) and nothing
// else does.
var alanine = []struct {
	name    string
	element string
	x, y, z float32
}{
	{"N", "N", 0, 0, 0},
	{"CA", "C", 1.3, 0.4, 0},
	{"C", "C", 2.5, 0, 0},
	{"O", "O", 2.5, -1.2, 0},
	{"CB", "C", 1.3, 1.2, 1.2},
}

// residueSpacing keeps consecutive C-N pairs inside peptide-bond range.
const residueSpacing = 3.8

// MakeProtein builds a finalized single-model, single-chain poly-alanine of n
// residues in an extended conformation. When present, residues 10-19 carry
// helix tags and residues 25-29 sheet tags.
func MakeProtein(n int) *structure.Structure {
	b := structure.NewBuilder("fixture", nil)
	b.AddModel()
	b.AddChain("A", "A")

	serial := int32(0)
	for r := 0; r < n; r++ {
		sstruc := uint8('l')
		switch {
		case r >= 10 && r < 20:
			sstruc = 'h'
		case r >= 25 && r < 30:
			sstruc = 'e'
		}
		b.AddResidue("ALA", int32(r+1), false, sstruc, "")
		d := float32(r) * residueSpacing
		for _, a := range alanine {
			serial++
			b.AddAtom(a.name, a.element, a.x+d, a.y, a.z, serial)
		}
	}
	return b.Finish()
}

// MakeSystem builds a protein of n residues plus a solvent chain holding
// three waters and one sodium ion, all flagged hetero.
func MakeSystem(n int) *structure.Structure {
	b := structure.NewBuilder("fixture", nil)
	b.AddModel()
	b.AddChain("A", "A")

	serial := int32(0)
	for r := 0; r < n; r++ {
		b.AddResidue("ALA", int32(r+1), false, 'l', "")
		d := float32(r) * residueSpacing
		for _, a := range alanine {
			serial++
			b.AddAtom(a.name, a.element, a.x+d, a.y, a.z, serial)
		}
	}

	b.AddChain("W", "W")
	for w := 0; w < 3; w++ {
		b.AddResidue("HOH", int32(w+1), true, 'l', "")
		serial++
		b.AddAtom("O", "O", float32(w)*10, 20, 20, serial)
	}
	b.AddResidue("NA", 4, true, 'l', "")
	serial++
	b.AddAtom("NA", "NA", 40, 20, 20, serial)

	return b.Finish()
}

// AlanineTemplate returns a detached alanine residue template in the fixture
// geometry, for append and mutate tests.
func AlanineTemplate() *structure.ResidueData {
	rd := &structure.ResidueData{Resname: "ALA"}
	for i, a := range alanine {
		rd.Atoms = append(rd.Atoms, structure.AtomData{
			Atomname: a.name,
			Element:  a.element,
			X:        a.x, Y: a.y, Z: a.z,
			Serial:    int32(i + 1),
			Occupancy: 1,
		})
	}
	return rd
}

// GlycineTemplate returns a detached glycine template (alanine without the
// sidechain carbon), for mutate tests.
func GlycineTemplate() *structure.ResidueData {
	rd := AlanineTemplate()
	rd.Resname = "GLY"
	rd.Atoms = rd.Atoms[:4]
	return rd
}
