package structure

import "github.com/hupe1980/molgo/store"

// CgMonomerProxy is a flyweight view over one residue treated as a single
// coarse-grained bead. It exposes residue-granularity fields plus the bead
// position (the trace atom's coordinate, falling back to the first atom).
type CgMonomerProxy struct {
	Structure *Structure
	Index     int // residue index

	rp *ResidueProxy
}

// CgMonomerProxy returns a new proxy pointed at residue index.
func (s *Structure) CgMonomerProxy(index int) *CgMonomerProxy {
	return &CgMonomerProxy{Structure: s, Index: index, rp: s.ResidueProxy(index)}
}

func (p *CgMonomerProxy) residue() *ResidueProxy {
	p.rp.Index = p.Index
	return p.rp
}

// Position returns the bead coordinate.
func (p *CgMonomerProxy) Position() (x, y, z float32) {
	r := p.residue()
	i := r.TraceAtomIndex()
	if i < 0 {
		if r.AtomCount() == 0 {
			return 0, 0, 0
		}
		i = r.AtomOffset()
	}
	as := p.Structure.AtomStore
	return as.X[i], as.Y[i], as.Z[i]
}

// Resname returns the residue name.
func (p *CgMonomerProxy) Resname() string { return p.residue().Resname() }

// Resno returns the residue number.
func (p *CgMonomerProxy) Resno() int32 { return p.residue().Resno() }

// Inscode returns the insertion code, "" when blank.
func (p *CgMonomerProxy) Inscode() string { return p.residue().Inscode() }

// Sstruc returns the secondary-structure tag.
func (p *CgMonomerProxy) Sstruc() uint8 { return p.residue().Sstruc() }

// Chainname returns the owning chain's name.
func (p *CgMonomerProxy) Chainname() string { return p.residue().Chainname() }

// ModelIndex returns the owning model's index.
func (p *CgMonomerProxy) ModelIndex() int { return p.residue().ModelIndex() }

// MoleculeType returns the residue's polymer classification.
func (p *CgMonomerProxy) MoleculeType() store.MoleculeType { return p.residue().MoleculeType() }

// IsPolymer reports whether the bead belongs to a polymer class.
func (p *CgMonomerProxy) IsPolymer() bool { return p.residue().IsPolymer() }

// IsHetero reports the heteroatom flag.
func (p *CgMonomerProxy) IsHetero() bool { return p.residue().IsHetero() }

// EachCgMonomer calls fn with a reused bead proxy for every residue.
func (s *Structure) EachCgMonomer(fn func(*CgMonomerProxy), test func(*CgMonomerProxy) bool) {
	cp := s.CgMonomerProxy(0)
	n := s.ResidueStore.Count()
	for i := 0; i < n; i++ {
		cp.Index = i
		if test != nil && !test(cp) {
			continue
		}
		fn(cp)
	}
}
