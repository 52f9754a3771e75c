package store

import (
	"fmt"
	"math"
	"strings"
)

// MoleculeType classifies a residue by polymer class.
type MoleculeType uint8

const (
	MoleculeUnknown MoleculeType = iota
	MoleculeWater
	MoleculeIon
	MoleculeProtein
	MoleculeRNA
	MoleculeDNA
	MoleculeSaccharide
)

func (m MoleculeType) String() string {
	switch m {
	case MoleculeWater:
		return "water"
	case MoleculeIon:
		return "ion"
	case MoleculeProtein:
		return "protein"
	case MoleculeRNA:
		return "rna"
	case MoleculeDNA:
		return "dna"
	case MoleculeSaccharide:
		return "saccharide"
	default:
		return "unknown"
	}
}

// ResidueBonds is the intra-residue bond topology of a residue type. Indices
// are residue-local (0-based offsets into the residue's atom slice).
type ResidueBonds struct {
	AtomIndices1 []int
	AtomIndices2 []int
	BondOrders   []int
}

// ResidueType is an immutable, shared descriptor for a residue's content:
// name, ordered atom-type list, heteroatom flag and chemical-component
// category. Bond topology and ring perception are derived lazily from the
// first instance's coordinates and then shared by every referencing residue.
type ResidueType struct {
	Resname      string
	AtomTypeIDs  []uint16
	Hetero       bool
	ChemCompType string
	MoleculeType MoleculeType

	// Residue-local indices of the backbone role atoms, -1 when absent.
	TraceAtomIndex         int
	BackboneStartAtomIndex int
	BackboneEndAtomIndex   int
	Direction1AtomIndex    int
	Direction2AtomIndex    int
	RungEndAtomIndex       int

	bonds     *ResidueBonds
	ringFlags []bool
	aromatic  bool
}

// NewResidueType builds a descriptor and derives its classification and
// backbone role indices from the atom content.
func NewResidueType(resname string, atomTypeIDs []uint16, hetero bool, chemCompType string, reg *AtomTypeRegistry) *ResidueType {
	rt := &ResidueType{
		Resname:                strings.ToUpper(resname),
		AtomTypeIDs:            append([]uint16(nil), atomTypeIDs...),
		Hetero:                 hetero,
		ChemCompType:           chemCompType,
		TraceAtomIndex:         -1,
		BackboneStartAtomIndex: -1,
		BackboneEndAtomIndex:   -1,
		Direction1AtomIndex:    -1,
		Direction2AtomIndex:    -1,
		RungEndAtomIndex:       -1,
	}
	rt.classify(reg)
	rt.assignBackboneRoles(reg)
	return rt
}

// AtomIndexByName returns the residue-local index of the first atom with the
// given name, or -1.
func (rt *ResidueType) AtomIndexByName(name string, reg *AtomTypeRegistry) int {
	for i, id := range rt.AtomTypeIDs {
		if at := reg.Get(id); at != nil && at.Atomname == name {
			return i
		}
	}
	return -1
}

func (rt *ResidueType) hasAtoms(reg *AtomTypeRegistry, names ...string) bool {
	for _, n := range names {
		if rt.AtomIndexByName(n, reg) < 0 {
			return false
		}
	}
	return true
}

func (rt *ResidueType) classify(reg *AtomTypeRegistry) {
	name := rt.Resname
	switch {
	case WaterResnames[name]:
		rt.MoleculeType = MoleculeWater
	case len(rt.AtomTypeIDs) == 1 && IonResnames[name]:
		rt.MoleculeType = MoleculeIon
	case AA3[name] || rt.hasAtoms(reg, "N", "CA", "C"):
		rt.MoleculeType = MoleculeProtein
	case RnaResnames[name] || (rt.hasAtoms(reg, "C4'", "C3'", "O3'") && rt.AtomIndexByName("O2'", reg) >= 0):
		rt.MoleculeType = MoleculeRNA
	case DnaResnames[name] || rt.hasAtoms(reg, "C4'", "C3'", "O3'"):
		rt.MoleculeType = MoleculeDNA
	case SaccharideResnames[name]:
		rt.MoleculeType = MoleculeSaccharide
	default:
		rt.MoleculeType = MoleculeUnknown
	}
}

func (rt *ResidueType) assignBackboneRoles(reg *AtomTypeRegistry) {
	switch rt.MoleculeType {
	case MoleculeProtein:
		rt.TraceAtomIndex = rt.AtomIndexByName("CA", reg)
		rt.BackboneStartAtomIndex = rt.AtomIndexByName("N", reg)
		rt.BackboneEndAtomIndex = rt.AtomIndexByName("C", reg)
		rt.Direction1AtomIndex = rt.AtomIndexByName("C", reg)
		rt.Direction2AtomIndex = rt.AtomIndexByName("O", reg)
	case MoleculeRNA, MoleculeDNA:
		rt.TraceAtomIndex = rt.AtomIndexByName("C4'", reg)
		if rt.TraceAtomIndex < 0 {
			rt.TraceAtomIndex = rt.AtomIndexByName("C3'", reg)
		}
		rt.BackboneStartAtomIndex = rt.AtomIndexByName("P", reg)
		if rt.BackboneStartAtomIndex < 0 {
			rt.BackboneStartAtomIndex = rt.AtomIndexByName("O5'", reg)
		}
		rt.BackboneEndAtomIndex = rt.AtomIndexByName("O3'", reg)
		rt.Direction1AtomIndex = rt.AtomIndexByName("C1'", reg)
		rt.Direction2AtomIndex = rt.AtomIndexByName("C2'", reg)
		if PurineResnames[rt.Resname] {
			rt.RungEndAtomIndex = rt.AtomIndexByName("N1", reg)
		} else {
			rt.RungEndAtomIndex = rt.AtomIndexByName("N3", reg)
		}
	}
}

// IsPolymer reports whether the residue belongs to a polymer class.
func (rt *ResidueType) IsPolymer() bool {
	switch rt.MoleculeType {
	case MoleculeProtein, MoleculeRNA, MoleculeDNA:
		return true
	}
	return false
}

// IsNucleic reports whether the residue is RNA or DNA.
func (rt *ResidueType) IsNucleic() bool {
	return rt.MoleculeType == MoleculeRNA || rt.MoleculeType == MoleculeDNA
}

// IsBackboneAtom reports whether the residue-local atom index plays a
// backbone role for the residue's polymer class.
func (rt *ResidueType) IsBackboneAtom(idx int, reg *AtomTypeRegistry) bool {
	if idx < 0 || idx >= len(rt.AtomTypeIDs) {
		return false
	}
	at := reg.Get(rt.AtomTypeIDs[idx])
	if at == nil {
		return false
	}
	switch rt.MoleculeType {
	case MoleculeProtein:
		return ProteinBackboneAtoms[at.Atomname]
	case MoleculeRNA, MoleculeDNA:
		return NucleicBackboneAtoms[at.Atomname]
	}
	return false
}

// Bonds returns the intra-residue bond topology, deriving it from the given
// instance coordinates on first call. x/y/z hold one value per residue-local
// atom in type order. The derived topology is cached on the type.
func (rt *ResidueType) Bonds(reg *AtomTypeRegistry, x, y, z []float32) *ResidueBonds {
	if rt.bonds != nil {
		return rt.bonds
	}
	n := len(rt.AtomTypeIDs)
	bonds := &ResidueBonds{}
	for i := 0; i < n; i++ {
		ai := reg.Get(rt.AtomTypeIDs[i])
		for j := i + 1; j < n; j++ {
			aj := reg.Get(rt.AtomTypeIDs[j])
			if ai == nil || aj == nil {
				continue
			}
			if ai.IsHydrogen() && aj.IsHydrogen() {
				continue
			}
			dx := float64(x[i] - x[j])
			dy := float64(y[i] - y[j])
			dz := float64(z[i] - z[j])
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			limit := float64(ai.Covalent+aj.Covalent) + 0.3
			if d > 0.4 && d <= limit {
				bonds.AtomIndices1 = append(bonds.AtomIndices1, i)
				bonds.AtomIndices2 = append(bonds.AtomIndices2, j)
				bonds.BondOrders = append(bonds.BondOrders, 1)
			}
		}
	}
	rt.bonds = bonds
	rt.perceiveRings()
	return bonds
}

// SetBonds installs an externally supplied topology (e.g. from a chemical
// component dictionary) instead of the distance-derived one.
func (rt *ResidueType) SetBonds(b *ResidueBonds) {
	rt.bonds = b
	rt.ringFlags = nil
	rt.perceiveRings()
}

var aromaticResnames = makeSet(
	"HIS", "PHE", "TRP", "TYR",
	"A", "C", "G", "U", "I", "T", "DA", "DC", "DG", "DT", "DU", "DI",
)

// perceiveRings marks atoms that are members of a cycle in the intra-residue
// bond graph.
func (rt *ResidueType) perceiveRings() {
	n := len(rt.AtomTypeIDs)
	rt.ringFlags = make([]bool, n)
	rt.aromatic = aromaticResnames[rt.Resname]
	if rt.bonds == nil {
		return
	}

	adj := make([][]int, n)
	for k := range rt.bonds.AtomIndices1 {
		a, b := rt.bonds.AtomIndices1[k], rt.bonds.AtomIndices2[k]
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	// DFS back-edge detection; when a back edge closes a cycle, every atom on
	// the tree path between the endpoints belongs to a ring.
	parent := make([]int, n)
	depth := make([]int, n)
	for i := range parent {
		parent[i] = -2
	}
	var dfs func(v, p, d int)
	dfs = func(v, p, d int) {
		parent[v] = p
		depth[v] = d
		for _, w := range adj[v] {
			if w == p {
				continue
			}
			if parent[w] == -2 {
				dfs(w, v, d+1)
				continue
			}
			if depth[w] < depth[v] {
				for u := v; u != w && u >= 0; u = parent[u] {
					rt.ringFlags[u] = true
				}
				rt.ringFlags[w] = true
			}
		}
	}
	for i := 0; i < n; i++ {
		if parent[i] == -2 {
			dfs(i, -1, 0)
		}
	}
}

// IsRingAtom reports whether the residue-local atom index is part of a ring.
// Topology must have been derived via Bonds or SetBonds first.
func (rt *ResidueType) IsRingAtom(idx int) bool {
	return idx >= 0 && idx < len(rt.ringFlags) && rt.ringFlags[idx]
}

// IsAromaticRingAtom reports whether the atom is part of an aromatic ring.
func (rt *ResidueType) IsAromaticRingAtom(idx int) bool {
	return rt.aromatic && rt.IsRingAtom(idx)
}

// ResidueTypeRegistry deduplicates ResidueType descriptors by content key:
// residue name, ordered atom-type id list, heteroatom flag and chem-comp
// category.
type ResidueTypeRegistry struct {
	store *ResidueStore
	atoms *AtomTypeRegistry
	dict  map[string]uint16
	types map[uint16]*ResidueType
	next  uint16
}

// NewResidueTypeRegistry creates a registry scanning the given residue store
// for usage on removal.
func NewResidueTypeRegistry(store *ResidueStore, atoms *AtomTypeRegistry) *ResidueTypeRegistry {
	return &ResidueTypeRegistry{
		store: store,
		atoms: atoms,
		dict:  make(map[string]uint16),
		types: make(map[uint16]*ResidueType),
	}
}

func residueTypeKey(resname string, atomTypeIDs []uint16, hetero bool, chemCompType string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(resname))
	sb.WriteByte('|')
	for _, id := range atomTypeIDs {
		fmt.Fprintf(&sb, "%d,", id)
	}
	fmt.Fprintf(&sb, "|%t|%s", hetero, chemCompType)
	return sb.String()
}

// Add returns the id of the descriptor for the given content, allocating a
// new one when the content key is unseen.
func (r *ResidueTypeRegistry) Add(resname string, atomTypeIDs []uint16, hetero bool, chemCompType string) uint16 {
	key := residueTypeKey(resname, atomTypeIDs, hetero, chemCompType)
	if id, ok := r.dict[key]; ok {
		return id
	}
	id := r.next
	r.next++
	r.dict[key] = id
	r.types[id] = NewResidueType(resname, atomTypeIDs, hetero, chemCompType, r.atoms)
	return id
}

// Get returns the descriptor for id, or nil.
func (r *ResidueTypeRegistry) Get(id uint16) *ResidueType {
	return r.types[id]
}

// Remove retires the descriptor for id if no residue record still references
// it. The usage scan is O(rows).
func (r *ResidueTypeRegistry) Remove(id uint16) {
	rt, ok := r.types[id]
	if !ok {
		return
	}
	ids := r.store.ResidueTypeID
	for i := 0; i < r.store.Count(); i++ {
		if ids[i] == id {
			return
		}
	}
	delete(r.dict, residueTypeKey(rt.Resname, rt.AtomTypeIDs, rt.Hetero, rt.ChemCompType))
	delete(r.types, id)
}

// Count returns the number of live descriptors.
func (r *ResidueTypeRegistry) Count() int {
	return len(r.types)
}
