package structure

import (
	"math"

	"github.com/hupe1980/molgo/internal/vec3"
)

// peptideBondLength is the C-N distance given to a newly formed linkage.
const peptideBondLength = 1.32

// AppendResidueToChain appends the template to the end of the chain, placing
// it so the linkage geometry is chemically plausible: the template's backbone
// span is aligned with the terminus direction, flipped 180 degrees about that
// axis when the backbone planes would fold onto each other, and translated so
// the new backbone start sits one bond length past the old backbone end.
func (s *Structure) AppendResidueToChain(chainIndex int, rd *ResidueData) {
	cs := s.ChainStore

	t := rd.Clone()

	last := int(cs.ResidueOffset[chainIndex]) + int(cs.ResidueCount[chainIndex]) - 1
	if last >= int(cs.ResidueOffset[chainIndex]) {
		placeAfter(s, last, t)
	}

	serial := int32(s.AtomStore.Count())
	for i := range t.Atoms {
		serial++
		t.Atoms[i].Serial = serial
	}

	newIndex := int(cs.ResidueOffset[chainIndex]) + int(cs.ResidueCount[chainIndex])
	s.InsertResidue(chainIndex, newIndex, t)
	s.AssignAtomsToResidue(newIndex, t)
	s.Finalize()
}

// placeAfter transforms the template in place so it extends the backbone of
// residue lastIndex. Templates without a recognizable backbone are left where
// they are.
func placeAfter(s *Structure, lastIndex int, t *ResidueData) {
	rp := s.ResidueProxy(lastIndex)
	as := s.AtomStore

	traceIdx := rp.TraceAtomIndex()
	endIdx := rp.BackboneEndAtomIndex()
	startIdx := rp.BackboneStartAtomIndex()

	tStart := t.AtomIndexByName("N")
	tTrace := t.AtomIndexByName("CA")
	tEnd := t.AtomIndexByName("C")
	if tStart < 0 {
		tStart = t.AtomIndexByName("P")
		tTrace = t.AtomIndexByName("C4'")
		tEnd = t.AtomIndexByName("O3'")
	}
	if traceIdx < 0 || endIdx < 0 || tStart < 0 || tTrace < 0 || tEnd < 0 {
		return
	}

	oldTrace := vec3.FromFloat32(as.X[traceIdx], as.Y[traceIdx], as.Z[traceIdx])
	oldEnd := vec3.FromFloat32(as.X[endIdx], as.Y[endIdx], as.Z[endIdx])
	dir := oldEnd.Sub(oldTrace).Normalize()
	if dir.Length() == 0 {
		return
	}

	atomVec := func(i int) vec3.Vec {
		return vec3.Vec{X: float64(t.Atoms[i].X), Y: float64(t.Atoms[i].Y), Z: float64(t.Atoms[i].Z)}
	}
	rotateAll := func(origin, axis vec3.Vec, angle float64) {
		for i := range t.Atoms {
			p := atomVec(i).Sub(origin).RotateAround(axis, angle).Add(origin)
			t.Atoms[i].X = float32(p.X)
			t.Atoms[i].Y = float32(p.Y)
			t.Atoms[i].Z = float32(p.Z)
		}
	}

	// Align the template backbone span with the terminus direction.
	span := atomVec(tEnd).Sub(atomVec(tStart)).Normalize()
	if span.Length() > 0 {
		axis, angle := vec3.RotationBetween(span, dir)
		rotateAll(atomVec(tStart), axis, angle)
	}

	// Alternate the backbone pleat: when the old and new backbone planes face
	// the same way, flip the template half a turn about the chain direction.
	if startIdx >= 0 {
		oldStart := vec3.FromFloat32(as.X[startIdx], as.Y[startIdx], as.Z[startIdx])
		oldNormal := vec3.PlaneNormal(oldStart, oldTrace, oldEnd)
		newNormal := vec3.PlaneNormal(atomVec(tStart), atomVec(tTrace), atomVec(tEnd))
		if oldNormal.Dot(newNormal) > 0 {
			rotateAll(atomVec(tStart), dir, math.Pi)
		}
	}

	// New backbone start sits one bond length past the old backbone end.
	shift := oldEnd.Add(dir.Scale(peptideBondLength)).Sub(atomVec(tStart))
	for i := range t.Atoms {
		t.Atoms[i].X += float32(shift.X)
		t.Atoms[i].Y += float32(shift.Y)
		t.Atoms[i].Z += float32(shift.Z)
	}
}

// superposeBackbone transforms the template in place so its backbone start
// and span coincide with those of residue residueIndex. Used by MutateResidue
// to keep the chain geometry through a sidechain swap.
func superposeBackbone(s *Structure, residueIndex int, t *ResidueData) {
	rp := s.ResidueProxy(residueIndex)
	as := s.AtomStore

	startIdx := rp.BackboneStartAtomIndex()
	endIdx := rp.BackboneEndAtomIndex()

	tStart := t.AtomIndexByName("N")
	tEnd := t.AtomIndexByName("C")
	if tStart < 0 {
		tStart = t.AtomIndexByName("P")
		tEnd = t.AtomIndexByName("O3'")
	}
	if startIdx < 0 || endIdx < 0 || tStart < 0 || tEnd < 0 {
		return
	}

	oldStart := vec3.FromFloat32(as.X[startIdx], as.Y[startIdx], as.Z[startIdx])
	oldEnd := vec3.FromFloat32(as.X[endIdx], as.Y[endIdx], as.Z[endIdx])

	atomVec := func(i int) vec3.Vec {
		return vec3.Vec{X: float64(t.Atoms[i].X), Y: float64(t.Atoms[i].Y), Z: float64(t.Atoms[i].Z)}
	}

	span := atomVec(tEnd).Sub(atomVec(tStart)).Normalize()
	dir := oldEnd.Sub(oldStart).Normalize()

	origin := atomVec(tStart)
	var axis vec3.Vec
	var angle float64
	if span.Length() > 0 && dir.Length() > 0 {
		axis, angle = vec3.RotationBetween(span, dir)
	}

	for i := range t.Atoms {
		p := atomVec(i).Sub(origin)
		if angle != 0 {
			p = p.RotateAround(axis, angle)
		}
		p = p.Add(oldStart)
		t.Atoms[i].X = float32(p.X)
		t.Atoms[i].Y = float32(p.Y)
		t.Atoms[i].Z = float32(p.Z)
	}
}
