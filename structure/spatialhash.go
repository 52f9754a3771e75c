package structure

import "math"

// spatialHashCellSize is the uniform grid spacing in length units. Chosen to
// exceed the longest covalent bond of interest so bond search only has to
// visit the 27 neighboring cells.
const spatialHashCellSize = 2.5

// SpatialHash is a uniform-grid spatial index over atom coordinates,
// supporting radius queries. It is rebuilt from scratch by Finalize; it is
// not kept live during edits.
type SpatialHash struct {
	cells map[[3]int32][]int
	minX  float32
	minY  float32
	minZ  float32
}

// NewSpatialHash builds the index from the structure's current coordinates.
func NewSpatialHash(s *Structure) *SpatialHash {
	n := s.AtomStore.Count()
	h := &SpatialHash{cells: make(map[[3]int32][]int, n/2+1)}
	if s.BoundingBox != nil {
		h.minX, h.minY, h.minZ = s.BoundingBox.MinX, s.BoundingBox.MinY, s.BoundingBox.MinZ
	}
	x, y, z := s.AtomStore.X, s.AtomStore.Y, s.AtomStore.Z
	for i := 0; i < n; i++ {
		key := h.cellOf(x[i], y[i], z[i])
		h.cells[key] = append(h.cells[key], i)
	}
	return h
}

func (h *SpatialHash) cellOf(x, y, z float32) [3]int32 {
	return [3]int32{
		int32(math.Floor(float64(x-h.minX) / spatialHashCellSize)),
		int32(math.Floor(float64(y-h.minY) / spatialHashCellSize)),
		int32(math.Floor(float64(z-h.minZ) / spatialHashCellSize)),
	}
}

// Within appends to dst the indices of all atoms within radius r of (x, y, z)
// and returns the extended slice. The structure's coordinate slices must be
// passed so the hash stays decoupled from store growth.
func (h *SpatialHash) Within(ax, ay, az []float32, x, y, z, r float32, dst []int) []int {
	r2 := float64(r) * float64(r)
	lo := h.cellOf(x-r, y-r, z-r)
	hi := h.cellOf(x+r, y+r, z+r)
	for cx := lo[0]; cx <= hi[0]; cx++ {
		for cy := lo[1]; cy <= hi[1]; cy++ {
			for cz := lo[2]; cz <= hi[2]; cz++ {
				for _, i := range h.cells[[3]int32{cx, cy, cz}] {
					dx := float64(ax[i] - x)
					dy := float64(ay[i] - y)
					dz := float64(az[i] - z)
					if dx*dx+dy*dy+dz*dz <= r2 {
						dst = append(dst, i)
					}
				}
			}
		}
	}
	return dst
}
