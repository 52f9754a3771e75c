package structure

import "math"

// BoundingBox is the axis-aligned bounding volume of all atom coordinates.
type BoundingBox struct {
	MinX, MinY, MinZ float32
	MaxX, MaxY, MaxZ float32
}

// CalculateBoundingBox recomputes the bounding volume from the current atom
// store. An empty store yields the zero box.
func CalculateBoundingBox(s *Structure) *BoundingBox {
	n := s.AtomStore.Count()
	if n == 0 {
		return &BoundingBox{}
	}
	b := &BoundingBox{
		MinX: math.MaxFloat32, MinY: math.MaxFloat32, MinZ: math.MaxFloat32,
		MaxX: -math.MaxFloat32, MaxY: -math.MaxFloat32, MaxZ: -math.MaxFloat32,
	}
	x, y, z := s.AtomStore.X, s.AtomStore.Y, s.AtomStore.Z
	for i := 0; i < n; i++ {
		if x[i] < b.MinX {
			b.MinX = x[i]
		}
		if x[i] > b.MaxX {
			b.MaxX = x[i]
		}
		if y[i] < b.MinY {
			b.MinY = y[i]
		}
		if y[i] > b.MaxY {
			b.MaxY = y[i]
		}
		if z[i] < b.MinZ {
			b.MinZ = z[i]
		}
		if z[i] > b.MaxZ {
			b.MaxZ = z[i]
		}
	}
	return b
}

// Center returns the box midpoint.
func (b *BoundingBox) Center() (x, y, z float32) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2, (b.MinZ + b.MaxZ) / 2
}

// Size returns the box extents.
func (b *BoundingBox) Size() (x, y, z float32) {
	return b.MaxX - b.MinX, b.MaxY - b.MinY, b.MaxZ - b.MinZ
}
