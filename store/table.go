package store

// growFloor is the minimum capacity allocated on first growth.
const growFloor = 256

// Table is the columnar base of every concrete store. It holds a set of named,
// fixed-width, same-length columns indexed by a shared record number and
// implements growth, in-place range copy, record insertion/removal with
// automatic shifting, and an in-place quicksort driven by an index comparator.
//
// Operations on an index outside [0, Count) are undefined unless documented;
// callers are responsible for bounds.
type Table struct {
	count    int
	capacity int
	cols     []Column
}

// Count returns the number of live records.
func (t *Table) Count() int { return t.count }

// Capacity returns the number of records the columns can hold before growing.
func (t *Table) Capacity() int { return t.capacity }

// SetCount overrides the live record count. Intended for loaders that write
// records through the typed field slices in ascending order.
func (t *Table) SetCount(n int) { t.count = n }

// Field returns the column registered under name, or nil.
func (t *Table) Field(name string) Column {
	for _, c := range t.cols {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// GrowIfFull geometrically grows all columns when count has reached capacity.
func (t *Table) GrowIfFull() {
	if t.count < t.capacity {
		return
	}
	next := t.capacity + t.capacity/2
	if next < growFloor {
		next = growFloor
	}
	t.Resize(next)
}

// Resize re-allocates all columns to hold n records, truncating or
// zero-extending. The live count is clamped to n.
func (t *Table) Resize(n int) {
	if n < 0 {
		n = 0
	}
	t.capacity = n
	if t.count > n {
		t.count = n
	}
	for _, c := range t.cols {
		c.Resize(n)
	}
}

// Append grows the table if needed and returns the index of a new zeroed
// record at the end.
func (t *Table) Append() int {
	t.GrowIfFull()
	i := t.count
	for _, c := range t.cols {
		c.Zero(i, 1)
	}
	t.count++
	return i
}

// CopyWithin copies n records from src to dst in every column. Overlapping
// ranges are handled correctly in either direction.
func (t *Table) CopyWithin(dst, src, n int) {
	for _, c := range t.cols {
		c.CopyWithin(dst, src, n)
	}
}

// InsertRecords opens a gap of n zeroed records at index, shifting [index,
// Count) right. Callers write the new records through the typed field slices.
func (t *Table) InsertRecords(index, n int) {
	if t.count+n > t.capacity {
		next := t.capacity
		if next < growFloor {
			next = growFloor
		}
		for next < t.count+n {
			next += next / 2
		}
		t.Resize(next)
	}
	if tail := t.count - index; tail > 0 {
		t.CopyWithin(index+n, index, tail)
	}
	for _, c := range t.cols {
		c.Zero(index, n)
	}
	t.count += n
}

// RemoveRecord deletes the record at index, shifting the tail left by one.
func (t *Table) RemoveRecord(index int) {
	t.RemoveRecords(index, 1)
}

// RemoveRecords deletes n records starting at index.
func (t *Table) RemoveRecords(index, n int) {
	if tail := t.count - index - n; tail > 0 {
		t.CopyWithin(index, index+n, tail)
	}
	t.count -= n
}

// Sort reorders records in place with quicksort. cmp compares the records at
// indices i and j. The swap step copies whole records, so the sort is stable
// only insofar as cmp is total; encode tie-breaks into cmp when stability
// matters.
func (t *Table) Sort(cmp func(i, j int) int) {
	t.quicksort(0, t.count-1, cmp)
}

func (t *Table) quicksort(lo, hi int, cmp func(i, j int) int) {
	for lo < hi {
		p := t.partition(lo, hi, cmp)
		// Recurse into the smaller half to bound stack depth.
		if p-lo < hi-p {
			t.quicksort(lo, p-1, cmp)
			lo = p + 1
		} else {
			t.quicksort(p+1, hi, cmp)
			hi = p - 1
		}
	}
}

func (t *Table) partition(lo, hi int, cmp func(i, j int) int) int {
	// Median-of-three pivot, moved to hi.
	mid := lo + (hi-lo)/2
	if cmp(mid, lo) < 0 {
		t.swapRecords(mid, lo)
	}
	if cmp(hi, lo) < 0 {
		t.swapRecords(hi, lo)
	}
	if cmp(mid, hi) < 0 {
		t.swapRecords(mid, hi)
	}

	i := lo
	for j := lo; j < hi; j++ {
		if cmp(j, hi) < 0 {
			t.swapRecords(i, j)
			i++
		}
	}
	t.swapRecords(i, hi)
	return i
}

func (t *Table) swapRecords(i, j int) {
	if i == j {
		return
	}
	for _, c := range t.cols {
		c.Swap(i, j)
	}
}
