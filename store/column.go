package store

// Scalar is the set of element types a column may hold. Every column is a
// fixed-width, same-length array of one of these.
type Scalar interface {
	~float32 | ~int8 | ~int32 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Column is one named, fixed-width field of a Table. All columns of a table
// have the same record count; a record occupies Width consecutive elements.
type Column interface {
	Name() string
	Width() int

	// Resize re-allocates the backing slice to hold n records, truncating or
	// zero-extending, and re-binds the owner's field slice.
	Resize(n int)

	// CopyWithin copies n records from src to dst within the column.
	// Overlapping ranges are handled correctly in either direction.
	CopyWithin(dst, src, n int)

	// Zero clears n records starting at from.
	Zero(from, n int)

	// Swap exchanges records i and j through a one-record scratch buffer.
	Swap(i, j int)
}

// column binds a typed field slice owned by a concrete store to its table.
// The table drives growth and shifting through the Column interface while the
// concrete store keeps direct, always-current access to the typed slice.
type column[T Scalar] struct {
	name    string
	width   int
	data    *[]T
	scratch []T
}

// AddField registers a new column on the table. The pointee slice is
// re-allocated to the table's current capacity immediately, so fields may be
// added lazily after rows exist.
func AddField[T Scalar](t *Table, name string, width int, data *[]T) {
	c := &column[T]{
		name:    name,
		width:   width,
		data:    data,
		scratch: make([]T, width),
	}
	c.Resize(t.capacity)
	t.cols = append(t.cols, c)
}

func (c *column[T]) Name() string { return c.name }

func (c *column[T]) Width() int { return c.width }

func (c *column[T]) Resize(n int) {
	next := make([]T, n*c.width)
	copy(next, *c.data)
	*c.data = next
}

func (c *column[T]) CopyWithin(dst, src, n int) {
	w := c.width
	d := *c.data
	// The builtin copy is overlap-safe in both directions (memmove semantics),
	// which covers the back-to-front case when dst > src.
	copy(d[dst*w:(dst+n)*w], d[src*w:(src+n)*w])
}

func (c *column[T]) Zero(from, n int) {
	w := c.width
	d := *c.data
	var zero T
	for i := from * w; i < (from+n)*w; i++ {
		d[i] = zero
	}
}

func (c *column[T]) Swap(i, j int) {
	w := c.width
	d := *c.data
	copy(c.scratch, d[i*w:(i+1)*w])
	copy(d[i*w:(i+1)*w], d[j*w:(j+1)*w])
	copy(d[j*w:(j+1)*w], c.scratch)
}
