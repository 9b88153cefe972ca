package seamcarver

// table is a row-major rectangular buffer with an explicit live region.
// Both the pixel grid and the energy cost matrix are tables sharing the same geometry,
// so every seam removal and transpose is applied to them in lockstep.
//
// The stride is fixed at allocation time. Shrinking only decrements the width,
// so cells at x >= width are stale and must never be read.
type table[T any] struct {
	cells  []T
	width  int
	height int
	stride int
}

func newTable[T any](width, height int) *table[T] {
	return &table[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// Get the cell value.
func (t *table[T]) at(x, y int) T {
	return t.cells[x+y*t.stride]
}

// Set the cell value.
func (t *table[T]) set(x, y int, v T) {
	t.cells[x+y*t.stride] = v
}

// row returns the live portion of row y.
func (t *table[T]) row(y int) []T {
	start := y * t.stride
	return t.cells[start : start+t.width]
}

// removeAt deletes the cell at column x in row y by shifting the cells
// on its right one position to the left. The vacated last cell is zeroed.
// The width is left untouched: the caller shrinks it once every row has been shifted.
func (t *table[T]) removeAt(x, y int) {
	var zero T

	row := t.row(y)
	copy(row[x:], row[x+1:])
	row[len(row)-1] = zero
}

// shrink drops the last live column.
func (t *table[T]) shrink() {
	t.width--
}

// transpose returns a new table where the rows become columns, i.e. new[r][c] = old[c][r].
func (t *table[T]) transpose() *table[T] {
	dst := newTable[T](t.height, t.width)
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			dst.set(y, x, t.at(x, y))
		}
	}
	return dst
}
