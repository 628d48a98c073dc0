package pixgrid

import "fmt"

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major 2-D buffer of T values.
// rows and cols define dimensions; data holds rows*cols cells in row-major order.
type Grid[T Value] struct {
	rows, cols int
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols Grid initialized to zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0 (0×0 is the legal empty grid).
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Grid or ErrInvalidDimensions.
// Complexity: O(rows×cols) time and memory.
func New[T Value](rows, cols int) (*Grid[T], error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]T, rows*cols)

	// Return initialized Grid
	return &Grid[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows builds a Grid from a rectangular slice of rows.
// A nil or empty input yields the empty grid; rows of differing lengths
// are rejected with ErrRaggedRows. The input is copied, never aliased.
// Complexity: O(rows×cols) time and memory.
func FromRows[T Value](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0)
	}

	cols := len(rows[0])
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrRaggedRows
		}
	}

	g, err := New[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		copy(g.data[i*cols:(i+1)*cols], r)
	}

	return g, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (g *Grid[T]) Rows() int {
	return g.rows // return stored row count
}

// Cols returns the number of columns in the grid.
// Complexity: O(1).
func (g *Grid[T]) Cols() int {
	return g.cols // return stored column count
}

// Size returns the total number of cells (rows×cols).
// Complexity: O(1).
func (g *Grid[T]) Size() int {
	return g.rows * g.cols
}

// Empty reports whether the grid holds no cells.
// Complexity: O(1).
func (g *Grid[T]) Empty() bool {
	return g.Size() == 0
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= g.rows {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= g.cols {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*g.cols + col, nil
}

// At retrieves the cell at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Stage 3 (Finalize): return value or wrapped error.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	var zero T
	idx, err := g.indexOf(row, col)
	if err != nil {
		return zero, gridErrorf("At", row, col, err)
	}

	return g.data[idx], nil
}

// TryAt retrieves the cell at (row, col), reporting false outside the grid.
// It never allocates and never fails; off-grid reads are ordinary misses.
// Complexity: O(1).
func (g *Grid[T]) TryAt(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return zero, false
	}

	return g.data[row*g.cols+col], true
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Stage 3 (Finalize): return error or nil.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf("Set", row, col, err)
	}
	// Assign value
	g.data[idx] = v

	return nil
}

// Resize reallocates the grid to rows×cols, discarding previous contents;
// every cell of the resized grid is zero.
// Complexity: O(rows×cols) time and memory.
func (g *Grid[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	g.rows, g.cols = rows, cols
	g.data = make([]T, rows*cols)

	return nil
}

// Clear zeroes every cell, keeping dimensions.
// Complexity: O(rows×cols).
func (g *Grid[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}

// Clone returns a deep copy of the grid.
// Complexity: O(rows×cols) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	// Allocate new slice for data copy
	copyData := make([]T, len(g.data))
	// Copy all elements into new slice
	copy(copyData, g.data)

	return &Grid[T]{rows: g.rows, cols: g.cols, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows×cols) for string construction.
func (g *Grid[T]) String() string {
	var s string
	var i, j int
	for i = 0; i < g.rows; i++ { // iterate over rows
		s += "["                     // open row
		for j = 0; j < g.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%d", g.data[i*g.cols+j])
			if j < g.cols-1 {
				s += " " // separate values with space
			}
		}
		s += "]\n" // close row
	}

	return s
}
