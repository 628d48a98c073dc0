// Package pixgrid defines the core types and sentinel errors shared by the
// raster-processing packages of github.com/s-trinh/visp-contrib.
package pixgrid

import "errors"

// Sentinel errors for pixgrid operations.
var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("pixgrid: dimensions must be non-negative")
	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("pixgrid: index out of range")
	// ErrRaggedRows indicates FromRows input rows of differing lengths.
	ErrRaggedRows = errors.New("pixgrid: all rows must have the same length")
)

// Value constrains grid cells to the signed-integer kinds raster values,
// labels and signed border markers need.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Point addresses a single cell. Row grows downward, Col grows rightward,
// matching raster scan order.
type Point struct {
	Row, Col int
}
