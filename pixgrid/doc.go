// Package pixgrid provides the shared raster primitive for
// github.com/s-trinh/visp-contrib: a generic, bounds-checked,
// row-major 2-D pixel buffer.
//
// What:
//
//   - Grid[T] stores rows×cols cells of any signed-integer kind in a flat slice.
//   - Point addresses a cell by (Row, Col).
//   - At/Set fail outside the grid; TryAt returns a sentinel instead of an
//     error and is the accessor every border probe uses.
//   - Resize, Clear, Clone and FromRows cover buffer lifecycle.
//
// Why:
//
//   - Binary images, label maps and contour marker grids all share one
//     addressing discipline and one bounds policy.
//   - A "try" accessor keeps neighbor probes branch-cheap: off-grid reads
//     are ordinary misses, never faults.
//
// Complexity:
//
//   - At / TryAt / Set: O(1).
//   - New / FromRows / Resize / Clear / Clone: O(rows×cols).
//
// Errors:
//
//   - ErrInvalidDimensions: negative row or column count.
//   - ErrOutOfRange: index outside [0,rows)×[0,cols).
//   - ErrRaggedRows: FromRows input rows differ in length.
//
// The zero-by-zero grid is legal: empty input is a defined no-op for both
// the labeling and the contour packages.
package pixgrid
