// Package contour follows the borders of a binary raster and organizes them
// into a nesting tree of outer borders and hole borders.
//
// What:
//
//   - Extract: raster scan + border following over a signed working copy;
//     returns the tree rooted at a synthetic Background node.
//   - Border: one traced border with its Kind, ordered point sequence,
//     Parent/Children accessors and a pre-order Walk.
//   - Retrieval modes: the full hierarchy (RetrieveTree), everything
//     flattened under the root (RetrieveList), or only the outermost
//     borders (RetrieveExternal).
//   - Rasterize: paints a border tree back onto a fresh grid.
//   - Direction: the eight compass steps with CW/CCW rotation, deltas and
//     neighbor probing, shared by the tracer and exported for callers.
//
// Why:
//
//   - Shape analysis: borders carry topology (what encloses what), which
//     plain component labeling cannot express.
//   - Downstream geometry: ordered border points feed polygon fitting,
//     perimeter measures and curvature estimates directly.
//   - Mask round-trips: Rasterize recovers the border pixels of a traced
//     image for overlay or verification.
//
// How the trace works:
//
// The scan walks the working copy in raster order, keeping two counters:
// the id of the newest border (incremented at every start pixel) and the id
// of the border most recently passed on the current row. A foreground pixel
// with background to its west opens an outer border; one with background to
// its east opens a hole border. The walk around a border probes neighbors
// counter-clockwise from the arrival direction and stamps every visited
// pixel with the border id, negated where the border touches background to
// the east. Those stamps are what later start-pixel tests and parent
// lookups read, so each pixel is claimed exactly once and nesting falls out
// of the row context. A walk that cannot advance is rolled back: its points
// are discarded, its start pixel keeps the negated id, and the optional
// OnDegenerate hook observes the start point.
//
// Options:
//
//   - Options.Retrieval: tree shaping mode (DefaultOptions keeps the tree).
//   - Options.OnDegenerate: callback per rolled-back border, nil to ignore.
//
// Errors:
//
//   - ErrNilGrid: input grid is nil.
//   - ErrNilBorder: Rasterize received a nil root.
//   - ErrPixelRange: a pixel outside {0, 1} reached Extract.
//   - ErrSamePoint: internal step between identical points; fatal, and not
//     produced by any input that passes validation.
//   - ErrBadRetrieval: Options.Retrieval is not a known mode.
//
// The empty grid yields the bare Background root and nil error. The input
// grid is never modified.
package contour
