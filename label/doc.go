// Package label assigns connected-component labels to the foreground
// pixels of a raster, producing a label grid and a component count.
//
// What:
//
//   - Flood: row-major scan + breadth-first absorption; labels follow
//     discovery order 1..Count.
//   - TwoPass: provisional labels from causal neighbors, equivalence
//     classes transitively closed to their minimal member, then rewritten.
//   - Connectivity selects 4-neighbor (N/E/S/W) or full 8-neighbor
//     adjacency; pixels join a component only through equal values.
//   - Result.Components() regroups the label grid into per-component
//     point lists.
//
// Why:
//
//   - Blob extraction: count and localize distinct foreground regions.
//   - Mask bookkeeping: turn binary segmentation output into addressable
//     regions.
//   - Algorithm cross-checking: two independent strategies over one
//     Options/Result contract, interchangeable by construction.
//
// Complexity:
//
//   - Flood:   O(rows×cols×d) time, O(rows×cols) memory (d = 4 or 8).
//   - TwoPass: O(rows×cols×d + L) time, O(rows×cols + L) memory
//     (L = provisional labels).
//
// Options:
//
//   - Options.Conn: Conn4 or Conn8 (DefaultOptions uses Conn8).
//
// Errors:
//
//   - ErrNilGrid: input grid is nil.
//   - ErrBadConnectivity: Options.Conn is neither Conn4 nor Conn8.
//
// The empty grid is a defined no-op: zero components, empty label grid,
// nil error. Label 0 always means background.
package label
