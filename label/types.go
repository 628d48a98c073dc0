// Package label defines core types, options, and sentinel errors for the
// label subpackage of github.com/s-trinh/visp-contrib.
package label

import (
	"errors"
	"sort"

	"github.com/s-trinh/visp-contrib/pixgrid"
)

// Sentinel errors for labeling operations.
var (
	// ErrNilGrid indicates the input grid pointer is nil.
	ErrNilGrid = errors.New("label: input grid must not be nil")
	// ErrBadConnectivity indicates Options.Conn is neither Conn4 nor Conn8.
	ErrBadConnectivity = errors.New("label: connectivity must be Conn4 or Conn8")
)

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the (dRow, dCol) neighbor table for the connectivity.
func (c Connectivity) offsets() [][2]int {
	if c == Conn4 {
		return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return [][2]int{
		{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
		{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	}
}

// causalOffsets returns the already-scanned neighbor table for the
// connectivity: N + W for Conn4; NW, N, NE + W for Conn8.
func (c Connectivity) causalOffsets() [][2]int {
	if c == Conn4 {
		return [][2]int{{-1, 0}, {0, -1}}
	}

	return [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}
}

// Options contains tunable parameters for component labeling.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns an Options with default settings: Conn=Conn8.
func DefaultOptions() Options {
	return Options{Conn: Conn8}
}

// validate reports whether the options are usable.
func (o Options) validate() error {
	if o.Conn != Conn4 && o.Conn != Conn8 {
		return ErrBadConnectivity
	}

	return nil
}

// Result carries the outcome of a labeling pass: a label grid with the same
// dimensions as the input (0 = background) and the number of components.
// Flood numbers components 1..Count in discovery order; TwoPass keeps the
// minimal member of each equivalence class, so its labels may have gaps.
type Result struct {
	Labels *pixgrid.Grid[int]
	Count  int
}

// Components regroups the label grid into per-component point lists,
// ordered by ascending label; points within a component follow row-major
// scan order.
// Time: O(rows×cols + Count·log Count), Memory: O(foreground).
func (r *Result) Components() [][]pixgrid.Point {
	if r == nil || r.Labels == nil || r.Labels.Empty() {
		return nil
	}

	byLabel := make(map[int][]pixgrid.Point)
	for row := 0; row < r.Labels.Rows(); row++ {
		for col := 0; col < r.Labels.Cols(); col++ {
			l, _ := r.Labels.TryAt(row, col)
			if l == 0 {
				continue // background
			}
			byLabel[l] = append(byLabel[l], pixgrid.Point{Row: row, Col: col})
		}
	}

	order := make([]int, 0, len(byLabel))
	for l := range byLabel {
		order = append(order, l)
	}
	sort.Ints(order)

	comps := make([][]pixgrid.Point, 0, len(order))
	for _, l := range order {
		comps = append(comps, byLabel[l])
	}

	return comps
}
