package contour

import (
	"errors"
	"fmt"

	"github.com/s-trinh/visp-contrib/pixgrid"
)

// errDegenerate signals that a counter-clockwise probe exhausted all eight
// directions without finding a nonzero neighbor. The scan rolls the border
// back and keeps going; the error never escapes Extract.
var errDegenerate = errors.New("contour: degenerate border")

// Extract traces every border of a binary raster and returns the nesting
// tree rooted at a synthetic Background node.
//
// The grid must hold only 0 (background) and 1 (foreground) pixels; any
// other value fails with ErrPixelRange. The input is never modified: the
// trace runs on an internal signed working copy. An empty grid yields the
// bare root.
//
// Borders are discovered in raster-scan order: an outer border starts at a
// foreground pixel whose west neighbor is background, a hole border at a
// foreground pixel whose east neighbor is background (the grid edge counts
// as background on both sides). Each border records the full point sequence
// of its walk, revisits included, so the point count can exceed the number
// of distinct pixels. Outer borders nest under the background or a hole,
// hole borders nest under an outer border.
//
// Complexity: O(rows×cols) time plus the total walked border length,
// O(rows×cols) memory for the working copy.
func Extract[T pixgrid.Value](g *pixgrid.Grid[T], opts Options) (*Border, error) {
	// Validate input and options
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	root := &Border{Kind: Background}
	if g.Empty() {
		return root, nil
	}

	// Widen into the signed working copy
	marker, err := markerGrid(g)
	if err != nil {
		return nil, err
	}

	// Run the raster scan
	t := &tracer{
		marker:  marker,
		borders: map[int]*Border{1: root},
		root:    root,
		opts:    opts,
		nbd:     1,
	}
	if err := t.scan(); err != nil {
		return nil, err
	}

	return shape(root, opts.Retrieval), nil
}

// markerGrid widens a binary grid into the signed working copy the tracer
// marks while following borders, rejecting any pixel outside {0, 1}.
func markerGrid[T pixgrid.Value](g *pixgrid.Grid[T]) (*pixgrid.Grid[int], error) {
	m, err := pixgrid.New[int](g.Rows(), g.Cols())
	if err != nil {
		return nil, err
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v, _ := g.TryAt(r, c)
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("contour: pixel (%d,%d) holds %d: %w", r, c, int64(v), ErrPixelRange)
			}
			if v != 0 {
				_ = m.Set(r, c, 1) // same shape as g, indices in range
			}
		}
	}

	return m, nil
}

// tracer carries the scan state of one Extract call. marker is the signed
// working copy, borders maps border ids to nodes (id 1 is the root), nbd is
// the id of the newest border and lnbd the id of the border most recently
// passed on the current row. checked records the directions rejected by the
// latest counter-clockwise probe.
type tracer struct {
	marker  *pixgrid.Grid[int]
	borders map[int]*Border
	root    *Border
	opts    Options

	nbd     int
	lnbd    int
	checked [8]bool
}

// at reads the marker pixel at p; off-grid reads count as background.
func (t *tracer) at(p pixgrid.Point) int {
	v, _ := t.marker.TryAt(p.Row, p.Col)

	return v
}

// mark overwrites the marker pixel at p, which is always on the grid here.
func (t *tracer) mark(p pixgrid.Point, v int) {
	_ = t.marker.Set(p.Row, p.Col, v)
}

// isOuterStart reports whether (row, col) opens a fresh outer border: an
// unmarked foreground pixel with background to the west.
func (t *tracer) isOuterStart(row, col int) bool {
	return t.at(pixgrid.Point{Row: row, Col: col}) == 1 &&
		t.at(pixgrid.Point{Row: row, Col: col - 1}) == 0
}

// isHoleStart reports whether (row, col) opens a fresh hole border: a
// foreground pixel, marked or not, with background to the east.
func (t *tracer) isHoleStart(row, col int) bool {
	return t.at(pixgrid.Point{Row: row, Col: col}) >= 1 &&
		t.at(pixgrid.Point{Row: row, Col: col + 1}) == 0
}

// scan sweeps the marker in raster order, opening a border at every start
// pixel and tracking lnbd across each row.
func (t *tracer) scan() error {
	for r := 0; r < t.marker.Rows(); r++ {
		t.lnbd = 1 // every row starts against the frame
		for c := 0; c < t.marker.Cols(); c++ {
			f := t.at(pixgrid.Point{Row: r, Col: c}) // value before any trace below
			outer := t.isOuterStart(r, c)
			hole := !outer && t.isHoleStart(r, c) // outer start wins when both hold

			if outer || hole {
				if err := t.startBorder(r, c, f, outer); err != nil {
					return err
				}
			}

			// Remember the border whose mark this pixel carried before the trace.
			if f != 0 && f != 1 {
				t.lnbd = abs(f)
			}
		}
	}

	return nil
}

// startBorder mints the next border id, resolves the parent of the new
// border, walks it, and files it in the borders map. A degenerate walk is
// rolled back here and the scan resumes.
func (t *tracer) startBorder(row, col, f int, outer bool) error {
	t.nbd++
	start := pixgrid.Point{Row: row, Col: col}
	from := start
	b := &Border{}

	if outer {
		from.Col-- // the background pixel that exposed the start
		b.Kind = Outer
	} else {
		if f > 1 {
			t.lnbd = f // the hole opens on an already marked pixel
		}
		from.Col++
		b.Kind = Hole
	}

	parent := t.nestingParent(b.Kind, t.borders[t.lnbd])
	parent.attach(b)

	if err := t.followBorder(start, from, b); err != nil {
		if errors.Is(err, errDegenerate) {
			t.abortBorder(start, b, parent)
			return nil
		}

		return err
	}
	if len(b.Points) == 0 {
		// No nonzero neighbor at all: the border is the start pixel alone.
		b.Points = append(b.Points, start)
		t.mark(start, -t.nbd)
	}
	t.borders[t.nbd] = b

	return nil
}

// nestingParent resolves the parent of a fresh border from the kind of the
// enclosing border (the one lnbd names): a border nests directly under an
// enclosing border of the opposite kind, and becomes a sibling of an
// enclosing border of the same kind. A nil outcome falls back to the root.
func (t *tracer) nestingParent(kind Kind, enclosing *Border) *Border {
	parent := enclosing
	switch {
	case enclosing == nil:
		parent = t.root
	case kind == Outer && enclosing.Kind == Outer,
		kind == Hole && enclosing.Kind != Outer:
		parent = enclosing.parent
	}
	if parent == nil {
		parent = t.root
	}

	return parent
}

// followBorder walks the border starting at start, whose exposing background
// neighbor is from, appending every visited pixel to b and marking the
// working copy. An empty b.Points on nil return means the start pixel has no
// nonzero neighbor and the caller closes it as a single-point border.
func (t *tracer) followBorder(start, from pixgrid.Point, b *Border) error {
	dir, err := directionBetween(start, from)
	if err != nil {
		return fmt.Errorf("contour: trace start (%d,%d): %w", start.Row, start.Col, err)
	}

	first, ok := t.searchClockwise(start, dir)
	if !ok {
		return nil
	}

	prev, cur := first, start
	for {
		dir, err = directionBetween(cur, prev)
		if err != nil {
			return fmt.Errorf("contour: trace step (%d,%d): %w", cur.Row, cur.Col, err)
		}
		next, ok := t.searchCounterClockwise(cur, dir)
		if !ok {
			return errDegenerate
		}
		t.addPoint(b, cur)

		// The walk closes when it steps onto the start again from the pixel
		// the very first step reached.
		if next == start && cur == first {
			return nil
		}
		prev, cur = cur, next
	}
}

// searchClockwise probes the neighbors of p clockwise, beginning one step
// past dir and never probing dir itself, and returns the first nonzero
// neighbor. dir points at the background pixel that exposed the start.
func (t *tracer) searchClockwise(p pixgrid.Point, dir Direction) (pixgrid.Point, bool) {
	for d := dir.CW(); d != dir; d = d.CW() {
		if n, ok := ActiveNeighbor(t.marker, p, d); ok {
			return n, true
		}
	}

	return pixgrid.Point{}, false
}

// searchCounterClockwise probes all eight neighbors of p counter-clockwise,
// beginning one step past dir, and returns the first nonzero neighbor.
// Rejected directions are recorded in t.checked for the east-edge test. The
// eighth probe is dir itself, which points at the previous border pixel, so
// the search only exhausts on a corrupted working copy.
func (t *tracer) searchCounterClockwise(p pixgrid.Point, dir Direction) (pixgrid.Point, bool) {
	t.checked = [8]bool{}
	d := dir.CCW()
	for i := 0; i < 8; i++ {
		if n, ok := ActiveNeighbor(t.marker, p, d); ok {
			return n, true
		}
		t.checked[d] = true
		d = d.CCW()
	}

	return pixgrid.Point{}, false
}

// addPoint appends p to the border and applies the marking rule: a pixel
// whose east side touches background takes the negative border id, an
// unmarked foreground pixel takes the positive id, and an already marked
// pixel keeps its mark.
func (t *tracer) addPoint(b *Border, p pixgrid.Point) {
	b.Points = append(b.Points, p)
	switch v := t.at(p); {
	case t.crossesEastEdge(p, v):
		t.mark(p, -t.nbd)
	case v == 1:
		t.mark(p, t.nbd)
	}
}

// crossesEastEdge reports whether the latest probe rejected the east
// neighbor of p, or p sits on the last column, meaning the border touches
// background on its east side there.
func (t *tracer) crossesEastEdge(p pixgrid.Point, v int) bool {
	if v == 0 {
		return false
	}

	return p.Col == t.marker.Cols()-1 || t.checked[East]
}

// abortBorder rolls a failed trace back: the partial point list is dropped,
// the start pixel keeps the negative id so later row scans step over it, and
// the node leaves the tree. The id still resolves in the borders map, to the
// parent the border would have had, so later lnbd lookups stay valid.
func (t *tracer) abortBorder(start pixgrid.Point, b *Border, parent *Border) {
	b.Points = nil
	parent.detach(b)
	t.mark(start, -t.nbd)
	t.borders[t.nbd] = parent
	if t.opts.OnDegenerate != nil {
		t.opts.OnDegenerate(start)
	}
}

// shape applies the retrieval mode to a freshly built tree.
func shape(root *Border, mode Retrieval) *Border {
	switch mode {
	case RetrieveList:
		var flat []*Border
		collect(root, &flat)
		root.children = root.children[:0]
		for _, n := range flat {
			n.parent = nil
			n.children = nil
			root.attach(n)
		}
	case RetrieveExternal:
		for _, c := range root.children {
			c.children = nil
		}
	}

	return root
}

// collect appends every descendant of b to out in depth-first pre-order.
func collect(b *Border, out *[]*Border) {
	for _, c := range b.children {
		*out = append(*out, c)
		collect(c, out)
	}
}

// abs returns the absolute value of v.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
