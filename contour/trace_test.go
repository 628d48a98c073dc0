package contour_test

import (
	"testing"

	"github.com/s-trinh/visp-contrib/contour"
	"github.com/s-trinh/visp-contrib/pixgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid builds a grid from rows or fails the test.
func mustGrid(t *testing.T, rows [][]int) *pixgrid.Grid[int] {
	t.Helper()
	g, err := pixgrid.FromRows(rows)
	require.NoError(t, err, "fixture must construct")
	return g
}

// mustExtract traces a grid with the given options or fails the test.
func mustExtract(t *testing.T, g *pixgrid.Grid[int], opts contour.Options) *contour.Border {
	t.Helper()
	root, err := contour.Extract(g, opts)
	require.NoError(t, err, "extraction must succeed")
	require.NotNil(t, root, "extraction must return a root")
	return root
}

// pts is shorthand for building expected point sequences.
func pts(rc ...int) []pixgrid.Point {
	out := make([]pixgrid.Point, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		out = append(out, pixgrid.Point{Row: rc[i], Col: rc[i+1]})
	}
	return out
}

// donut is a 3×3 ring: eight foreground pixels around one background pixel.
func donut() [][]int {
	return [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
}

// nestedRing is a 5×5 ring enclosing a lone island pixel, three borders deep:
// outer ring, its hole, and the single-pixel island inside the hole.
func nestedRing() [][]int {
	return [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}
}

// twoShapes is a 14×10 scene with two 8-connected shapes: the upper one
// encloses one hole, the lower one encloses two (one of them a single
// background pixel).
func twoShapes() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 1, 1, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

// borderPixels computes the reference border set of a binary grid: every
// foreground pixel with at least one background 4-neighbor, the grid edge
// counting as background.
func borderPixels(g *pixgrid.Grid[int]) map[pixgrid.Point]bool {
	out := make(map[pixgrid.Point]bool)
	steps := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if v, _ := g.TryAt(row, col); v == 0 {
				continue
			}
			for _, s := range steps {
				if nv, ok := g.TryAt(row+s[0], col+s[1]); !ok || nv == 0 {
					out[pixgrid.Point{Row: row, Col: col}] = true
					break
				}
			}
		}
	}
	return out
}

// paintedPixels flattens a rasterized grid back into a point set.
func paintedPixels(g *pixgrid.Grid[int]) map[pixgrid.Point]bool {
	out := make(map[pixgrid.Point]bool)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if v, _ := g.TryAt(row, col); v != 0 {
				out[pixgrid.Point{Row: row, Col: col}] = true
			}
		}
	}
	return out
}

// assertNesting verifies the structural rules of a border tree: the root is
// the only Background node, outer borders hang under the background or a
// hole, and hole borders hang under an outer border.
func assertNesting(t *testing.T, root *contour.Border) {
	t.Helper()
	require.Equal(t, contour.Background, root.Kind, "root must be the background node")
	assert.Nil(t, root.Parent(), "root has no parent")

	err := root.Walk(func(n *contour.Border, depth int) error {
		if n == root {
			return nil
		}
		require.NotNil(t, n.Parent(), "non-root border at depth %d must have a parent", depth)
		switch n.Kind {
		case contour.Outer:
			assert.NotEqual(t, contour.Outer, n.Parent().Kind, "outer border must not nest under another outer")
		case contour.Hole:
			assert.Equal(t, contour.Outer, n.Parent().Kind, "hole border must nest under an outer")
		default:
			t.Errorf("unexpected kind %v below the root", n.Kind)
		}
		return nil
	})
	require.NoError(t, err, "walk must not fail")
}

// TestExtract_NilGrid verifies the nil-grid contract.
func TestExtract_NilGrid(t *testing.T) {
	_, err := contour.Extract[int](nil, contour.DefaultOptions())
	assert.ErrorIs(t, err, contour.ErrNilGrid, "nil grid must error")
}

// TestExtract_BadRetrieval verifies option validation.
func TestExtract_BadRetrieval(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})
	_, err := contour.Extract(g, contour.Options{Retrieval: contour.Retrieval(9)})
	assert.ErrorIs(t, err, contour.ErrBadRetrieval, "unknown retrieval mode must error")
}

// TestExtract_PixelRange verifies that values outside {0, 1} are rejected.
func TestExtract_PixelRange(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}, {2, 0}})
	_, err := contour.Extract(g, contour.DefaultOptions())
	assert.ErrorIs(t, err, contour.ErrPixelRange, "value 2 must be rejected")
}

// TestExtract_EmptyGrid verifies the 0×0 grid yields the bare root.
func TestExtract_EmptyGrid(t *testing.T) {
	g, err := pixgrid.New[int](0, 0)
	require.NoError(t, err)

	root := mustExtract(t, g, contour.DefaultOptions())
	assert.Equal(t, contour.Background, root.Kind, "root is the background node")
	assert.Empty(t, root.Children(), "empty grid has no borders")
	assert.Empty(t, root.Points, "root carries no points")
}

// TestExtract_AllBackground verifies a zero-filled grid yields the bare root.
func TestExtract_AllBackground(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})

	root := mustExtract(t, g, contour.DefaultOptions())
	assert.Empty(t, root.Children(), "all-background grid has no borders")
}

// TestExtract_SinglePixel verifies the isolated-pixel case: one outer border
// holding exactly the start point.
func TestExtract_SinglePixel(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})

	root := mustExtract(t, g, contour.DefaultOptions())
	require.Len(t, root.Children(), 1, "one border expected")

	b := root.Children()[0]
	assert.Equal(t, contour.Outer, b.Kind, "isolated pixel forms an outer border")
	assert.Equal(t, pts(0, 0), b.Points, "border is the pixel itself")
	assert.Same(t, root, b.Parent(), "border hangs under the root")
	assert.Empty(t, b.Children(), "nothing nests inside")
}

// TestExtract_Strip verifies the exact walk of a 1×3 strip, including the
// revisit of the middle pixel on the way back.
func TestExtract_Strip(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 1}})

	root := mustExtract(t, g, contour.DefaultOptions())
	require.Len(t, root.Children(), 1, "one border expected")

	b := root.Children()[0]
	assert.Equal(t, contour.Outer, b.Kind)
	assert.Equal(t, pts(0, 0, 0, 1, 0, 2, 0, 1), b.Points,
		"walk goes out along the strip and back through the middle")
}

// TestExtract_Donut verifies the exact point sequences of a ring: the outer
// border walked counter-clockwise from its start, and the hole border around
// the central background pixel.
func TestExtract_Donut(t *testing.T) {
	g := mustGrid(t, donut())

	root := mustExtract(t, g, contour.DefaultOptions())
	require.Len(t, root.Children(), 1, "one outer border expected")

	outer := root.Children()[0]
	assert.Equal(t, contour.Outer, outer.Kind)
	assert.Equal(t,
		pts(0, 0, 1, 0, 2, 0, 2, 1, 2, 2, 1, 2, 0, 2, 0, 1),
		outer.Points, "outer border walks the full ring")

	require.Len(t, outer.Children(), 1, "the ring encloses one hole")
	hole := outer.Children()[0]
	assert.Equal(t, contour.Hole, hole.Kind)
	assert.Equal(t, pts(1, 0, 0, 1, 1, 2, 2, 1), hole.Points,
		"hole border visits the four pixels around the center")
	assert.Same(t, outer, hole.Parent(), "hole hangs under the outer border")
	assert.Empty(t, hole.Children(), "nothing nests inside the hole")
}

// TestExtract_NestedRing verifies three levels of nesting: ring, hole,
// island, with the island detected as a single-point border.
func TestExtract_NestedRing(t *testing.T) {
	g := mustGrid(t, nestedRing())

	root := mustExtract(t, g, contour.DefaultOptions())
	require.Len(t, root.Children(), 1)

	outer := root.Children()[0]
	assert.Equal(t, contour.Outer, outer.Kind)
	assert.Len(t, outer.Points, 16, "outer border covers the 5×5 perimeter")

	require.Len(t, outer.Children(), 1)
	hole := outer.Children()[0]
	assert.Equal(t, contour.Hole, hole.Kind)
	assert.Len(t, hole.Points, 12, "hole border runs inside the ring")

	require.Len(t, hole.Children(), 1)
	island := hole.Children()[0]
	assert.Equal(t, contour.Outer, island.Kind)
	assert.Equal(t, pts(2, 2), island.Points, "island is a single-point border")
	assert.Empty(t, island.Children())

	assertNesting(t, root)
}

// TestExtract_TwoShapes verifies the border census of a two-shape scene:
// each shape contributes one outer border, the upper shape one hole, the
// lower shape two.
func TestExtract_TwoShapes(t *testing.T) {
	g := mustGrid(t, twoShapes())

	degenerate := 0
	opts := contour.DefaultOptions()
	opts.OnDegenerate = func(pixgrid.Point) { degenerate++ }

	root := mustExtract(t, g, opts)
	assert.Zero(t, degenerate, "no border rolls back on a clean scene")
	assertNesting(t, root)

	outers := root.Children()
	require.Len(t, outers, 2, "two shapes, two outer borders")
	assert.Equal(t, contour.Outer, outers[0].Kind)
	assert.Equal(t, contour.Outer, outers[1].Kind)

	require.Len(t, outers[0].Children(), 1, "upper shape encloses one hole")
	assert.Equal(t, contour.Hole, outers[0].Children()[0].Kind)

	require.Len(t, outers[1].Children(), 2, "lower shape encloses two holes")
	for _, h := range outers[1].Children() {
		assert.Equal(t, contour.Hole, h.Kind)
		assert.Empty(t, h.Children(), "holes here enclose nothing")
	}
}

// TestExtract_RoundTrip verifies that rasterizing the border tree recovers
// exactly the foreground pixels that touch background through a 4-neighbor,
// on every fixture.
func TestExtract_RoundTrip(t *testing.T) {
	fixtures := map[string][][]int{
		"donut":      donut(),
		"nestedRing": nestedRing(),
		"twoShapes":  twoShapes(),
		"strip":      {{1, 1, 1}},
	}

	for name, rows := range fixtures {
		g := mustGrid(t, rows)
		root := mustExtract(t, g, contour.DefaultOptions())

		painted, err := contour.Rasterize(root, g.Rows(), g.Cols())
		require.NoError(t, err, "%s: rasterize must succeed", name)
		assert.Equal(t, borderPixels(g), paintedPixels(painted),
			"%s: painted borders must match the 4-neighbor border set", name)
	}
}

// TestExtract_InputUntouched verifies the input grid survives extraction
// bit for bit.
func TestExtract_InputUntouched(t *testing.T) {
	g := mustGrid(t, donut())
	before := g.String()

	mustExtract(t, g, contour.DefaultOptions())
	assert.Equal(t, before, g.String(), "extraction must not modify its input")
}

// TestExtract_RetrieveList verifies the flat shaping: every border becomes a
// direct child of the root, in pre-order, with no nesting left.
func TestExtract_RetrieveList(t *testing.T) {
	g := mustGrid(t, nestedRing())

	root := mustExtract(t, g, contour.Options{Retrieval: contour.RetrieveList})
	flat := root.Children()
	require.Len(t, flat, 3, "ring, hole and island all flatten under the root")

	assert.Equal(t, contour.Outer, flat[0].Kind)
	assert.Equal(t, contour.Hole, flat[1].Kind)
	assert.Equal(t, contour.Outer, flat[2].Kind)
	for i, b := range flat {
		assert.Same(t, root, b.Parent(), "border %d reparents to the root", i)
		assert.Empty(t, b.Children(), "border %d keeps no children", i)
	}
}

// TestExtract_RetrieveExternal verifies the outermost shaping: only the
// root's direct children survive, stripped of their descendants.
func TestExtract_RetrieveExternal(t *testing.T) {
	g := mustGrid(t, nestedRing())

	root := mustExtract(t, g, contour.Options{Retrieval: contour.RetrieveExternal})
	require.Len(t, root.Children(), 1, "only the outermost border remains")

	outer := root.Children()[0]
	assert.Equal(t, contour.Outer, outer.Kind)
	assert.Len(t, outer.Points, 16, "the kept border is intact")
	assert.Empty(t, outer.Children(), "nested borders are dropped")
}

// TestExtract_Int8Input verifies extraction over a narrow pixel type.
func TestExtract_Int8Input(t *testing.T) {
	g, err := pixgrid.FromRows([][]int8{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	root, err := contour.Extract(g, contour.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, root.Children(), 1)
	assert.Len(t, root.Children()[0].Points, 8, "ring outer border has 8 points")
}

// TestBorder_Walk verifies pre-order traversal, depths, and early stop.
func TestBorder_Walk(t *testing.T) {
	g := mustGrid(t, nestedRing())
	root := mustExtract(t, g, contour.DefaultOptions())

	var kinds []contour.Kind
	var depths []int
	err := root.Walk(func(n *contour.Border, depth int) error {
		kinds = append(kinds, n.Kind)
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []contour.Kind{contour.Background, contour.Outer, contour.Hole, contour.Outer}, kinds,
		"walk visits root, ring, hole, island in order")
	assert.Equal(t, []int{0, 1, 2, 3}, depths, "depths grow along the nesting chain")

	stop := assert.AnError
	visited := 0
	err = root.Walk(func(*contour.Border, int) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop, "walk surfaces the callback error")
	assert.Equal(t, 2, visited, "walk stops at the failing node")
}

// TestRasterize_Errors verifies the failure modes of painting a tree.
func TestRasterize_Errors(t *testing.T) {
	_, err := contour.Rasterize(nil, 3, 3)
	assert.ErrorIs(t, err, contour.ErrNilBorder, "nil root must error")

	g := mustGrid(t, donut())
	root := mustExtract(t, g, contour.DefaultOptions())

	_, err = contour.Rasterize(root, -1, 3)
	assert.ErrorIs(t, err, pixgrid.ErrInvalidDimensions, "negative dimensions must error")

	_, err = contour.Rasterize(root, 2, 2)
	assert.ErrorIs(t, err, pixgrid.ErrOutOfRange, "points outside the target grid must error")
}
