package contour

import (
	"fmt"

	"github.com/s-trinh/visp-contrib/pixgrid"
)

// Direction is one of the eight compass steps between a pixel and a
// neighbor, ordered clockwise so that rotation is ±1 modulo 8.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Row and column deltas, indexed by Direction in clockwise order.
var (
	dRow = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
	dCol = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

var directionNames = [8]string{
	"North", "NorthEast", "East", "SouthEast",
	"South", "SouthWest", "West", "NorthWest",
}

// CW returns the direction one step clockwise.
func (d Direction) CW() Direction {
	return (d + 1) % 8
}

// CCW returns the direction one step counter-clockwise.
func (d Direction) CCW() Direction {
	return (d + 7) % 8
}

// Delta returns the row and column offsets of one step along d.
func (d Direction) Delta() (dr, dc int) {
	return dRow[d], dCol[d]
}

// Next returns the neighbor of p one step along d.
func (d Direction) Next(p pixgrid.Point) pixgrid.Point {
	return pixgrid.Point{Row: p.Row + dRow[d], Col: p.Col + dCol[d]}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d > NorthWest {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return directionNames[d]
}

// ActiveNeighbor probes the neighbor of p one step along d and returns it
// when it lies inside g and holds a nonzero value. Out-of-grid neighbors
// count as background: ok=false.
func ActiveNeighbor[T pixgrid.Value](g *pixgrid.Grid[T], p pixgrid.Point, d Direction) (pixgrid.Point, bool) {
	n := d.Next(p)
	if v, ok := g.TryAt(n.Row, n.Col); ok && v != 0 {
		return n, true
	}

	return pixgrid.Point{}, false
}

// directionBetween reports the compass step leading from one 8-neighbor to
// another. Identical points have no direction: ErrSamePoint.
func directionBetween(from, to pixgrid.Point) (Direction, error) {
	if from.Row == to.Row {
		switch {
		case from.Col < to.Col:
			return East, nil
		case from.Col > to.Col:
			return West, nil
		default:
			return North, ErrSamePoint
		}
	}
	if from.Row < to.Row { // stepping down
		switch {
		case from.Col == to.Col:
			return South, nil
		case from.Col < to.Col:
			return SouthEast, nil
		default:
			return SouthWest, nil
		}
	}
	// stepping up
	switch {
	case from.Col == to.Col:
		return North, nil
	case from.Col < to.Col:
		return NorthEast, nil
	default:
		return NorthWest, nil
	}
}
