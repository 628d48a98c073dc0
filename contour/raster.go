package contour

import "github.com/s-trinh/visp-contrib/pixgrid"

// Rasterize paints every point of the border tree rooted at root onto a
// fresh rows×cols grid as 1-pixels, leaving background zero. The root node
// itself carries no points, so rasterizing a bare root yields an all-zero
// grid.
//
// Fails with ErrNilBorder on a nil root, pixgrid.ErrInvalidDimensions on
// negative dimensions, and a wrapped pixgrid.ErrOutOfRange when a border
// point falls outside the requested grid.
//
// Complexity: O(rows×cols + total border length) time.
func Rasterize(root *Border, rows, cols int) (*pixgrid.Grid[int], error) {
	if root == nil {
		return nil, ErrNilBorder
	}
	g, err := pixgrid.New[int](rows, cols)
	if err != nil {
		return nil, err
	}

	// Paint the walked points of every node, the synthetic root included
	// (its point list is empty unless the caller filled it).
	err = root.Walk(func(n *Border, _ int) error {
		for _, p := range n.Points {
			if err := g.Set(p.Row, p.Col, 1); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}
