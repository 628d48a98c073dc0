package label

import "github.com/s-trinh/visp-contrib/pixgrid"

// checkInput validates the shared entry contract of both labelers.
func checkInput[T pixgrid.Value](g *pixgrid.Grid[T], opts Options) error {
	if g == nil {
		return ErrNilGrid
	}

	return opts.validate()
}

// pushEqualNeighbors appends to queue every neighbor of p whose value
// equals v, according to the offset table. Off-grid probes are misses.
func pushEqualNeighbors[T pixgrid.Value](work *pixgrid.Grid[T], queue []pixgrid.Point, p pixgrid.Point, v T, offs [][2]int) []pixgrid.Point {
	for _, d := range offs {
		nr, nc := p.Row+d[0], p.Col+d[1]
		if nv, ok := work.TryAt(nr, nc); ok && nv == v {
			queue = append(queue, pixgrid.Point{Row: nr, Col: nc})
		}
	}

	return queue
}

// Flood labels connected components by row-major scan plus breadth-first
// absorption. Each unvisited foreground pixel opens the next component;
// the queue then absorbs every reachable neighbor holding the same value,
// zeroing visited pixels in a working clone so each is processed once.
// Labels are assigned in discovery order 1..Count; the input is never
// mutated. The empty grid yields Count 0 and an empty label grid.
//
// Time:   O(rows×cols×d), where d = 4 or 8.
// Memory: O(rows×cols) for the working clone, label grid and queue.
func Flood[T pixgrid.Value](g *pixgrid.Grid[T], opts Options) (*Result, error) {
	if err := checkInput(g, opts); err != nil {
		return nil, err
	}

	labels, err := pixgrid.New[int](g.Rows(), g.Cols())
	if err != nil {
		return nil, err
	}
	if g.Empty() {
		return &Result{Labels: labels, Count: 0}, nil
	}

	work := g.Clone() // visited pixels are zeroed here, input stays intact
	offs := opts.Conn.offsets()
	queue := make([]pixgrid.Point, 0, 64)
	next := 1

	for row := 0; row < work.Rows(); row++ {
		for col := 0; col < work.Cols(); col++ {
			seed, _ := work.TryAt(row, col)
			if seed == 0 {
				continue // background or already absorbed
			}

			// 1) Open the component at the seed pixel.
			queue = pushEqualNeighbors(work, queue[:0], pixgrid.Point{Row: row, Col: col}, seed, offs)
			_ = work.Set(row, col, 0)
			_ = labels.Set(row, col, next)

			// 2) Absorb equal-valued neighbors breadth-first.
			for qi := 0; qi < len(queue); qi++ {
				p := queue[qi]
				v, _ := work.TryAt(p.Row, p.Col)
				if v == 0 {
					continue // enqueued more than once, already absorbed
				}
				queue = pushEqualNeighbors(work, queue, p, v, offs)
				_ = work.Set(p.Row, p.Col, 0)
				_ = labels.Set(p.Row, p.Col, next)
			}

			// 3) Close the component.
			next++
		}
	}

	return &Result{Labels: labels, Count: next - 1}, nil
}
