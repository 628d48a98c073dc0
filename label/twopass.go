package label

import "github.com/s-trinh/visp-contrib/pixgrid"

// TwoPass labels connected components with the classical two-scan strategy.
// Pass 1 assigns each foreground pixel a provisional label taken from its
// already-scanned causal neighbors (N + W for Conn4; NW, N, NE + W for
// Conn8) holding the same value; with no labeled neighbor it mints the next
// label, with several it adopts the smallest and records all of them as
// mutually equivalent. The equivalence relation is then transitively closed,
// every class collapses to its minimal member, and pass 2 rewrites each
// provisional label to its class representative. Count is the number of
// classes; representative labels may be non-contiguous.
//
// Time:   O(rows×cols×d + L²) worst case, L = provisional labels.
// Memory: O(rows×cols + L).
func TwoPass[T pixgrid.Value](g *pixgrid.Grid[T], opts Options) (*Result, error) {
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

	offs := opts.Conn.causalOffsets()

	// equiv[l] is the set of labels observed equivalent to l; index 0 unused.
	equiv := make([]map[int]struct{}, 1, 64)
	next := 1

	// 1) First pass: provisional labels + equivalence recording.
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v, _ := g.TryAt(row, col)
			if v == 0 {
				continue // background
			}

			smallest := 0
			var seen []int
			for _, d := range offs {
				nr, nc := row+d[0], col+d[1]
				nv, ok := g.TryAt(nr, nc)
				if !ok || nv != v {
					continue
				}
				nl, _ := labels.TryAt(nr, nc)
				if nl == 0 {
					continue
				}
				seen = append(seen, nl)
				if smallest == 0 || nl < smallest {
					smallest = nl
				}
			}

			if smallest == 0 {
				// No labeled neighbor: mint a fresh label in its own class.
				equiv = append(equiv, map[int]struct{}{next: {}})
				_ = labels.Set(row, col, next)
				next++
				continue
			}

			_ = labels.Set(row, col, smallest)
			for _, a := range seen {
				for _, b := range seen {
					equiv[a][b] = struct{}{}
				}
			}
		}
	}

	// 2) Transitive closure: walk each equivalence class breadth-first and
	// map every member to the class minimum. The recorded relation is
	// symmetric, so the ascending scan reaches each class at its minimal
	// member first and l is that minimum.
	rep := make([]int, next) // provisional label -> representative
	count := 0
	work := make([]int, 0, 16)
	for l := 1; l < next; l++ {
		if rep[l] != 0 {
			continue // already assigned to a class
		}
		count++

		work = append(work[:0], l)
		rep[l] = l
		for qi := 0; qi < len(work); qi++ {
			for m := range equiv[work[qi]] {
				if rep[m] == 0 {
					rep[m] = l
					work = append(work, m)
				}
			}
		}
	}

	// 3) Second pass: rewrite provisional labels to representatives.
	for row := 0; row < labels.Rows(); row++ {
		for col := 0; col < labels.Cols(); col++ {
			if l, _ := labels.TryAt(row, col); l != 0 {
				_ = labels.Set(row, col, rep[l])
			}
		}
	}

	return &Result{Labels: labels, Count: count}, nil
}
