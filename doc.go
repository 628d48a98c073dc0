// Package vispcontrib is an in-memory toolkit for extracting topological
// structure from binary raster images — connected components and
// hierarchical contour trees.
//
// 🧭 What is visp-contrib?
//
//	A pure-Go library that brings together:
//		• Pixel grids: generic, bounds-checked 2-D raster buffers
//		• Labeling: flood-queue and two-pass connected-component labelers
//		• Contours: topological border following with outer/hole nesting
//
// ✨ Why choose visp-contrib?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – single scan, no goroutines, reentrant by construction
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – option hooks (OnDegenerate) for custom bookkeeping
//
// Everything is organized under three subpackages:
//
//	pixgrid/ — Grid[T], Point, bounds-checked access & try-probes
//	label/   — Flood & TwoPass labeling, 4/8-connectivity, components
//	contour/ — Direction, border tracing, nesting tree, rasterization
//
// Quick ASCII example:
//
//	1 1 1
//	1 0 1        an outer border enclosing a one-pixel hole
//	1 1 1
//
// Dive into each package's doc.go for invariants, complexity notes and
// runnable examples.
//
//	go get github.com/s-trinh/visp-contrib
package vispcontrib
