// Package contour defines core types, options, and sentinel errors for the
// contour subpackage of github.com/s-trinh/visp-contrib.
package contour

import (
	"errors"

	"github.com/s-trinh/visp-contrib/pixgrid"
)

// Sentinel errors for contour extraction.
var (
	// ErrNilGrid indicates the input grid pointer is nil.
	ErrNilGrid = errors.New("contour: input grid must not be nil")
	// ErrNilBorder indicates a nil border was passed where a tree is required.
	ErrNilBorder = errors.New("contour: border must not be nil")
	// ErrPixelRange indicates tracer input holding values other than 0 or 1.
	ErrPixelRange = errors.New("contour: tracer input pixels must be 0 or 1")
	// ErrSamePoint indicates a directional step between identical points,
	// an internal tracer invariant violation. Fatal for the extraction.
	ErrSamePoint = errors.New("contour: directional step between identical points")
	// ErrBadRetrieval indicates Options.Retrieval is not a known mode.
	ErrBadRetrieval = errors.New("contour: unknown retrieval mode")
)

// Kind classifies a border node within the nesting tree.
type Kind uint8

const (
	// Background is the synthetic root enclosing everything.
	Background Kind = iota
	// Outer separates a foreground region from its enclosing background.
	Outer
	// Hole separates a background region enclosed within a foreground region.
	Hole
)

var kindNames = [...]string{"Background", "Outer", "Hole"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Kind(?)"
	}

	return kindNames[k]
}

// Retrieval selects how the extracted borders are shaped before return.
type Retrieval uint8

const (
	// RetrieveTree keeps the full outer/hole nesting hierarchy.
	RetrieveTree Retrieval = iota
	// RetrieveList re-parents every border flat under the root.
	RetrieveList
	// RetrieveExternal keeps only the outermost outer borders.
	RetrieveExternal
)

// Border is one node of the nesting tree: its kind, the ordered sequence of
// boundary points visited by the trace (a pixel reappears if the walk
// revisits it), an owned child list and a non-owning parent reference.
// Extract returns the unique Background root, which owns all descendants.
type Border struct {
	Kind   Kind
	Points []pixgrid.Point

	parent   *Border
	children []*Border
}

// Parent returns the enclosing border, nil for the root.
func (b *Border) Parent() *Border {
	return b.parent
}

// Children returns a copy of the owned child list.
func (b *Border) Children() []*Border {
	out := make([]*Border, len(b.children))
	copy(out, b.children)

	return out
}

// Walk visits b and every descendant depth-first in pre-order, passing each
// node and its depth relative to b (0 for b itself). Traversal stops at the
// first error, which is returned.
func (b *Border) Walk(fn func(node *Border, depth int) error) error {
	return b.walk(0, fn)
}

func (b *Border) walk(depth int, fn func(*Border, int) error) error {
	if err := fn(b, depth); err != nil {
		return err
	}
	for _, c := range b.children {
		if err := c.walk(depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}

// attach links child under b, keeping parent and child list consistent.
func (b *Border) attach(child *Border) {
	child.parent = b
	b.children = append(b.children, child)
}

// detach unlinks child from b; no-op when child is not among b's children.
func (b *Border) detach(child *Border) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Options contains tunable parameters for contour extraction.
type Options struct {
	// Retrieval shapes the returned tree: full hierarchy, flat list, or
	// outermost borders only.
	Retrieval Retrieval
	// OnDegenerate, when set, is invoked with the start pixel of every
	// border whose trace was abandoned (see Extract). Useful for counting
	// or logging; must not retain the point past the call.
	OnDegenerate func(pixgrid.Point)
}

// DefaultOptions returns an Options with default settings:
// Retrieval=RetrieveTree, no degenerate hook.
func DefaultOptions() Options {
	return Options{Retrieval: RetrieveTree}
}

// validate reports whether the options are usable.
func (o Options) validate() error {
	switch o.Retrieval {
	case RetrieveTree, RetrieveList, RetrieveExternal:
		return nil
	default:
		return ErrBadRetrieval
	}
}
