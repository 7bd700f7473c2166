// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.BondGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartAtomOutOfRange is returned when a start atom is not in 0..n-1.
	ErrStartAtomOutOfRange = errors.New("bfs: start atom out of range")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// NoParent marks a tree root in BFSResult.Parent.
const NoParent = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters for a BFS run.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. It is checked once per dequeue.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions bound to context.Background().
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets the context for cancellation. A nil ctx is an
// ErrOptionViolation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: atoms visited, in visit sequence.
//   - Depth: Depth[i] is the bond distance of atom i from its tree root,
//     or -1 if i was not reached.
//   - Parent: Parent[i] is the predecessor of i in the BFS tree, NoParent
//     for roots and unreached atoms.
//   - Roots: the tree roots, in the order their trees were explored.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
	Roots  []int
}

// Reached reports whether atom i was visited.
func (r *BFSResult) Reached(i int) bool {
	return i >= 0 && i < len(r.Depth) && r.Depth[i] >= 0
}

// PathTo reconstructs the path from the tree root of dest to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to atom %d", dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
