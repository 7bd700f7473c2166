// Package bfs provides breadth-first search over a core.BondGraph,
// returning bond-count distances, parent links, and visit order.
//
// BFS explores atoms in increasing distance from a start atom and stops
// early when its context is cancelled. Forest repeats the search from a list of seeds so every atom ends up in some tree.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/molalign/core"
)

// queueItem pairs an atom with its BFS depth and its parent.
type queueItem struct {
	atom   int
	depth  int
	parent int // NoParent for a root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.BondGraph
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartAtomOutOfRange for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *core.BondGraph, start int, opts ...Option) (*BFSResult, error) {
	return Forest(g, []int{start}, opts...)
}

// Forest runs BFS from each seed in turn, skipping seeds already reached by
// an earlier tree. With seeds covering every atom the result visits the whole
// graph, one tree per connected component.
//
// Determinism:
//
//	Seeds are processed in the given order and neighbours are enqueued in
//	ascending index order (BondGraph.Neighbors is sorted), so the visit
//	sequence is fully reproducible.
func Forest(g *core.BondGraph, seeds []int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	for _, s := range seeds {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d (graph has %d atoms)", ErrStartAtomOutOfRange, s, n)
		}
	}

	w := &walker{
		graph:   g,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = NoParent
	}

	for _, s := range seeds {
		if w.visited[s] {
			continue
		}
		w.res.Roots = append(w.res.Roots, s)
		// Seed queue with the root (no parent)
		w.enqueue(s, 0, NoParent)
		if err := w.loop(); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// enqueue marks atom visited at depth d, records its parent and adds it to
// the queue.
func (w *walker) enqueue(atom, d, parent int) {
	w.visited[atom] = true
	w.res.Depth[atom] = d
	w.res.Parent[atom] = parent
	w.queue = append(w.queue, queueItem{atom: atom, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.atom)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors enqueues each unseen neighbour in ascending index order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.atom)
	if err != nil {
		return fmt.Errorf("bfs: neighbours of atom %d: %w", item.atom, err)
	}
	for _, nbr := range neighbors {
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1, item.atom)
		}
	}

	return nil
}
