//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package search builds the best-first search tree of §4.7 on top of
// internal/movegen's Evaluate/Apply: width-controlled expansion passes,
// mean-of-children backpropagation and a ranked root-move accessor.
package search

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	gologging "github.com/op/go-logging"

	"github.com/kopfjaeger/branchmate/internal/config"
	"github.com/kopfjaeger/branchmate/internal/logging"
	"github.com/kopfjaeger/branchmate/internal/movegen"
	"github.com/kopfjaeger/branchmate/internal/position"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// node is one entry of the dense, monotonically growing node store
// (§5: "single-writer semantics"). pendingMoves holds the legal moves
// the node's own evaluation already computed, so expanding it never
// needs to call movegen.Evaluate a second time; it is cleared once the
// node has been expanded.
type node struct {
	pos          position.Position
	parentMove   Move
	score        Value
	state        movegen.GameState
	depth        int
	pendingMoves []Move
}

// Tree is the best-first search tree described by §4.7. Nodes are
// addressed by dense integer ids starting at 0 (root); parent and
// children are the auxiliary maps the spec names explicitly.
type Tree struct {
	log         *gologging.Logger
	seed        int64
	expandStyle ExpandStyle
	playingSide Color
	workers     int

	nodes    []node
	parent   []int
	children [][]int
	frontier []int
	depth    int
}

// NewTree builds a one-node tree rooted at pos, evaluated immediately.
// seed drives Random expansion-style shuffling (§C.1): each sortChildren
// call derives its own *rand.Rand from seed combined with the node id
// being sorted, satisfying §5's "rand-shuffle uses an explicit RNG per
// call" without sharing one generator across concurrent goroutines.
func NewTree(pos position.Position, seed int64) *Tree {
	workers := config.Settings.Search.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	t := &Tree{
		log:         logging.GetSearchLog(),
		seed:        seed,
		expandStyle: expandStyleFromString(config.Settings.Search.ExpandStyle),
		playingSide: pos.SideToMove(),
		workers:     workers,
	}

	result := movegen.Evaluate(&pos)
	t.nodes = []node{{pos: pos, parentMove: MoveNone, score: result.Score, state: result.State, pendingMoves: result.Moves}}
	t.parent = []int{-1}
	t.children = [][]int{nil}
	t.frontier = []int{0}
	return t
}

// Depth returns the maximum child depth reached by expansion so far.
func (t *Tree) Depth() int { return t.depth }

// RootScore returns the root node's current score.
func (t *Tree) RootScore() Value { return t.nodes[0].score }

// ExpandToDepth runs expansion passes until depth reaches target or the
// frontier is exhausted (§5: "the loop terminates when tree.depth ≥
// target or when no frontier nodes remain").
func (t *Tree) ExpandToDepth(ctx context.Context, target int) error {
	for t.depth < target && len(t.frontier) > 0 {
		if err := t.expandPass(ctx); err != nil {
			return err
		}
	}
	return nil
}

// generated is one selected parent's freshly produced, not-yet-attached
// children, paired with the moves that produced them.
type generated struct {
	parent int
	moves  []Move
	kids   []node
}

// expandPass runs one full pass of §4.7.1: select parents, generate and
// score their children concurrently (concurrency point 1), sort each
// parent's children concurrently (concurrency point 2), attach the
// width-truncated results, and backpropagate (§4.7.2).
func (t *Tree) expandPass(ctx context.Context) error {
	var checked, ongoing []int
	for _, id := range t.frontier {
		switch t.nodes[id].state {
		case movegen.Check:
			checked = append(checked, id)
		case movegen.Ongoing:
			ongoing = append(ongoing, id)
			// Checkmate and Draw nodes are terminal and simply drop
			// out of the frontier (§4.7.1).
		}
	}

	width := wAll(len(ongoing))
	selected := make([]int, 0, len(checked)+width)
	selected = append(selected, checked...)
	selected = append(selected, ongoing[:width]...)
	if len(selected) == 0 {
		t.frontier = nil
		return nil
	}

	gens := make([]generated, len(selected))
	if err := t.runBounded(ctx, len(selected), func(i int) error {
		gens[i] = t.generateChildren(selected[i])
		return nil
	}); err != nil {
		return err
	}

	if err := t.runBounded(ctx, len(gens), func(i int) error {
		t.sortChildren(gens[i].kids, gens[i].moves, gens[i].parent)
		return nil
	}); err != nil {
		return err
	}

	newDepth := t.depth + 1
	var newFrontier []int
	expandedParents := make([]int, 0, len(gens))
	for _, g := range gens {
		limit := wChild(len(g.kids))
		kids := g.kids[:limit]
		moves := g.moves[:limit]

		ids := make([]int, len(kids))
		for j := range kids {
			kid := kids[j]
			kid.parentMove = moves[j]
			kid.depth = newDepth
			id := len(t.nodes)
			t.nodes = append(t.nodes, kid)
			t.parent = append(t.parent, g.parent)
			t.children = append(t.children, nil)
			ids[j] = id
			if kid.state == movegen.Ongoing || kid.state == movegen.Check {
				newFrontier = append(newFrontier, id)
			}
		}
		t.children[g.parent] = ids
		t.nodes[g.parent].pendingMoves = nil
		t.recomputeScore(g.parent)
		expandedParents = append(expandedParents, g.parent)
	}

	t.backpropagate(expandedParents)
	t.frontier = newFrontier
	t.depth = newDepth
	t.log.Debugf("expansion pass done: depth=%d parents=%d frontier=%d root_score=%s",
		t.depth, len(expandedParents), len(t.frontier), t.nodes[0].score.String())
	return nil
}

// generateChildren plays out every pending move of parentID and
// evaluates the resulting position (concurrency point 1, §5).
func (t *Tree) generateChildren(parentID int) generated {
	parentNode := &t.nodes[parentID]
	moves := parentNode.pendingMoves
	kids := make([]node, len(moves))
	for i, m := range moves {
		child := movegen.Apply(parentNode.pos, m)
		r := movegen.Evaluate(&child)
		kids[i] = node{pos: child, score: r.Score, state: r.State, pendingMoves: r.Moves}
	}
	return generated{parent: parentID, moves: moves, kids: kids}
}

// sortChildren orders a single parent's children by the expand style
// (concurrency point 2, §5). Default sorts by descending signed score,
// keyed to t.playingSide so "higher is better for the playing side";
// ties keep insertion order via a stable sort (§5's ordering
// guarantee). Random shuffles instead, using a *rand.Rand seeded from
// t.seed and parentID so concurrent calls never share mutable RNG
// state yet stay reproducible given the same seed.
func (t *Tree) sortChildren(kids []node, moves []Move, parentID int) {
	n := len(kids)
	if n < 2 {
		return
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	switch t.expandStyle {
	case Random:
		rng := rand.New(rand.NewSource(t.seed ^ int64(parentID)))
		rng.Shuffle(n, func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })
	default:
		signed := func(i int) Value {
			if t.playingSide == Black {
				return -kids[i].score
			}
			return kids[i].score
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return signed(idx[a]) > signed(idx[b])
		})
	}

	sortedKids := make([]node, n)
	sortedMoves := make([]Move, n)
	for i, j := range idx {
		sortedKids[i] = kids[j]
		sortedMoves[i] = moves[j]
	}
	copy(kids, sortedKids)
	copy(moves, sortedMoves)
}

// recomputeScore sets id's score to the mean of its immediate
// children's scores (§4.7.1 step 5, §4.7.2).
func (t *Tree) recomputeScore(id int) {
	kids := t.children[id]
	if len(kids) == 0 {
		return
	}
	var sum float64
	for _, k := range kids {
		sum += float64(t.nodes[k].score)
	}
	t.nodes[id].score = Value(math.Round(sum / float64(len(kids))))
}

// backpropagate walks the ancestors of expandedParents upward level by
// level, recomputing each ancestor's score, stopping at the root
// (§4.7.2).
func (t *Tree) backpropagate(expandedParents []int) {
	level := expandedParents
	for {
		seen := make(map[int]bool, len(level))
		var next []int
		for _, id := range level {
			p := t.parent[id]
			if p < 0 || seen[p] {
				continue
			}
			seen[p] = true
			next = append(next, p)
		}
		if len(next) == 0 {
			return
		}
		for _, p := range next {
			t.recomputeScore(p)
		}
		level = next
	}
}

// runBounded runs fn(0), fn(1), ..., fn(n-1) concurrently, capped at
// t.workers in flight at once, and returns the first error (if any)
// after every goroutine has finished.
func (t *Tree) runBounded(ctx context.Context, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, t.workers)
	for i := 0; i < n; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			return fn(i)
		})
	}
	return g.Wait()
}
