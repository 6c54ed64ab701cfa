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

package search

import (
	"sort"

	"github.com/kopfjaeger/branchmate/internal/movegen"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// ScoredMove pairs a root move with the score of the subtree it leads
// to, as returned by RankedMoves (§4.7.3's parenthetical: "and
// optionally paired scores").
type ScoredMove struct {
	Move  Move
	Score Value
}

// RankedMoves fetches the root's children, sorts them by score
// (descending from the playing side's perspective) and truncates to
// w_all(#root_children), returning each surviving child's
// parent_move paired with its score (§4.7.3).
func (t *Tree) RankedMoves() []ScoredMove {
	children := t.children[0]
	if len(children) == 0 {
		return nil
	}

	ranked := make([]ScoredMove, len(children))
	for i, id := range children {
		ranked[i] = ScoredMove{Move: t.nodes[id].parentMove, Score: t.nodes[id].score}
	}

	signed := func(s Value) Value {
		if t.playingSide == Black {
			return -s
		}
		return s
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return signed(ranked[a].Score) > signed(ranked[b].Score)
	})

	limit := wAll(len(ranked))
	return ranked[:limit]
}

// Moves is RankedMoves stripped down to the bare ordered move sequence
// (§4.7.3's primary return value).
func (t *Tree) Moves() []Move {
	ranked := t.RankedMoves()
	moves := make([]Move, len(ranked))
	for i, r := range ranked {
		moves[i] = r.Move
	}
	return moves
}

// RootState reports the root position's game state as last evaluated.
func (t *Tree) RootState() movegen.GameState {
	return t.nodes[0].state
}
