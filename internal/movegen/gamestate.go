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

// Package movegen is the move generator and static evaluator (§4.5):
// pin-aware legal move generation, draw detection, and the material +
// pin + mobility score, plus the pure position-applying function
// Apply (§4.6). Generation never mutates the Position it is given,
// except for the one documented exception in Evaluate, which pushes
// the position's own hash onto its repetition stack before reporting
// on it.
package movegen

import (
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// GameState classifies the result of Evaluate for one position.
type GameState uint8

const (
	// Ongoing means the side to move has legal moves and is not in check.
	Ongoing GameState = iota
	// Check means the side to move has legal moves while in check.
	Check
	// Checkmate means the side to move is in check with no legal moves.
	Checkmate
	// Draw means the game is over without a winner.
	Draw
)

func (s GameState) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// EvalResult is Evaluate's report on a position: its legal moves (nil
// for Checkmate and Draw), the game state, an optional human-readable
// reason for a Draw, and the static score (§4.5.6, §6 sentinels).
type EvalResult struct {
	Moves []Move
	State GameState
	Note  string
	Score Value
}
