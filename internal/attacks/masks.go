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

package attacks

import (
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// knightSteps and kingSteps are the one-step jumps of a knight/king,
// expressed as directions rather than offsets so Square.To() already
// handles board-edge wraparound.
var kingSteps = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

var knightSteps = [8]Direction{
	North + North + East, North + East + East,
	South + East + East, South + South + East,
	South + South + West, South + West + West,
	North + West + West, North + North + West,
}

func computePseudoAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range kingSteps {
			if to := sq.To(d); to.IsValid() {
				pseudoAttacks[King][sq].PushSquare(to)
			}
		}
		for _, d := range knightSteps {
			if to := knightTo(sq, d); to.IsValid() {
				pseudoAttacks[Knight][sq].PushSquare(to)
			}
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq].PushSquare(to)
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq].PushSquare(to)
		}
		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

// knightTo composes a two-direction knight leap; Square.To only knows
// single steps, so a leap is rejected the moment either half would
// cross an edge.
func knightTo(sq Square, d Direction) Square {
	switch d {
	case North + North + East:
		return step(sq, North, North, East)
	case North + East + East:
		return step(sq, North, East, East)
	case South + East + East:
		return step(sq, South, East, East)
	case South + South + East:
		return step(sq, South, South, East)
	case South + South + West:
		return step(sq, South, South, West)
	case South + West + West:
		return step(sq, South, West, West)
	case North + West + West:
		return step(sq, North, West, West)
	case North + North + West:
		return step(sq, North, North, West)
	}
	return SqNone
}

func step(sq Square, ds ...Direction) Square {
	for _, d := range ds {
		sq = sq.To(d)
		if !sq.IsValid() {
			return SqNone
		}
	}
	return sq
}

var orientationDirection = [8]Direction{Northwest, North, Northeast, East, Southeast, South, Southwest, West}

func computeRays() {
	for sq := SqA1; sq <= SqH8; sq++ {
		for o := NW; o <= W; o++ {
			s := sq
			for {
				to := s.To(orientationDirection[o])
				if !to.IsValid() {
					break
				}
				rays[o][sq].PushSquare(to)
				s = to
			}
		}
	}
}

func computeIntermediate() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for o := NW; o <= W; o++ {
			acc := BbZero
			s := sq1
			for {
				to := s.To(orientationDirection[o])
				if !to.IsValid() {
					break
				}
				intermediate[sq1][to] = acc
				acc.PushSquare(to)
				s = to
			}
		}
	}
}
