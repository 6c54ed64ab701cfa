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

package movegen

import (
	"github.com/kopfjaeger/branchmate/internal/attacks"
	"github.com/kopfjaeger/branchmate/internal/config"
	"github.com/kopfjaeger/branchmate/internal/position"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// Evaluate runs draw detection, legal move generation and the static
// score for pos (§4.5). It mutably borrows pos exactly once, to push
// its own Zobrist hash onto the repetition stack before checking for
// threefold repetition — the one documented exception to Position's
// immutability.
func Evaluate(pos *position.Position) EvalResult {
	pos.PushRepetition()
	if pos.Repetitions(pos.Hash()) >= 3 {
		return EvalResult{State: Draw, Note: "threefold repetition", Score: ValueDraw}
	}
	if pos.HalfmoveClock() >= 100 {
		return EvalResult{State: Draw, Note: "fifty-move rule", Score: ValueDraw}
	}
	if insufficientMaterial(pos) {
		return EvalResult{State: Draw, Note: "insufficient material", Score: ValueDraw}
	}

	us := pos.SideToMove()
	enemy := us.Flip()
	kingSq := pos.KingSquare(us)
	occ := pos.TotalOccupancy()

	enemySummary := computeSideAttacks(pos, enemy, occ, kingSq)

	var moves []Move
	switch {
	case enemySummary.CheckerCount == 0:
		pins := computePins(pos, us, enemySummary)
		moves = append(moves, castlingMoves(pos, us, enemySummary)...)
		moves = append(moves, generateSliderAndLeaperMoves(pos, us, enemy, kingSq, occ, pins)...)
		moves = append(moves, kingMoves(pos, us, enemy, kingSq, occ)...)
	case enemySummary.CheckerCount == 1:
		pins := computePins(pos, us, enemySummary)
		blocking := attacks.Between(kingSq, enemySummary.Checker)
		nonKing := generateSliderAndLeaperMoves(pos, us, enemy, kingSq, occ, pins)
		moves = append(moves, filterForCheck(nonKing, enemySummary.Checker, blocking)...)
		moves = append(moves, kingMoves(pos, us, enemy, kingSq, occ)...)
	default: // double check: only the king can move
		moves = kingMoves(pos, us, enemy, kingSq, occ)
	}

	if len(moves) == 0 {
		if enemySummary.CheckerCount == 0 {
			return EvalResult{State: Draw, Note: "no moves", Score: ValueDraw}
		}
		return EvalResult{State: Checkmate, Score: checkmateScore(us)}
	}

	state := Ongoing
	if enemySummary.CheckerCount > 0 {
		state = Check
	}
	return EvalResult{Moves: moves, State: state, Score: score(pos)}
}

// checkmateScore returns the losing side's sentinel (§6): the side to
// move, having no legal response to check, has lost.
func checkmateScore(sideToMove Color) Value {
	if sideToMove == White {
		return ValueBlackWins
	}
	return ValueWhiteWins
}

// score computes the static evaluation (§4.5.6): material plus a pin
// bonus plus a mobility bonus, all in the same White-positive absolute
// convention as the material term and the §6 sentinels — "own"/"enemy"
// in the pin and mobility formulas are read as White/Black rather than
// side-to-move-relative, so the score does not flip sign depending on
// whose turn it is.
func score(pos *position.Position) Value {
	occ := pos.TotalOccupancy()

	var material Value
	for c := Color(White); int(c) < ColorLength; c++ {
		sign := Value(1)
		if c == Black {
			sign = -1
		}
		for pt := Pawn; pt < King; pt++ {
			material += sign * pt.ValueOf() * Value(pos.PiecesBb(c, pt).PopCount())
		}
	}

	whiteSummary := computeSideAttacks(pos, White, occ, SqNone)
	blackSummary := computeSideAttacks(pos, Black, occ, SqNone)
	whitePinned := pinCount(computePins(pos, White, blackSummary))
	blackPinned := pinCount(computePins(pos, Black, whiteSummary))

	pinBonus := Value(blackPinned-whitePinned) * Value(config.Settings.Eval.PinBonus)
	mobilityBonus := Value(blackSummary.All().PopCount()-whiteSummary.All().PopCount()) * Value(config.Settings.Eval.MobilityBonus)

	return material + pinBonus + mobilityBonus
}

func pinCount(p pinSet) int {
	return (p.Rank | p.File | p.DiagAsc | p.DiagDesc).PopCount()
}
