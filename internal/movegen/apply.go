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
	"fmt"

	"github.com/kopfjaeger/branchmate/internal/position"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// Apply returns the position reached by playing m in pos, leaving pos
// itself untouched (§4.6): a contract violation (m's from square is
// empty, or m carries neither a translation nor a castling shape) is a
// programmer error and aborts with a descriptive panic rather than
// returning an error, matching the core's error-handling contract (§7).
func Apply(pos position.Position, m Move) position.Position {
	if !m.IsValid() {
		panic(fmt.Sprintf("movegen.Apply: invalid move %s", m.StringBits()))
	}

	from, to := m.From(), m.To()
	mover := pos.RemovePiece(from)
	if mover == PieceNone {
		panic(fmt.Sprintf("movegen.Apply: from square %s is empty", from.String()))
	}
	us := mover.ColorOf()
	pt := mover.TypeOf()

	wasDoublePush := pt == Pawn && SquareDistance(from, to) == 2
	pos.ClearEnPassant()

	switch m.MoveType() {
	case EnPassant:
		pos.RemovePiece(m.EnPassantCapturedSquare())
		pos.PutPiece(mover, to)
	case Promotion:
		if captured := m.CapturedType(); captured != PtNone {
			pos.RemovePiece(to)
			dropCastlingRightsFor(&pos, to)
		}
		pos.PutPiece(MakePiece(us, m.PromotionType()), to)
	case Castling:
		pos.PutPiece(mover, to)
		rookFrom, rookTo := castlingRookSquares(to)
		pos.MovePiece(rookFrom, rookTo)
		pos.SetCastlingRights(pos.CastlingRights() &^ sideRights(us))
	default: // Normal
		if captured := m.CapturedType(); captured != PtNone {
			pos.RemovePiece(to)
			dropCastlingRightsFor(&pos, to)
		}
		pos.PutPiece(mover, to)
	}

	if m.MoveType() != Castling {
		if pt == King {
			pos.SetCastlingRights(pos.CastlingRights() &^ sideRights(us))
		} else if pt == Rook {
			dropCastlingRightsFor(&pos, from)
		}
	}

	if wasDoublePush {
		mid := SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
		if hasAdjacentEnemyPawn(&pos, to, us.Flip()) {
			pos.SetEnPassant(mid)
		}
	}

	if pt == Pawn || m.IsCapture() {
		pos.SetHalfmoveClock(0)
	} else {
		pos.SetHalfmoveClock(pos.HalfmoveClock() + 1)
	}

	if us == Black {
		pos.SetFullmoveNumber(pos.FullmoveNumber() + 1)
	}
	pos.SetSideToMove(us.Flip())

	return pos
}

func sideRights(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

func dropCastlingRightsFor(pos *position.Position, sq Square) {
	if lost := position.CastlingRightsLost[sq]; lost != CastlingNone {
		pos.SetCastlingRights(pos.CastlingRights() &^ lost)
	}
}

// castlingRookSquares returns the rook's from/to squares for a castle
// whose king lands on kingTo.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("movegen.Apply: %s is not a valid castling king destination", kingTo.String()))
	}
}

// hasAdjacentEnemyPawn reports whether an enemy pawn sits beside to on
// the same rank — the condition under which a double push actually
// creates a capturable en-passant target (§4.4, §4.5.4).
func hasAdjacentEnemyPawn(pos *position.Position, to Square, enemy Color) bool {
	enemyPawns := pos.PiecesBb(enemy, Pawn)
	if f := to.FileOf(); f > FileA {
		if enemyPawns.Has(SquareOf(f-1, to.RankOf())) {
			return true
		}
	}
	if f := to.FileOf(); f < FileH {
		if enemyPawns.Has(SquareOf(f+1, to.RankOf())) {
			return true
		}
	}
	return false
}
