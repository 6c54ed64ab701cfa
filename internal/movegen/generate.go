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
	"github.com/kopfjaeger/branchmate/internal/position"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// pinRestriction resolves a piece's pin state against the four allow
// flags for its type (§4.5.4): ok is false when the piece is pinned on
// an axis its type may never move through at all (a knight on any
// axis, a bishop on rank/file, a rook on a diagonal); mask narrows
// legal targets to the pin line when the piece may still move along
// the axis it is pinned on, or BbAll when it isn't pinned at all.
func pinRestriction(sq, kingSq Square, pins pinSet, allowRank, allowFile, allowDiagAsc, allowDiagDesc bool) (ok bool, mask Bitboard) {
	switch {
	case pins.Rank.Has(sq):
		return allowRank, rankMask(kingSq)
	case pins.File.Has(sq):
		return allowFile, fileMask(kingSq)
	case pins.DiagAsc.Has(sq):
		return allowDiagAsc, diagAscMask(kingSq)
	case pins.DiagDesc.Has(sq):
		return allowDiagDesc, diagDescMask(kingSq)
	default:
		return true, BbAll
	}
}

func addTargets(moves []Move, pos *position.Position, us Color, from Square, targets Bitboard) []Move {
	for _, to := range targets.Squares() {
		if capturedPt, _, ok := pos.PieceAt(to); ok {
			moves = append(moves, CreateCaptureMove(from, to, Normal, capturedPt))
		} else {
			moves = append(moves, CreateMove(from, to, Normal))
		}
	}
	return moves
}

func knightMoves(pos *position.Position, us Color, kingSq Square, occ Bitboard, pins pinSet) []Move {
	var moves []Move
	for _, sq := range pos.PiecesBb(us, Knight).Squares() {
		if ok, _ := pinRestriction(sq, kingSq, pins, false, false, false, false); !ok {
			continue
		}
		targets := attacks.GetPseudoAttacks(Knight, sq) &^ pos.Occupancy(us)
		moves = addTargets(moves, pos, us, sq, targets)
	}
	return moves
}

func bishopMoves(pos *position.Position, us Color, kingSq Square, occ Bitboard, pins pinSet) []Move {
	var moves []Move
	for _, sq := range pos.PiecesBb(us, Bishop).Squares() {
		ok, mask := pinRestriction(sq, kingSq, pins, false, false, true, true)
		if !ok {
			continue
		}
		targets := attacks.GetAttacksBb(Bishop, sq, occ) &^ pos.Occupancy(us) & mask
		moves = addTargets(moves, pos, us, sq, targets)
	}
	return moves
}

func rookMoves(pos *position.Position, us Color, kingSq Square, occ Bitboard, pins pinSet) []Move {
	var moves []Move
	for _, sq := range pos.PiecesBb(us, Rook).Squares() {
		ok, mask := pinRestriction(sq, kingSq, pins, true, true, false, false)
		if !ok {
			continue
		}
		targets := attacks.GetAttacksBb(Rook, sq, occ) &^ pos.Occupancy(us) & mask
		moves = addTargets(moves, pos, us, sq, targets)
	}
	return moves
}

func queenMoves(pos *position.Position, us Color, kingSq Square, occ Bitboard, pins pinSet) []Move {
	var moves []Move
	for _, sq := range pos.PiecesBb(us, Queen).Squares() {
		ok, mask := pinRestriction(sq, kingSq, pins, true, true, true, true)
		if !ok {
			continue
		}
		targets := (attacks.GetAttacksBb(Rook, sq, occ) | attacks.GetAttacksBb(Bishop, sq, occ)) &^ pos.Occupancy(us) & mask
		moves = addTargets(moves, pos, us, sq, targets)
	}
	return moves
}

// enPassantSafe simulates the double pawn removal an en-passant
// capture performs and reports whether the defending king is still
// unattacked afterward (§9: the capture vacates two squares on the
// same rank at once, which ordinary per-piece pin detection, keyed on
// a single moving piece, cannot see).
func enPassantSafe(pos *position.Position, us, enemy Color, kingSq, from, capturedSq, to Square, occ Bitboard) bool {
	occAfter := (occ &^ from.Bb() &^ capturedSq.Bb()) | to.Bb()
	for _, sq := range pos.PiecesBb(enemy, Rook).Squares() {
		if attacks.GetAttacksBb(Rook, sq, occAfter).Has(kingSq) {
			return false
		}
	}
	for _, sq := range pos.PiecesBb(enemy, Queen).Squares() {
		if attacks.GetAttacksBb(Queen, sq, occAfter).Has(kingSq) {
			return false
		}
	}
	return true
}

func pawnMoves(pos *position.Position, us, enemy Color, kingSq Square, occ Bitboard, pins pinSet) []Move {
	var moves []Move
	dir := us.MoveDirection()
	promRank := us.PromotionRankBb()
	epSq := pos.EnPassantSquare()

	for _, sq := range pos.PiecesBb(us, Pawn).Squares() {
		pinnedRank := pins.Rank.Has(sq)
		pinnedFile := pins.File.Has(sq)
		pinnedDiagAsc := pins.DiagAsc.Has(sq)
		pinnedDiagDesc := pins.DiagDesc.Has(sq)

		pushAllowed := !pinnedRank && !pinnedDiagAsc && !pinnedDiagDesc
		captureAllowed := !pinnedRank && !pinnedFile
		var captureMask Bitboard = BbAll
		if pinnedDiagAsc {
			captureMask = diagAscMask(kingSq)
		} else if pinnedDiagDesc {
			captureMask = diagDescMask(kingSq)
		}
		var pushMask Bitboard = BbAll
		if pinnedFile {
			pushMask = fileMask(kingSq)
		}

		if pushAllowed {
			one := sq.To(dir)
			if one.IsValid() && !occ.Has(one) && (pushMask == BbAll || pushMask.Has(one)) {
				if one.Bb()&promRank != 0 {
					for _, pt := range promotionTypes {
						moves = append(moves, CreatePromotionMove(sq, one, pt, PtNone))
					}
				} else {
					moves = append(moves, CreateMove(sq, one, Normal))
				}
				// one.RankOf() matches us.PawnDoubleRank() exactly when sq started
				// on the home rank, since that's the only rank a single push lands
				// a pawn of this color on that rank (§4.5.4).
				two := one.To(dir)
				if two.IsValid() && one.RankOf().Bb() == us.PawnDoubleRank() && !occ.Has(two) {
					moves = append(moves, CreateMove(sq, two, Normal))
				}
			}
		}

		if captureAllowed {
			atk := attacks.GetPawnAttacks(us, sq)
			for _, to := range atk.Squares() {
				if captureMask != BbAll && !captureMask.Has(to) {
					continue
				}
				if capturedPt, capturedColor, ok := pos.PieceAt(to); ok && capturedColor == enemy {
					if to.Bb()&promRank != 0 {
						for _, pt := range promotionTypes {
							moves = append(moves, CreatePromotionMove(sq, to, pt, capturedPt))
						}
					} else {
						moves = append(moves, CreateCaptureMove(sq, to, Normal, capturedPt))
					}
				} else if to == epSq && epSq != SqNone {
					capturedSq := capturedPawnSquare(to)
					if enPassantSafe(pos, us, enemy, kingSq, sq, capturedSq, to, occ) {
						moves = append(moves, CreateCaptureMove(sq, to, EnPassant, Pawn))
					}
				}
			}
		}
	}
	return moves
}

// capturedPawnSquare returns the square of the pawn captured by an
// en-passant move landing on to.
func capturedPawnSquare(to Square) Square {
	if to.RankOf() == Rank6 {
		return SquareOf(to.FileOf(), Rank5)
	}
	return SquareOf(to.FileOf(), Rank4)
}

// kingMoves generates king translations, using the enemy's attack
// summary computed with the king removed from occupancy (§4.5.4,
// §4.5.5) so a slider's attack isn't blocked by the square the king is
// about to vacate.
func kingMoves(pos *position.Position, us, enemy Color, kingSq Square, occ Bitboard) []Move {
	occNoKing := occ &^ kingSq.Bb()
	enemyNoKing := computeSideAttacks(pos, enemy, occNoKing, SqNone)
	targets := attacks.GetPseudoAttacks(King, kingSq) &^ pos.Occupancy(us) &^ enemyNoKing.All()
	return addTargets(nil, pos, us, kingSq, targets)
}

// castlingMoves generates castling moves (§4.5.4). Only called when
// the side to move is not in check; enemyFull is the opponent's attack
// summary over the board's actual current occupancy.
func castlingMoves(pos *position.Position, us Color, enemyFull sideAttackSummary) []Move {
	var moves []Move
	occ := pos.TotalOccupancy()
	rights := pos.CastlingRights()
	if us == White {
		if rights.Has(CastlingWhiteOO) && occ&WhiteOOTransit_Bb == 0 &&
			!enemyFull.All().Has(SqE1) && !enemyFull.All().Has(SqF1) && !enemyFull.All().Has(SqG1) {
			moves = append(moves, CreateMove(SqE1, SqG1, Castling))
		}
		if rights.Has(CastlingWhiteOOO) && occ&WhiteOOOTransit_Bb == 0 &&
			!enemyFull.All().Has(SqE1) && !enemyFull.All().Has(SqD1) && !enemyFull.All().Has(SqC1) {
			moves = append(moves, CreateMove(SqE1, SqC1, Castling))
		}
	} else {
		if rights.Has(CastlingBlackOO) && occ&BlackOOTransit_Bb == 0 &&
			!enemyFull.All().Has(SqE8) && !enemyFull.All().Has(SqF8) && !enemyFull.All().Has(SqG8) {
			moves = append(moves, CreateMove(SqE8, SqG8, Castling))
		}
		if rights.Has(CastlingBlackOOO) && occ&BlackOOOTransit_Bb == 0 &&
			!enemyFull.All().Has(SqE8) && !enemyFull.All().Has(SqD8) && !enemyFull.All().Has(SqC8) {
			moves = append(moves, CreateMove(SqE8, SqC8, Castling))
		}
	}
	return moves
}

// generateSliderAndLeaperMoves generates every legal pawn, knight,
// bishop, rook and queen move (everything except king moves and
// castling), respecting the pin set (§4.5.3, §4.5.4).
func generateSliderAndLeaperMoves(pos *position.Position, us, enemy Color, kingSq Square, occ Bitboard, pins pinSet) []Move {
	var moves []Move
	moves = append(moves, pawnMoves(pos, us, enemy, kingSq, occ, pins)...)
	moves = append(moves, knightMoves(pos, us, kingSq, occ, pins)...)
	moves = append(moves, bishopMoves(pos, us, kingSq, occ, pins)...)
	moves = append(moves, rookMoves(pos, us, kingSq, occ, pins)...)
	moves = append(moves, queenMoves(pos, us, kingSq, occ, pins)...)
	return moves
}

// filterForCheck narrows a move list down to moves that resolve a
// single check (§4.5.5): a capture of the checker, or interposition on
// one of the blocking squares B. En-passant may resolve a check either
// way, using the captured pawn's square in place of the move's own
// destination.
func filterForCheck(moves []Move, checker Square, blocking Bitboard) []Move {
	out := moves[:0]
	for _, m := range moves {
		if m.MoveType() == EnPassant {
			if m.EnPassantCapturedSquare() == checker || blocking.Has(m.To()) {
				out = append(out, m)
			}
			continue
		}
		if m.To() == checker || blocking.Has(m.To()) {
			out = append(out, m)
		}
	}
	return out
}
