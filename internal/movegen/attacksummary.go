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
	"github.com/kopfjaeger/branchmate/internal/assert"
	"github.com/kopfjaeger/branchmate/internal/attacks"
	"github.com/kopfjaeger/branchmate/internal/position"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

func init() {
	attacks.Init()
}

// sideAttackSummary is the §4.5.2 side-attack summary: every square a
// side attacks over a given occupancy, split into four ray components
// (kept separate per axis so pin detection can intersect them against
// the defending king's own line of sight) plus one non-ray component
// for pawns, knights and the king. Checker/CheckerCount identify
// whether, and by how many pieces, this side attacks a given target
// square (normally the enemy king).
type sideAttackSummary struct {
	RaysRank, RaysFile, RaysDiagAsc, RaysDiagDesc Bitboard
	NonRays                                       Bitboard
	Checker                                       Square
	CheckerCount                                  int
}

// All returns every square the summary's side attacks.
func (s *sideAttackSummary) All() Bitboard {
	return s.RaysRank | s.RaysFile | s.RaysDiagAsc | s.RaysDiagDesc | s.NonRays
}

// computeSideAttacks builds side's attack summary over occ, also
// counting how many of side's pieces attack target (SqNone to skip
// check detection entirely). Ray components are unioned (never
// overwritten) across every slider of a side, since two sliders of the
// same side can both contribute to the same axis (§9 Open Question).
func computeSideAttacks(pos *position.Position, side Color, occ Bitboard, target Square) sideAttackSummary {
	var s sideAttackSummary
	s.Checker = SqNone
	targetBb := target.Bb()

	note := func(atk Bitboard, from Square) {
		if atk&targetBb != 0 {
			s.CheckerCount++
			if s.Checker == SqNone {
				s.Checker = from
			}
		}
	}

	for _, sq := range pos.PiecesBb(side, Pawn).Squares() {
		atk := attacks.GetPawnAttacks(side, sq)
		s.NonRays |= atk
		note(atk, sq)
	}
	for _, sq := range pos.PiecesBb(side, Knight).Squares() {
		atk := attacks.GetPseudoAttacks(Knight, sq)
		s.NonRays |= atk
		note(atk, sq)
	}
	for _, sq := range pos.PiecesBb(side, Bishop).Squares() {
		atk := attacks.GetAttacksBb(Bishop, sq, occ)
		s.RaysDiagAsc |= atk & diagAscMask(sq)
		s.RaysDiagDesc |= atk & diagDescMask(sq)
		note(atk, sq)
	}
	for _, sq := range pos.PiecesBb(side, Rook).Squares() {
		atk := attacks.GetAttacksBb(Rook, sq, occ)
		s.RaysRank |= atk & rankMask(sq)
		s.RaysFile |= atk & fileMask(sq)
		note(atk, sq)
	}
	for _, sq := range pos.PiecesBb(side, Queen).Squares() {
		rookPart := attacks.GetAttacksBb(Rook, sq, occ)
		bishopPart := attacks.GetAttacksBb(Bishop, sq, occ)
		s.RaysRank |= rookPart & rankMask(sq)
		s.RaysFile |= rookPart & fileMask(sq)
		s.RaysDiagAsc |= bishopPart & diagAscMask(sq)
		s.RaysDiagDesc |= bishopPart & diagDescMask(sq)
		note(rookPart|bishopPart, sq)
	}
	for _, sq := range pos.PiecesBb(side, King).Squares() {
		atk := attacks.GetPseudoAttacks(King, sq)
		s.NonRays |= atk
		note(atk, sq)
	}
	return s
}

// pinSet is the four axis-separated bitboards of pieces absolutely
// pinned to a king (§4.5.3): at most one of the four contains any
// given square, since a piece can share at most one line with the king.
type pinSet struct {
	Rank, File, DiagAsc, DiagDesc Bitboard
}

// computePins finds the pieces of color us absolutely pinned to its
// king by enemy's ray attacks (§4.5.3): on each axis, the nearest
// defender the king "sees" along that line and the nearest defender
// the enemy's unioned ray attacks "see" along that same line must be
// the same square for a pin to exist.
func computePins(pos *position.Position, us Color, enemy sideAttackSummary) pinSet {
	kingSq := pos.KingSquare(us)
	occ := pos.TotalOccupancy()
	def := pos.Occupancy(us)

	kingRookView := attacks.GetAttacksBb(Rook, kingSq, occ)
	kingBishopView := attacks.GetAttacksBb(Bishop, kingSq, occ)

	var p pinSet
	p.Rank = kingRookView & rankMask(kingSq) & def & enemy.RaysRank
	p.File = kingRookView & fileMask(kingSq) & def & enemy.RaysFile
	p.DiagAsc = kingBishopView & diagAscMask(kingSq) & def & enemy.RaysDiagAsc
	p.DiagDesc = kingBishopView & diagDescMask(kingSq) & def & enemy.RaysDiagDesc

	if assert.DEBUG {
		assert.Assert(p.Rank&p.File == 0 && p.Rank&p.DiagAsc == 0 && p.Rank&p.DiagDesc == 0 &&
			p.File&p.DiagAsc == 0 && p.File&p.DiagDesc == 0 && p.DiagAsc&p.DiagDesc == 0,
			"pin axes must be pairwise disjoint: a piece shares at most one line with its king (§4.5.3)")
	}
	return p
}
