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

// Package attacks precomputes the static attack tables a bitboard engine
// needs: pseudo-attacks on an empty board for knight, king and pawns, and
// magic-bitboard-indexed attack databases for the sliding pieces (bishop,
// rook, queen). Tables are built once, lazily, behind a sync.Once — Go
// has no portable PEXT intrinsic, so magic bitboards are the substitute
// indexing scheme used here.
package attacks

import (
	"fmt"
	"sync"

	. "github.com/kopfjaeger/branchmate/pkg/types"
)

var (
	once sync.Once

	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard

	rays         [8][SqLength]Bitboard
	intermediate [SqLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]magic
)

// Init builds all static attack tables. Safe to call from multiple
// goroutines or multiple times; the tables are computed exactly once.
func Init() {
	once.Do(func() {
		computePseudoAttacks()
		computeRays()
		computeIntermediate()
		initMagics(&rookTable, &rookMagics, &rookDirections)
		initMagics(&bishopTable, &bishopMagics, &bishopDirections)
	})
}

// GetAttacksBb returns the squares attacked by a piece of type pt (not
// Pawn) standing on sq, given the board's full occupancy. Sliding
// pieces look up the magic-indexed database; knight and king ignore
// occupied and return their precomputed pseudo-attacks.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacksFor(occupied)
	case Rook:
		return rookMagics[sq].attacksFor(occupied)
	case Queen:
		return bishopMagics[sq].attacksFor(occupied) | rookMagics[sq].attacksFor(occupied)
	case Knight, King:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb does not support piece type %s", pt.String()))
	}
}

// GetPseudoAttacks returns the attacks of a piece type on an empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Ray returns the set of squares from sq to the edge of the board in
// the given orientation, on an empty board.
func Ray(sq Square, o Orientation) Bitboard {
	return rays[o][sq]
}

// Between returns the squares strictly between sq1 and sq2 if they
// share a rank, file, or diagonal, or BbZero otherwise. Used to test
// whether a potential pin is blocked by an intervening piece.
func Between(sq1, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}
