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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is an unsigned 64 bit integer with one bit per square. Bit
// index i corresponds to file i%8, rank i/8 (file A = 0, rank 1 = 0).
type Bitboard uint64

// SqLength is the number of squares on the board, also the sentinel
// value for Square.
const SqLength = 64

// Bitboard zero/full constants.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
	BbOne  Bitboard = 1
)

// File masks.
const (
	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb          = FileA_Bb << 1
	FileC_Bb          = FileA_Bb << 2
	FileD_Bb          = FileA_Bb << 3
	FileE_Bb          = FileA_Bb << 4
	FileF_Bb          = FileA_Bb << 5
	FileG_Bb          = FileA_Bb << 6
	FileH_Bb          = FileA_Bb << 7

	NotFileA_Bb = ^FileA_Bb
	NotFileH_Bb = ^FileH_Bb
)

// Rank masks.
const (
	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb          = Rank1_Bb << (8 * 1)
	Rank3_Bb          = Rank1_Bb << (8 * 2)
	Rank4_Bb          = Rank1_Bb << (8 * 3)
	Rank5_Bb          = Rank1_Bb << (8 * 4)
	Rank6_Bb          = Rank1_Bb << (8 * 5)
	Rank7_Bb          = Rank1_Bb << (8 * 6)
	Rank8_Bb          = Rank1_Bb << (8 * 7)
)

// LightSquares_Bb / DarkSquares_Bb are the two square colors.
const (
	LightSquares_Bb Bitboard = 0x55AA55AA55AA55AA
	DarkSquares_Bb  Bitboard = 0xAA55AA55AA55AA55
)

// NotOuter_Bb is the interior 6x6 region (files B-G, ranks 2-7).
const NotOuter_Bb = ^(FileA_Bb | FileH_Bb | Rank1_Bb | Rank8_Bb)

// Castling transit masks: the squares (excluding the king's own
// square) the king and rook cross or land on for each castling corner.
const (
	WhiteOOTransit_Bb  Bitboard = (BbOne << SqF1) | (BbOne << SqG1)
	WhiteOOOTransit_Bb Bitboard = (BbOne << SqB1) | (BbOne << SqC1) | (BbOne << SqD1)
	BlackOOTransit_Bb  Bitboard = (BbOne << SqF8) | (BbOne << SqG8)
	BlackOOOTransit_Bb Bitboard = (BbOne << SqB8) | (BbOne << SqC8) | (BbOne << SqD8)
)

// Bb returns the file mask.
func (f File) Bb() Bitboard {
	return FileA_Bb << uint(f)
}

// Bb returns the rank mask.
func (r Rank) Bb() Bitboard {
	return Rank1_Bb << (8 * uint(r))
}

// Bb returns the single-bit bitboard for the square.
func (sq Square) Bb() Bitboard {
	return BbOne << uint(sq)
}

// Has reports whether the bit for sq is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with the bit for sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with the bit for sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PushSquare sets the bit for sq in *b.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sq.Bb()
	return *b
}

// PopSquare clears the bit for sq in *b.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b &^= sq.Bb()
	return *b
}

// Lsb returns the least significant set bit's square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit's square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant set bit's square and clears it
// in *b. Repeated calls enumerate squares in ascending index order
// until b is empty, at which point it returns SqNone and stops
// changing b — the sequence is finite and not restartable.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// ToSquare returns the single square set in b. Requires exactly one bit set.
func (b Bitboard) ToSquare() Square {
	return b.Lsb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Squares returns the squares set in b in ascending index order.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.PopCount())
	rem := b
	for rem != 0 {
		sqs = append(sqs, rem.PopLsb())
	}
	return sqs
}

// ShiftBitboard shifts every set bit of b one step in direction d,
// clipping bits that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH_Bb) << 1
	case West:
		return (b &^ FileA_Bb) >> 1
	case Northeast:
		return (b &^ FileH_Bb) << 9
	case Southeast:
		return (b &^ FileH_Bb) >> 7
	case Southwest:
		return (b &^ FileA_Bb) >> 9
	case Northwest:
		return (b &^ FileA_Bb) << 7
	default:
		return BbZero
	}
}

// FileDistance returns the absolute file distance between two files.
func FileDistance(f1, f2 File) int {
	d := int(f1) - int(f2)
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the absolute rank distance between two ranks.
func RankDistance(r1, r2 Rank) int {
	d := int(r1) - int(r2)
	if d < 0 {
		return -d
	}
	return d
}

// SquareDistance returns Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	fd := FileDistance(s1.FileOf(), s2.FileOf())
	rd := RankDistance(s1.RankOf(), s2.RankOf())
	if fd > rd {
		return fd
	}
	return rd
}

// String renders the bitboard as a 64-character binary string, MSB first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if b&(BbOne<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// StringBoard renders the bitboard as an 8x8 grid, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := int(FileA); f <= int(FileH); f++ {
			sq := SquareOf(File(f), Rank(r))
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
