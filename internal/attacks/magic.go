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

// magic holds the fancy-magic-bitboard attack database for a single
// square: Stockfish's "fancy" approach to indexing a sliding piece's
// attacks by board occupancy without a full 2^64 table.
// https://www.chessprogramming.org/Magic_Bitboards
type magic struct {
	mask    Bitboard
	magic   Bitboard
	attacks []Bitboard
	shift   uint
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.magic
	occ >>= m.shift
	return uint(occ)
}

func (m *magic) attacksFor(occupied Bitboard) Bitboard {
	return m.attacks[m.index(occupied)]
}

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// initMagics computes the magic attack database for all 64 squares
// along the given four sliding directions (rook or bishop).
func initMagics(table *[]Bitboard, magics *[SqLength]magic, directions *[4]Direction) {
	// optimal PRNG seeds to find a working magic quickly, per square rank.
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt, size := 0, 0

	*table = make([]Bitboard, 0, SqLength*4096)

	for sq := SqA1; sq <= SqH8; sq++ {
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		start := len(*table)
		b, size = BbZero, 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			*table = append(*table, BbZero)
			size++
			b = (b - m.mask) & m.mask
			if b == BbZero {
				break
			}
		}
		m.attacks = (*table)[start:]

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.magic = 0; ; {
				m.magic = Bitboard(rng.sparseRand())
				if ((m.magic * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four directions from sq until it
// runs off the board or hits an occupied square (inclusive of that
// square, since the slider attacks it).
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		s := sq
		for {
			to := s.To(d)
			if !to.IsValid() {
				break
			}
			attack.PushSquare(to)
			if occupied.Has(to) {
				break
			}
			s = to
		}
	}
	return attack
}

// prnG is a xorshift64star pseudo-random generator, used only to pick
// candidate magic numbers at startup.
// Dedicated to the public domain by Sebastiano Vigna (2014).
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces candidates with roughly 1/8th of their bits set,
// which converge on a working magic far faster than uniform random.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
