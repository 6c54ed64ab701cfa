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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopfjaeger/branchmate/pkg/types"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestKnightAttacksCorner(t *testing.T) {
	got := GetAttacksBb(Knight, SqA1, BbZero)
	want := SqB3.Bb() | SqC2.Bb()
	assert.EqualValues(t, want, got)
}

func TestKingAttacksCenter(t *testing.T) {
	got := GetAttacksBb(King, SqE4, BbZero)
	assert.Equal(t, 8, got.PopCount())
}

func TestPawnAttacks(t *testing.T) {
	assert.EqualValues(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(White, SqE2))
	assert.EqualValues(t, SqD6.Bb()|SqF6.Bb(), GetPawnAttacks(Black, SqE7))
}

func TestRookAttacksOnEmptyBoard(t *testing.T) {
	got := GetAttacksBb(Rook, SqA1, BbZero)
	assert.Equal(t, 14, got.PopCount())
}

func TestRookAttacksBlocked(t *testing.T) {
	occupied := SqA4.Bb() | SqD1.Bb()
	got := GetAttacksBb(Rook, SqA1, occupied)
	want := SqA2.Bb() | SqA3.Bb() | SqA4.Bb() | SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	assert.EqualValues(t, want, got)
}

func TestBishopAttacksBlocked(t *testing.T) {
	occupied := SqD4.Bb()
	got := GetAttacksBb(Bishop, SqA1, occupied)
	assert.EqualValues(t, SqB2.Bb()|SqC3.Bb()|SqD4.Bb(), got)
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occupied := SqD4.Bb() | SqA4.Bb()
	rook := GetAttacksBb(Rook, SqA1, occupied)
	bishop := GetAttacksBb(Bishop, SqA1, occupied)
	queen := GetAttacksBb(Queen, SqA1, occupied)
	assert.EqualValues(t, rook|bishop, queen)
}

func TestBetweenOnRank(t *testing.T) {
	assert.EqualValues(t, SqB1.Bb()|SqC1.Bb(), Between(SqA1, SqD1))
	assert.EqualValues(t, BbZero, Between(SqA1, SqB1))
}

func TestBetweenOffLine(t *testing.T) {
	assert.EqualValues(t, BbZero, Between(SqA1, SqB3))
}

func TestRayNorth(t *testing.T) {
	assert.EqualValues(t, SqA2.Bb()|SqA3.Bb()|SqA4.Bb()|SqA5.Bb()|SqA6.Bb()|SqA7.Bb()|SqA8.Bb(), Ray(SqA1, N))
}
