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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/kopfjaeger/branchmate/pkg/types"
)

func TestNewIsStartingPosition(t *testing.T) {
	p := New()
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
		"8/8/8/2k5/8/2K5/8/R7 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewFromFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestFenRejectsMalformedInput(t *testing.T) {
	_, err := NewFromFen("not a fen at all")
	assert.Error(t, err)
}

func TestPieceAt(t *testing.T) {
	p := New()
	pt, c, ok := p.PieceAt(SqE1)
	require.True(t, ok)
	assert.Equal(t, King, pt)
	assert.Equal(t, White, c)

	_, _, ok = p.PieceAt(SqE4)
	assert.False(t, ok)
}

func TestOccupancyDisjointBetweenSides(t *testing.T) {
	p := New()
	assert.Zero(t, p.Occupancy(White)&p.Occupancy(Black))
	assert.Equal(t, p.Occupancy(White)|p.Occupancy(Black), p.TotalOccupancy())
}

func TestEachSideExactlyOneKing(t *testing.T) {
	p := New()
	assert.Equal(t, 1, p.PiecesBb(White, King).PopCount())
	assert.Equal(t, 1, p.PiecesBb(Black, King).PopCount())
}

func TestRepetitionStackCountsPushedHashes(t *testing.T) {
	p := New()
	p.PushRepetition()
	p.PushRepetition()
	assert.Equal(t, 2, p.Repetitions(p.Hash()))
	assert.Equal(t, 0, p.Repetitions(p.Hash()+1))
}

func TestRepetitionStackEvictsOldestPastCapacity(t *testing.T) {
	p := New()
	for i := 0; i < repetitionCapacity+1; i++ {
		p.repetition.add(Key(i))
	}
	assert.Equal(t, 0, p.Repetitions(Key(0)))
	assert.Equal(t, 1, p.Repetitions(Key(1)))
	assert.Equal(t, 1, p.Repetitions(Key(repetitionCapacity)))
}
