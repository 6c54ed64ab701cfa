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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopfjaeger/branchmate/internal/position"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

func TestPerftFromStartingPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		assert.Equal(t, c.nodes, Perft(position.New(), c.depth), "depth %d", c.depth)
	}
}

func TestEvaluateStartingPosition(t *testing.T) {
	p := position.New()
	result := Evaluate(&p)
	assert.Len(t, result.Moves, 20)
	assert.Equal(t, Ongoing, result.State)
	assert.GreaterOrEqual(t, int(result.Score), -5)
	assert.LessOrEqual(t, int(result.Score), 5)
}

func TestInsufficientMaterialDoesNotFireWithLonePawn(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	result := Evaluate(&p)
	assert.NotEqual(t, Draw, result.State)
}

func TestInsufficientMaterialAfterPawnLost(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	result := Evaluate(&p)
	assert.Equal(t, Draw, result.State)
	assert.Equal(t, "insufficient material", result.Note)
	assert.Equal(t, ValueDraw, result.Score)
}

func TestStalemateIsDrawWithNoMovesNote(t *testing.T) {
	p, err := position.NewFromFen("7k/8/8/8/8/8/5PPP/4R2K b - - 0 1")
	require.NoError(t, err)
	result := Evaluate(&p)
	assert.Equal(t, Draw, result.State)
	assert.Equal(t, "no moves", result.Note)
	assert.Equal(t, ValueDraw, result.Score)
}

func TestEnPassantCaptureAppearsAndApplies(t *testing.T) {
	p, err := position.NewFromFen("rnbqkbnr/ppp2ppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	result := Evaluate(&p)

	var epMove Move
	found := false
	for _, m := range result.Moves {
		if m.MoveType() == EnPassant {
			epMove = m
			found = true
			break
		}
	}
	require.True(t, found, "expected an en-passant capture in the legal move list")
	assert.Equal(t, Pawn, epMove.CapturedType())
	assert.Equal(t, SqD6, epMove.To())

	after := Apply(p, epMove)
	_, _, occupied := after.PieceAt(SqD5)
	assert.False(t, occupied, "the captured pawn on d5 must be gone")
}

func TestCastlingBothSidesAppearAndClearRights(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	result := Evaluate(&p)

	var kingside, queenside Move
	for _, m := range result.Moves {
		if m.MoveType() == Castling {
			if m.To() == SqG1 {
				kingside = m
			} else if m.To() == SqC1 {
				queenside = m
			}
		}
	}
	assert.Equal(t, SqG1, kingside.To())
	assert.Equal(t, SqC1, queenside.To())

	after := Apply(p, kingside)
	assert.Zero(t, after.PiecesBb(White, Rook)&SqH1.Bb())
	assert.NotZero(t, after.PiecesBb(White, Rook)&SqF1.Bb())
	assert.Equal(t, CastlingBlack, after.CastlingRights())
}

func TestCheckRestrictsMovesToCaptureBlockOrEvade(t *testing.T) {
	p, err := position.NewFromFen("8/8/8/2k5/8/2K5/8/R7 w - - 0 1")
	require.NoError(t, err)
	result := Evaluate(&p)

	var check Move
	for _, m := range result.Moves {
		if m.From() == SqA1 && m.To() == SqA5 {
			check = m
		}
	}
	require.NotEqual(t, MoveNone, check)

	afterCheck := Apply(p, check)
	blackResult := Evaluate(&afterCheck)
	assert.Equal(t, Check, blackResult.State)
	for _, m := range blackResult.Moves {
		isCapture := m.To() == SqA5
		isKingMove := m.From() == afterCheck.KingSquare(Black)
		assert.True(t, isCapture || isKingMove, "move %s neither captures, blocks nor evades", m.StringAlgebraic())
	}
}
