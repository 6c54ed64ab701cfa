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
	"fmt"
	"strings"
)

// Move packs a move's from/to squares, its type, and (when relevant)
// its promotion piece type and captured piece type into one word.
// A non-null move has exactly one primary action: a translation
// (possibly a capture, promotion, or en-passant) or a castle. For
// castling the king's own from/to squares double as the castle
// encoding — no separate castling-side field is needed since the
// king's destination (g1/c1/g8/c8) already identifies the corner.
//
//  BITMAP 32-bit, bits 20-31 unused
//  |cap(3)|prom(3)|type(2)|from(6)|to(6)|
//  19    17 16   14 13  12 11    6 5    0
type Move uint32

// MoveNone is the zero value: not a valid move.
const MoveNone Move = 0

const (
	toShift       uint = 0
	fromShift     uint = 6
	typeShift     uint = 12
	promTypeShift uint = 14
	capTypeShift  uint = 17

	sqMask Move = 0x3F
	ptMask Move = 0x7

	toMask   = sqMask << toShift
	fromMask = sqMask << fromShift
	typeMask = Move(0x3) << typeShift
	promMask = ptMask << promTypeShift
	capMask  = ptMask << capTypeShift
)

// CreateMove encodes a non-capturing, non-promotion move.
func CreateMove(from, to Square, t MoveType) Move {
	return CreateCaptureMove(from, to, t, PtNone)
}

// CreateCaptureMove encodes a move that captures the given piece type
// (PtNone if it doesn't capture).
func CreateCaptureMove(from, to Square, t MoveType, captured PieceType) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(t)<<typeShift |
		Move(PtNone)<<promTypeShift |
		Move(captured)<<capTypeShift
}

// CreatePromotionMove encodes a promotion move, capturing captured
// (PtNone if it doesn't capture) and promoting to promType.
func CreatePromotionMove(from, to Square, promType PieceType, captured PieceType) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(Promotion)<<typeShift |
		Move(promType)<<promTypeShift |
		Move(captured)<<capTypeShift
}

// MoveType returns the move's shape: Normal, Promotion, EnPassant, Castling.
func (m Move) MoveType() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// PromotionType returns the promoted-to piece type. Meaningless unless
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m & promMask) >> promTypeShift)
}

// CapturedType returns the captured piece type, or PtNone if the move
// is not a capture.
func (m Move) CapturedType() PieceType {
	return PieceType((m & capMask) >> capTypeShift)
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.CapturedType() != PtNone
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// EnPassantCapturedSquare returns the square of the pawn captured by
// an en-passant move. Meaningless unless MoveType() == EnPassant.
func (m Move) EnPassantCapturedSquare() Square {
	to := m.To()
	if to.RankOf() == Rank6 {
		return SquareOf(to.FileOf(), Rank5)
	}
	return SquareOf(to.FileOf(), Rank4)
}

// IsKingsideCastle reports whether a Castling move crosses to the g-file.
func (m Move) IsKingsideCastle() bool {
	return m.To().FileOf() == FileG
}

// IsValid reports whether the move's squares, promotion type, captured
// type and move type are all within their valid ranges. MoveNone is
// not valid in this sense.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() || !m.MoveType().IsValid() {
		return false
	}
	if m.MoveType() == Promotion && !(m.PromotionType() > Pawn && m.PromotionType() < King) {
		return false
	}
	return m.CapturedType().IsValid() || m.CapturedType() == PtNone
}

// String returns a human-readable description of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s type:%s cap:%s }", m.StringAlgebraic(), m.MoveType().String(), m.CapturedType().Char())
}

// StringAlgebraic renders the move as <from><to>[promotion], or O-O /
// O-O-O for castling (§6).
func (m Move) StringAlgebraic() string {
	if m == MoveNone {
		return "0000"
	}
	if m.MoveType() == Castling {
		if m.IsKingsideCastle() {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

// StringBits returns a string with the move's raw bit fields, useful
// for debugging and logging.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%06b](%s) To[%06b](%s) Type[%02b](%s) Prom[%03b](%s) Cap[%03b](%s) (%d) }",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.MoveType(), m.MoveType().String(),
		m.PromotionType(), m.PromotionType().Char(),
		m.CapturedType(), m.CapturedType().Char(),
		m)
}
