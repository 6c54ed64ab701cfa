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

// PieceType is a six-valued ordered set. The order matters: code
// classifies sliders by comparing pt > Knight, and capture/promotion
// priority follows this same order.
//  Pawn     = 0
//  Knight   = 1
//  Bishop   = 2
//  Rook     = 3
//  Queen    = 4
//  King     = 5
//  PtNone   = 6
type PieceType uint8

// PieceType constants, ordered Pawn..King with PtNone as sentinel.
const (
	Pawn     PieceType = 0
	Knight   PieceType = 1
	Bishop   PieceType = 2
	Rook     PieceType = 3
	Queen    PieceType = 4
	King     PieceType = 5
	PtNone   PieceType = 6
	PtLength PieceType = 7
)

// IsValid checks if pt is a valid piece type (excludes PtNone).
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// IsSlider reports whether pieces of this type move along rays
// (bishop, rook, queen).
func (pt PieceType) IsSlider() bool {
	return pt > Knight && pt < King
}

var gamePhaseValue = [PtLength]int{0, 1, 1, 2, 4, 0, 0}

// GamePhaseValue returns a value for calculating game phase by
// summing this value over all pieces currently on the board.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeValue = [PtLength]Value{100, 300, 300, 500, 900, 0, 0}

// ValueOf returns the material value of the piece type (§4.5.6).
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "NOPIECE"}

// String returns a string representation of a piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "PNBRQK-"

// Char returns a single-character representation of a piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
