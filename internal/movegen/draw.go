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
	"github.com/kopfjaeger/branchmate/internal/position"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// insufficientMaterialSide reports whether color c, on its own, holds
// too little material to ever force checkmate: bare king, king and
// one knight, or king and one bishop (§4.5.1).
func insufficientMaterialSide(pos *position.Position, c Color) bool {
	if pos.PiecesBb(c, Pawn) != BbZero ||
		pos.PiecesBb(c, Rook) != BbZero ||
		pos.PiecesBb(c, Queen) != BbZero {
		return false
	}
	knights := pos.PiecesBb(c, Knight).PopCount()
	bishops := pos.PiecesBb(c, Bishop).PopCount()
	return knights+bishops <= 1
}

// insufficientMaterial reports whether neither side holds enough
// material to force checkmate.
func insufficientMaterial(pos *position.Position) bool {
	return insufficientMaterialSide(pos, White) && insufficientMaterialSide(pos, Black)
}
