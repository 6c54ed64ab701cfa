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
	"github.com/kopfjaeger/branchmate/internal/attacks"
	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// rankMask, fileMask, diagAscMask and diagDescMask are the four
// direction maps of §4.2/§4.3: the full line through sq, excluding sq
// itself, along one of the pin-detection axes. diagAsc runs a1-h8
// (Northeast/Southwest), diagDesc runs a8-h1 (Northwest/Southeast).
func rankMask(sq Square) Bitboard {
	return attacks.Ray(sq, E) | attacks.Ray(sq, W)
}

func fileMask(sq Square) Bitboard {
	return attacks.Ray(sq, N) | attacks.Ray(sq, S)
}

func diagAscMask(sq Square) Bitboard {
	return attacks.Ray(sq, NE) | attacks.Ray(sq, SW)
}

func diagDescMask(sq Square) Bitboard {
	return attacks.Ray(sq, NW) | attacks.Ray(sq, SE)
}
