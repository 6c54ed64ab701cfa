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

import "strconv"

// Value is a position or move score. Sentinels ValueWhiteWins and
// ValueBlackWins denote a forced result; ValueDraw denotes a forced draw.
type Value int32

// Score sentinels (§6).
const (
	ValueDraw      Value = 0
	ValueWhiteWins Value = 1_000_000
	ValueBlackWins Value = -1_000_000
	ValueNA        Value = -2_000_000
)

// IsValid reports whether v is a value the engine could actually produce.
func (v Value) IsValid() bool {
	return v >= ValueBlackWins && v <= ValueWhiteWins
}

// String renders the value as a signed decimal integer, or "N/A".
func (v Value) String() string {
	if v == ValueNA {
		return "N/A"
	}
	return strconv.Itoa(int(v))
}
