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

package search

// ExpandStyle selects how a parent's freshly scored children are
// ordered before width truncation (§C.1 of the supplemented
// features: the reference module's tree also supports a shuffled
// order alongside the default descending-score order).
type ExpandStyle int

const (
	// Default orders children by descending signed score (§4.7.1
	// step 4): ties keep insertion order (pre-sort index), per §5's
	// ordering guarantee.
	Default ExpandStyle = iota
	// Random shuffles children instead of sorting them by score,
	// with a *rand.Rand built per parent from the Tree's seed so the
	// shuffle stays deterministic given an explicit seed (§5).
	Random
)

func (s ExpandStyle) String() string {
	if s == Random {
		return "random"
	}
	return "default"
}

func expandStyleFromString(s string) ExpandStyle {
	if s == "random" {
		return Random
	}
	return Default
}
