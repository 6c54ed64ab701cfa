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

package config

import "runtime"

// searchConfiguration holds the configuration of a best-first search tree.
type searchConfiguration struct {
	// MaxWorkers bounds the number of goroutines used by the search
	// tree's fork-join sections (child generation, child sorting).
	// Repetition counting uses its own fixed cap and ignores it.
	// 0 means "use runtime.NumCPU()".
	MaxWorkers int

	// DefaultDepth is the number of plies expanded when a caller does
	// not specify one explicitly.
	DefaultDepth int

	// ExpandStyle selects which child a level-by-level expansion picks
	// when several widen by the same count: "default" always expands
	// the highest-scored sibling first, "random" breaks ties among
	// equally-scored siblings at random.
	ExpandStyle string
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.MaxWorkers = 0
	Settings.Search.DefaultDepth = 6
	Settings.Search.ExpandStyle = "default"
}

// set defaults for configurations not supplied by the config file.
func setupSearch() {
	if Settings.Search.MaxWorkers <= 0 {
		Settings.Search.MaxWorkers = runtime.NumCPU()
	}
	if Settings.Search.ExpandStyle == "" {
		Settings.Search.ExpandStyle = "default"
	}
}
