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
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// repetitionCapacity bounds the ring buffer at 100 half-moves: well
// past the fifty-move window and sufficient for threefold-repetition
// detection against recent play (§9).
const repetitionCapacity = 100

// repetitionStack is a fixed-capacity FIFO of position hashes. Add
// shifts out the oldest entry once full; Repetitions counts matches.
type repetitionStack struct {
	hashes [repetitionCapacity]Key
	count  int
	next   int
}

// add appends h, evicting the oldest entry once the ring is full.
func (r *repetitionStack) add(h Key) {
	r.hashes[r.next] = h
	r.next = (r.next + 1) % repetitionCapacity
	if r.count < repetitionCapacity {
		r.count++
	}
}

// repetitions returns how many entries currently in the stack equal h.
// A plain sequential scan, used when the stack is sparsely populated.
func (r *repetitionStack) repetitions(h Key) int {
	n := 0
	for i := 0; i < r.count; i++ {
		if r.hashes[i] == h {
			n++
		}
	}
	return n
}

// repetitionParallelThreshold is the stack size above which the
// fork-join scan pays for its own overhead; below it a plain sequential
// scan is cheaper.
const repetitionParallelThreshold = 16

// repetitionWorkers caps the fan-out for the parallel scan below; the
// stack holds at most 100 entries so more workers than that buys nothing.
const repetitionWorkers = 4

// repetitionsParallel is the fork-join form of repetitions (§5 point 3):
// the linear scan over the Zobrist stack is a reduction over independent
// chunks, split across a bounded errgroup and summed with an atomic
// counter.
func (r *repetitionStack) repetitionsParallel(h Key) int {
	if r.count == 0 {
		return 0
	}
	workers := repetitionWorkers
	if workers > r.count {
		workers = r.count
	}
	chunk := (r.count + workers - 1) / workers
	var total int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > r.count {
			hi = r.count
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			n := 0
			for i := lo; i < hi; i++ {
				if r.hashes[i] == h {
					n++
				}
			}
			atomic.AddInt64(&total, int64(n))
			return nil
		})
	}
	_ = g.Wait()
	return int(total)
}
