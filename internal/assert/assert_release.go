// +build !debug

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

// Package assert provides a debug-only internal consistency check; its
// one caller verifies that the pin axes computed by the move generator
// are pairwise disjoint. Contract violations in movegen.Apply (an
// invalid move, an empty from square) panic directly and do not go
// through this package. Built without the "debug" tag, Assert is a
// no-op the compiler eliminates at the call site.
package assert

// DEBUG controls whether Assert actually checks its condition.
const DEBUG = false

// Assert panics with msg if test is false. Always wrap calls in
// "if assert.DEBUG { ... }" — Go still evaluates the varargs of a
// disabled call, so the wrapper is what actually elides the cost.
func Assert(test bool, msg string, a ...interface{}) {}
