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

// evalConfiguration holds the tunable weights of the static position
// score, which is always White-positive: material plus PinBonus per
// Black piece pinned minus PinBonus per White piece pinned, plus
// MobilityBonus times the difference of the two sides' attack counts.
type evalConfiguration struct {
	PinBonus      int
	MobilityBonus int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Eval.PinBonus = 10
	Settings.Eval.MobilityBonus = 10
}

// set defaults for configurations not supplied by the config file.
func setupEval() {
	if Settings.Eval.PinBonus == 0 {
		Settings.Eval.PinBonus = 10
	}
	if Settings.Eval.MobilityBonus == 0 {
		Settings.Eval.MobilityBonus = 10
	}
}
