/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// cmd/engine is a thin entry point exercising perft and a fixed-depth
// search from a FEN argument (SPEC_FULL.md §D) — not the interactive
// game loop or UCI driver §1 excludes as non-goals.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopfjaeger/branchmate/internal/config"
	"github.com/kopfjaeger/branchmate/internal/movegen"
	"github.com/kopfjaeger/branchmate/internal/position"
	"github.com/kopfjaeger/branchmate/internal/search"
	"github.com/kopfjaeger/branchmate/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "FEN of the position to run perft/search on")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth from -fen and print the node count per ply")
	searchDepth := flag.Int("depth", 0, "run a fixed-depth best-first search from -fen and print the ranked root moves\n(0 uses config.Settings.Search.DefaultDepth)")
	seed := flag.Int64("seed", 1, "seed for the Random expand style (ignored by the default expand style)")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling for the duration of the run")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := position.NewFromFen(*fen)
	if err != nil {
		out.Printf("invalid FEN %q: %s\n", *fen, err)
		return
	}

	if *perftDepth > 0 {
		runPerft(pos, *perftDepth)
		return
	}

	depth := *searchDepth
	if depth <= 0 {
		depth = config.Settings.Search.DefaultDepth
	}
	runSearch(pos, depth, *seed)
}

func runPerft(pos position.Position, maxDepth int) {
	defer util.TimeTrack(time.Now(), "perft")
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := movegen.Perft(pos, d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d  (%s, %d nps)\n", d, nodes, elapsed, util.Nps(uint64(nodes), elapsed))
	}
	out.Println(util.MemStat())
}

func runSearch(pos position.Position, depth int, seed int64) {
	defer util.TimeTrack(time.Now(), "search")
	tree := search.NewTree(pos, seed)
	start := time.Now()
	if err := tree.ExpandToDepth(context.Background(), depth); err != nil {
		out.Printf("search aborted: %s\n", err)
		return
	}
	elapsed := time.Since(start)

	out.Printf("reached depth %d in %s using %d workers\n", tree.Depth(), elapsed, config.Settings.Search.MaxWorkers)
	for i, rm := range tree.RankedMoves() {
		out.Printf("%2d. %-6s score %s\n", i+1, rm.Move.StringAlgebraic(), rm.Score.String())
	}
	out.Println(util.GcWithStats())
}
