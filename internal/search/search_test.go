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

import (
	"context"
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopfjaeger/branchmate/internal/config"
	"github.com/kopfjaeger/branchmate/internal/logging"
	"github.com/kopfjaeger/branchmate/internal/movegen"
	"github.com/kopfjaeger/branchmate/internal/position"
)

var logTest *logging2.Logger

// make tests run in the project's root directory so config.Setup()
// finds the default config file path.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func TestWidthFunctions(t *testing.T) {
	assert.Equal(t, 1, wChild(1))
	assert.Equal(t, 3, wChild(4))
	assert.Equal(t, 21, wChild(400))
	assert.Equal(t, 0, wAll(0))
	assert.Equal(t, 4, wAll(4))
	assert.Equal(t, 80, wAll(400))
}

func TestExpandToDepthReachesTarget(t *testing.T) {
	tree := NewTree(position.New(), 42)
	require.NoError(t, tree.ExpandToDepth(context.Background(), 2))
	assert.Equal(t, 2, tree.Depth())
	assert.NotEmpty(t, tree.children[0])
}

func TestRankedMovesOrderedForWhiteToMove(t *testing.T) {
	tree := NewTree(position.New(), 7)
	require.NoError(t, tree.ExpandToDepth(context.Background(), 2))
	ranked := tree.RankedMoves()
	require.NotEmpty(t, ranked)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, int(ranked[i-1].Score), int(ranked[i].Score))
	}
	assert.LessOrEqual(t, len(ranked), wAll(len(tree.children[0])))
}

func TestRankedMovesOrderedForBlackToMove(t *testing.T) {
	p, err := position.NewFromFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	tree := NewTree(p, 7)
	require.NoError(t, tree.ExpandToDepth(context.Background(), 2))
	ranked := tree.RankedMoves()
	require.NotEmpty(t, ranked)
	// Black is the playing side: descending signed score means
	// ascending raw (White-positive) score.
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, int(ranked[i-1].Score), int(ranked[i].Score))
	}
}

func TestCheckmateRootNeverExpands(t *testing.T) {
	p, err := position.NewFromFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	tree := NewTree(p, 0)
	require.Equal(t, movegen.Checkmate, tree.RootState())
	require.NoError(t, tree.ExpandToDepth(context.Background(), 5))
	assert.Equal(t, 0, tree.Depth())
	assert.Empty(t, tree.Moves())
}

func TestRandomExpandStyleUsesInjectedRng(t *testing.T) {
	config.Settings.Search.ExpandStyle = "random"
	defer func() { config.Settings.Search.ExpandStyle = "default" }()

	treeA := NewTree(position.New(), 99)
	require.NoError(t, treeA.ExpandToDepth(context.Background(), 2))
	treeB := NewTree(position.New(), 99)
	require.NoError(t, treeB.ExpandToDepth(context.Background(), 2))
	assert.Equal(t, treeA.Moves(), treeB.Moves(), "identical seeds must reproduce identical move orderings")
}
