//
// Sudodle - Latin square puzzle engine in GO
//
// MIT License
//
// Copyright (c) 2025 Zulko
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

// Package generator creates Latin squares: a seeded randomized
// backtracking generator with a wall clock budget and the
// Jacobson-Matthews intercalate-flip sampler built on top of it for
// near-uniform sampling.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Zulko/sudodle/internal/types"
)

// ErrTimeout is returned when the generator's time budget elapses
// before a square is completed.
var ErrTimeout = errors.New("latin square generation timed out")

// generator bundles the state of one backtracking run.
//  Create with newGenerator(), run with fill(0).
type generator struct {
	n        int
	fullMask types.ValueSet
	grid     types.Grid
	rowUsed  []types.ValueSet
	colUsed  []types.ValueSet
	rng      *rand.Rand

	startTime time.Time
	timeLimit time.Duration
	stopFlag  bool
}

func newGenerator(n int, seed int64, timeLimit time.Duration) *generator {
	return &generator{
		n:         n,
		fullMask:  types.FullSet(n),
		grid:      types.NewGrid(n),
		rowUsed:   make([]types.ValueSet, n),
		colUsed:   make([]types.ValueSet, n),
		rng:       rand.New(rand.NewSource(seed)),
		timeLimit: timeLimit,
	}
}

// stopConditions checks if the time budget for this run has elapsed.
// Checked at the top of every backtrack frame.
func (g *generator) stopConditions() bool {
	if g.stopFlag {
		return true
	}
	if g.timeLimit > 0 && time.Since(g.startTime) > g.timeLimit {
		g.stopFlag = true
	}
	return g.stopFlag
}

// fill visits cells in row-major order and tries the still available
// values of each cell in randomized order. Returns true when all
// cells have been filled.
func (g *generator) fill(cell int) bool {
	if g.stopConditions() {
		return false
	}
	if cell == g.n*g.n {
		return true
	}

	i := cell / g.n
	j := cell % g.n

	avail := g.fullMask &^ (g.rowUsed[i] | g.colUsed[j])
	if avail == 0 {
		return false
	}

	// extract candidate values and shuffle them
	candidates := avail.Values()
	g.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})

	for _, v := range candidates {
		bit := v - 1
		g.grid[i][j] = v
		g.rowUsed[i].Add(bit)
		g.colUsed[j].Add(bit)

		if g.fill(cell + 1) {
			return true
		}

		// undo placement
		g.rowUsed[i].Remove(bit)
		g.colUsed[j].Remove(bit)
		g.grid[i][j] = types.Empty
	}
	return false
}

// RandomLatinSquare generates a single n×n Latin square in a
// reproducible pseudo-random way. The same (n, seed) pair produces
// the same square. A timeLimit of 0 means no budget. Returns
// ErrTimeout when the budget elapses, ErrInvalidSize for an
// unsupported order. Algorithmically the generation always succeeds
// for reasonable n; a slow scheduling of candidates is the only
// cause of failure.
func RandomLatinSquare(n int, seed int64, timeLimit time.Duration) (types.Grid, error) {
	if !types.ValidSize(n) {
		return nil, types.ErrInvalidSize
	}
	g := newGenerator(n, seed, timeLimit)
	g.startTime = time.Now()
	if g.fill(0) {
		return g.grid, nil
	}
	return nil, ErrTimeout
}

// RandomLatinSquareRetry calls RandomLatinSquare until an attempt
// completes within the per attempt budget. Each retry reseeds the
// generator (seed + attempt count) so that a budget too short for one
// unlucky candidate ordering cannot spin forever on the same seed.
func RandomLatinSquareRetry(n int, seed int64, attemptLimit time.Duration) (types.Grid, error) {
	if !types.ValidSize(n) {
		return nil, types.ErrInvalidSize
	}
	for attempt := int64(0); ; attempt++ {
		grid, err := RandomLatinSquare(n, seed+attempt, attemptLimit)
		if err == nil {
			return grid, nil
		}
	}
}
