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

package puzzle

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zulko/sudodle/internal/solver"
	"github.com/Zulko/sudodle/internal/types"
)

func TestForEachCombination(t *testing.T) {
	var combos [][]int
	forEachCombination(4, 2, func(indices []int) {
		combo := make([]int, len(indices))
		copy(combo, indices)
		combos = append(combos, combo)
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, combos)

	count := 0
	forEachCombination(6, 3, func([]int) { count++ })
	assert.Equal(t, 20, count)

	count = 0
	forEachCombination(3, 0, func([]int) { count++ })
	assert.Equal(t, 1, count)

	count = 0
	forEachCombination(3, 4, func([]int) { count++ })
	assert.Equal(t, 0, count)
}

func TestCandidateTileSetsDedup(t *testing.T) {
	sets := candidateTileSets(2, 1)
	// of the four cells (0,1) and (1,0) coincide under transpose
	assert.Equal(t, 3, len(sets))
}

func TestFindSingleSolutionPuzzles4x4(t *testing.T) {
	base := types.CyclicLatinSquare(4)
	discovered, err := FindSingleSolutionPuzzles(base, 4, 5*time.Second)
	assert.NoError(t, err)
	assert.True(t, len(discovered) > 0)

	for _, d := range discovered {
		// the returned tiles are canonical
		assert.Equal(t, d.Tiles, d.Tiles.Canonical())
		assert.True(t, d.Solution.IsLatinSquare())
		// every unrevealed cell forbids the base value, so the unique
		// solution differs from the base in at least one cell
		assert.False(t, d.Solution.Equals(base))

		// re-verify uniqueness with the clue encoding
		known, wrong := Clues(base, d.Tiles)
		result, err := solver.CompleteAll(4, known, wrong, 5*time.Second, 2)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result.Solutions))
		assert.True(t, d.Solution.Equals(result.Solutions[0]))
	}
}

func TestFindSingleSolutionPuzzlesParallelMatches(t *testing.T) {
	base := types.CyclicLatinSquare(4)
	sequential, err := FindSingleSolutionPuzzles(base, 4, 5*time.Second)
	assert.NoError(t, err)
	parallel, err := FindSingleSolutionPuzzlesParallel(base, 4, 4, 5*time.Second)
	assert.NoError(t, err)

	assert.Equal(t, len(sequential), len(parallel))
	seqKeys := discoveredKeys(sequential)
	parKeys := discoveredKeys(parallel)
	assert.Equal(t, seqKeys, parKeys)
}

func discoveredKeys(discovered []Discovered) []string {
	keys := make([]string, 0, len(discovered))
	for _, d := range discovered {
		keys = append(keys, d.Tiles.Key())
	}
	sort.Strings(keys)
	return keys
}

func TestClues(t *testing.T) {
	base := types.CyclicLatinSquare(3)
	tiles := types.TileSet{{0, 0}, {1, 2}}
	known, wrong := Clues(base, tiles)
	assert.Equal(t, 2, len(known))
	assert.Equal(t, 7, len(wrong))
	assert.Equal(t, 1, known[types.Tile{Row: 0, Col: 0}])
	assert.Equal(t, []int{2}, wrong[types.Tile{Row: 0, Col: 1}])
}
