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

// Package puzzle discovers valid Sudodle puzzles - subsets of
// revealed cells of a base Latin square which admit exactly one
// completion under the game's clue encoding - and handles the
// textual puzzle formats (discovery line output and the compacted
// catalog payload).
package puzzle

import (
	"time"

	"github.com/Zulko/sudodle/internal/pool"
	"github.com/Zulko/sudodle/internal/solver"
	"github.com/Zulko/sudodle/internal/types"
	"github.com/Zulko/sudodle/internal/util"
)

// Discovered pairs a tile set with the unique completion it admits.
type Discovered struct {
	Tiles    types.TileSet
	Solution types.Grid
}

// Clues builds the game's clue encoding for a tile set over a base
// grid: a positive clue per revealed cell and, for every other cell,
// the negative clue that the player's initial guess there (the base
// value) is wrong.
func Clues(base types.Grid, tiles types.TileSet) (types.KnownValues, types.WrongValues) {
	n := base.Size()
	known := make(types.KnownValues, len(tiles))
	wrong := make(types.WrongValues, n*n-len(tiles))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tile := types.Tile{Row: i, Col: j}
			if tiles.Contains(tile) {
				known[tile] = base[i][j]
			} else {
				wrong[tile] = []int{base[i][j]}
			}
		}
	}
	return known, wrong
}

// FindSingleSolutionPuzzles enumerates all k-element subsets of the
// cells of the base grid in combinatorial order, canonicalizes each
// under transpose symmetry, and retains those whose clue encoding
// admits exactly one completion. solveLimit bounds each solver call.
func FindSingleSolutionPuzzles(base types.Grid, k int, solveLimit time.Duration) ([]Discovered, error) {
	n := base.Size()
	if !types.ValidSize(n) {
		return nil, types.ErrInvalidSize
	}

	var discovered []Discovered
	for _, tiles := range candidateTileSets(n, k) {
		known, wrong := Clues(base, tiles)
		result, err := solver.CompleteAll(n, known, wrong, solveLimit, 2)
		if err != nil {
			return nil, err
		}
		if len(result.Solutions) == 1 {
			discovered = append(discovered, Discovered{Tiles: tiles, Solution: result.Solutions[0]})
		}
	}
	return discovered, nil
}

// FindSingleSolutionPuzzlesParallel is FindSingleSolutionPuzzles
// with the candidate tile sets split into chunks fanned out over the
// task harness. Each chunk polls its stop flag between solver calls
// so a per-task budget cuts a chunk short cleanly. The result order
// follows task completion; callers needing a stable order sort by
// tile set.
func FindSingleSolutionPuzzlesParallel(base types.Grid, k, workers int, solveLimit time.Duration) ([]Discovered, error) {
	n := base.Size()
	if !types.ValidSize(n) {
		return nil, types.ErrInvalidSize
	}

	candidates := candidateTileSets(n, k)
	workers = pool.Workers(workers)
	chunkSize := util.Max(1, (len(candidates)+workers-1)/workers)

	var tasks []pool.Task
	for start := 0; start < len(candidates); start += chunkSize {
		chunk := candidates[start:util.Min(start+chunkSize, len(candidates))]
		tasks = append(tasks, func(stop *util.Bool) interface{} {
			var found []Discovered
			for _, tiles := range chunk {
				if stop.Load() {
					break
				}
				known, wrong := Clues(base, tiles)
				result, err := solver.CompleteAll(n, known, wrong, solveLimit, 2)
				if err != nil || len(result.Solutions) != 1 {
					continue
				}
				found = append(found, Discovered{Tiles: tiles, Solution: result.Solutions[0]})
			}
			return found
		})
	}

	var discovered []Discovered
	for _, tr := range pool.Run(tasks, workers, 0) {
		if found, ok := tr.Value.([]Discovered); ok {
			discovered = append(discovered, found...)
		}
	}
	return discovered, nil
}

// candidateTileSets returns the transpose-canonical k-subsets of the
// n×n cell coordinates, deduplicated, in combinatorial order of
// their first occurrence.
func candidateTileSets(n, k int) []types.TileSet {
	coords := make(types.TileSet, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			coords = append(coords, types.Tile{Row: i, Col: j})
		}
	}

	seen := make(map[string]struct{})
	var sets []types.TileSet
	forEachCombination(len(coords), k, func(indices []int) {
		tiles := make(types.TileSet, k)
		for p, idx := range indices {
			tiles[p] = coords[idx]
		}
		canonical := tiles.Canonical()
		key := canonical.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		sets = append(sets, canonical)
	})
	return sets
}

// forEachCombination visits all k-element index combinations of
// 0..n-1 in lexicographic order.
func forEachCombination(n, k int, visit func(indices []int)) {
	if k < 0 || k > n {
		return
	}
	indices := make([]int, k)
	for p := range indices {
		indices[p] = p
	}
	for {
		visit(indices)
		// advance to the next combination
		p := k - 1
		for p >= 0 && indices[p] == n-k+p {
			p--
		}
		if p < 0 {
			return
		}
		indices[p]++
		for q := p + 1; q < k; q++ {
			indices[q] = indices[q-1] + 1
		}
	}
}
