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

// Package solver is the constraint engine of Sudodle. It completes
// partially constrained Latin squares under positive ("cell = v") and
// negative ("cell != v") clues using backtracking with bitmask
// constraint propagation (naked and hidden singles), MRV variable
// ordering and least-constraining-value ordering.
package solver

import (
	"sort"
	"time"

	"github.com/Zulko/sudodle/internal/config"
	"github.com/Zulko/sudodle/internal/types"
)

// solver bundles the full search state of one CompleteAll call:
// the grid, the row/column used-value masks and the positional
// possibility masks, plus solution accumulation and the time budget.
type solver struct {
	n        int
	fullMask types.ValueSet
	grid     types.Grid

	// rowUsed[i] has bit v-1 set iff value v is placed in row i
	rowUsed []types.ValueSet
	// colUsed[j] has bit v-1 set iff value v is placed in column j
	colUsed []types.ValueSet
	// rowPossible[i][v-1] has bit j cleared once v is placed elsewhere
	// in row i, another value is placed at (i,j), or a negative clue
	// forbids v there; a placement of v in column j does not clear it
	rowPossible [][]types.ValueSet
	// colPossible[j][v-1] is the column counterpart: bit i is cleared
	// by placements in column j, at (i,j), or by a negative clue
	colPossible [][]types.ValueSet

	maxSolutions int
	startTime    time.Time
	timeLimit    time.Duration
	stopFlag     bool

	solutions []types.Grid
	branches  []int
	stats     Statistics
}

// CompleteAll finds completions of a partial n×n Latin square
// consistent with the given positive and negative clues, up to
// maxSolutions grids (0 or less means unbounded). BranchSamples in
// the result records the number of candidates considered at every
// branching decision, which external callers use as a difficulty
// proxy. Inconsistent clues yield an empty solution list; an elapsed
// time budget yields the solutions found so far with Partial set.
// The only error returned is for out-of-range input.
func CompleteAll(n int, known types.KnownValues, wrong types.WrongValues, timeLimit time.Duration, maxSolutions int) (*Result, error) {
	if err := known.Validate(n); err != nil {
		return nil, err
	}
	if err := wrong.Validate(n); err != nil {
		return nil, err
	}

	s := &solver{
		n:            n,
		fullMask:     types.FullSet(n),
		maxSolutions: maxSolutions,
		timeLimit:    timeLimit,
	}
	s.startTime = time.Now()
	s.run(known, wrong)

	return &Result{
		Solutions:     s.solutions,
		BranchSamples: s.branches,
		Partial:       s.stopFlag,
		SolveTime:     time.Since(s.startTime),
		Stats:         s.stats,
	}, nil
}

// CompleteFirst is a convenience wrapper around CompleteAll with
// maxSolutions = 1. The second return value reports whether a
// completion was found.
func CompleteFirst(n int, known types.KnownValues, wrong types.WrongValues, timeLimit time.Duration) (types.Grid, bool, error) {
	result, err := CompleteAll(n, known, wrong, timeLimit, 1)
	if err != nil {
		return nil, false, err
	}
	if len(result.Solutions) == 0 {
		return nil, false, nil
	}
	return result.Solutions[0], true, nil
}

// run initializes the constraint state from the clues and starts the
// search. All contradictions are absorbed silently; they simply
// leave s.solutions empty.
func (s *solver) run(known types.KnownValues, wrong types.WrongValues) {
	if !s.initialize(known, wrong) {
		return
	}

	// initial constraint propagation - solve all obvious cells first
	if !s.propagate() {
		return
	}
	if !s.validState() {
		return
	}

	// already solved by initial propagation?
	if s.grid.IsComplete() {
		if s.grid.IsLatinSquare() {
			s.solutions = append(s.solutions, s.grid.Clone())
		}
		return
	}

	s.search()
}

// initialize places the known values, builds the four bitmask arrays
// and applies the negative clues. Returns false when the known
// values alone already violate row or column uniqueness.
func (s *solver) initialize(known types.KnownValues, wrong types.WrongValues) bool {
	n := s.n
	s.grid = types.NewGrid(n)
	s.rowUsed = make([]types.ValueSet, n)
	s.colUsed = make([]types.ValueSet, n)
	s.rowPossible = make([][]types.ValueSet, n)
	s.colPossible = make([][]types.ValueSet, n)
	for i := 0; i < n; i++ {
		s.rowPossible[i] = make([]types.ValueSet, n)
		s.colPossible[i] = make([]types.ValueSet, n)
		for v := 0; v < n; v++ {
			s.rowPossible[i][v] = s.fullMask
			s.colPossible[i][v] = s.fullMask
		}
	}

	for tile, v := range known {
		s.grid[tile.Row][tile.Col] = v
	}

	// reject duplicates in a row or column
	for i := 0; i < n; i++ {
		var rowSeen, colSeen types.ValueSet
		for j := 0; j < n; j++ {
			if v := s.grid[i][j]; v != types.Empty {
				if rowSeen.Has(v - 1) {
					return false
				}
				rowSeen.Add(v - 1)
			}
			if v := s.grid[j][i]; v != types.Empty {
				if colSeen.Has(v - 1) {
					return false
				}
				colSeen.Add(v - 1)
			}
		}
	}

	// constraint masks for the placed values
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if s.grid[i][j] != types.Empty {
				s.updateConstraints(i, j, s.grid[i][j])
			}
		}
	}

	// negative clues
	for tile, values := range wrong {
		for _, v := range values {
			s.rowPossible[tile.Row][v-1].Remove(tile.Col)
			s.colPossible[tile.Col][v-1].Remove(tile.Row)
		}
	}
	return true
}

// updateConstraints maintains the bitmask arrays after value has been
// placed at (i,j): the value is used in row i and column j, it can no
// longer go anywhere else in that row or column, and no other value
// can go at (i,j).
func (s *solver) updateConstraints(i, j, value int) {
	bit := value - 1
	s.rowUsed[i].Add(bit)
	s.colUsed[j].Add(bit)

	for k := 0; k < s.n; k++ {
		if k != j {
			s.rowPossible[i][bit].Remove(k)
		}
		if k != i {
			s.colPossible[j][bit].Remove(k)
		}
	}
	for v := 0; v < s.n; v++ {
		if v != bit {
			s.rowPossible[i][v].Remove(j)
			s.colPossible[j][v].Remove(i)
		}
	}
}

// candidateMask computes the candidates of the empty cell (i,j):
// values not yet used in row i or column j whose positional masks
// still allow position j (resp. i).
func (s *solver) candidateMask(i, j int) types.ValueSet {
	mask := s.fullMask &^ (s.rowUsed[i] | s.colUsed[j])
	m := mask
	for m != 0 {
		v := m.PopLsb()
		if !s.rowPossible[i][v].Has(j) || !s.colPossible[j][v].Has(i) {
			mask.Remove(v)
		}
	}
	return mask
}

// candidates returns the candidate values of the empty cell (i,j) in
// ascending 1-indexed order.
func (s *solver) candidates(i, j int) []int {
	return s.candidateMask(i, j).Values()
}

// propagate applies forced moves until a pass changes nothing:
// hidden singles in rows, hidden singles in columns and naked
// singles. Returns false on a contradiction (an empty cell without
// candidates).
func (s *solver) propagate() bool {
	useHidden := config.Settings.Solver.UseHiddenSingles
	changed := true
	for changed {
		changed = false
		s.stats.PropagationPasses++

		if useHidden {
			// hidden singles in rows
			for i := 0; i < s.n; i++ {
				for v := 0; v < s.n; v++ {
					if s.rowUsed[i].Has(v) {
						continue
					}
					mask := s.rowPossible[i][v]
					if mask != 0 && mask.PopCount() == 1 {
						j := mask.Lsb()
						if s.grid[i][j] == types.Empty {
							s.grid[i][j] = v + 1
							s.updateConstraints(i, j, v+1)
							s.stats.HiddenSinglesRow++
							changed = true
						}
					}
				}
			}

			// hidden singles in columns
			for j := 0; j < s.n; j++ {
				for v := 0; v < s.n; v++ {
					if s.colUsed[j].Has(v) {
						continue
					}
					mask := s.colPossible[j][v]
					if mask != 0 && mask.PopCount() == 1 {
						i := mask.Lsb()
						if s.grid[i][j] == types.Empty {
							s.grid[i][j] = v + 1
							s.updateConstraints(i, j, v+1)
							s.stats.HiddenSinglesCol++
							changed = true
						}
					}
				}
			}
		}

		// naked singles
		for i := 0; i < s.n; i++ {
			for j := 0; j < s.n; j++ {
				if s.grid[i][j] != types.Empty {
					continue
				}
				mask := s.candidateMask(i, j)
				switch mask.PopCount() {
				case 0:
					return false
				case 1:
					s.grid[i][j] = mask.Lsb() + 1
					s.updateConstraints(i, j, s.grid[i][j])
					s.stats.NakedSingles++
					changed = true
				}
			}
		}
	}
	return true
}

// validState checks the constraint state for dead ends: an empty
// cell without candidates, or an unplaced (row,value) / (col,value)
// pair whose positional mask is all zero.
func (s *solver) validState() bool {
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if s.grid[i][j] == types.Empty && s.candidateMask(i, j) == 0 {
				return false
			}
		}
	}
	for i := 0; i < s.n; i++ {
		for v := 0; v < s.n; v++ {
			if !s.rowUsed[i].Has(v) && s.rowPossible[i][v] == 0 {
				return false
			}
			if !s.colUsed[i].Has(v) && s.colPossible[i][v] == 0 {
				return false
			}
		}
	}
	return true
}

// mostConstrainedCell returns the empty cell with the fewest
// candidates (MRV) and that count. found is false when no empty cell
// remains.
func (s *solver) mostConstrainedCell() (cell types.Tile, choices int, found bool) {
	choices = s.n + 1
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if s.grid[i][j] != types.Empty {
				continue
			}
			c := s.candidateMask(i, j).PopCount()
			if c == 0 {
				return types.Tile{Row: i, Col: j}, 0, true
			}
			if c < choices {
				cell = types.Tile{Row: i, Col: j}
				choices = c
				found = true
				if c == 1 {
					return cell, 1, true
				}
			}
		}
	}
	return cell, choices, found
}

// constraintScore counts the still empty cells in the row and column
// of (i,j) which currently admit value v - the number of peer options
// a placement of v would eliminate.
func (s *solver) constraintScore(i, j, v int) int {
	bit := v - 1
	score := 0
	for k := 0; k < s.n; k++ {
		if k != j && s.grid[i][k] == types.Empty && s.rowPossible[i][bit].Has(k) {
			score++
		}
		if k != i && s.grid[k][j] == types.Empty && s.colPossible[j][bit].Has(k) {
			score++
		}
	}
	return score
}

// stopConditions checks if the time budget has elapsed. Checked at
// the top of every backtrack frame.
func (s *solver) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.timeLimit > 0 && time.Since(s.startTime) > s.timeLimit {
		s.stopFlag = true
	}
	return s.stopFlag
}

// enough reports whether the solution bound has been reached.
func (s *solver) enough() bool {
	return s.maxSolutions > 0 && len(s.solutions) >= s.maxSolutions
}

// search is the recursive backtracking step: propagate, record a
// completed square, or branch on the most constrained cell with
// least-constraining values first. The visible state after a failed
// branch equals the state immediately before the placement.
func (s *solver) search() {
	if s.stopConditions() {
		return
	}
	if s.enough() {
		return
	}
	s.stats.NodesVisited++

	if !s.propagate() {
		return
	}

	if s.grid.IsComplete() {
		// revalidate defensively before recording
		if s.grid.IsLatinSquare() {
			s.solutions = append(s.solutions, s.grid.Clone())
		}
		return
	}

	cell, choices, found := s.mostConstrainedCell()
	if !found {
		if s.grid.IsLatinSquare() {
			s.solutions = append(s.solutions, s.grid.Clone())
		}
		return
	}
	if choices == 0 {
		return
	}
	if choices > 1 {
		s.branches = append(s.branches, choices)
		s.stats.Branches++
	}

	i, j := cell.Row, cell.Col
	candidates := s.candidates(i, j)

	if config.Settings.Solver.UseLCV {
		// try values that eliminate fewer peer options first;
		// stable sort keeps ascending value order on ties
		sort.SliceStable(candidates, func(a, b int) bool {
			return s.constraintScore(i, j, candidates[a]) < s.constraintScore(i, j, candidates[b])
		})
	}

	for _, v := range candidates {
		if s.enough() || s.stopConditions() {
			return
		}

		saved := s.saveState()
		s.grid[i][j] = v
		s.updateConstraints(i, j, v)
		if s.validState() {
			s.search()
		}
		s.restoreState(saved)
	}
}
