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

// Package heuristics is a deliberately simple alternative solver
// which only applies the deductions a human player would: singleton
// cell domains and values with a unique possible position in a row
// or column. When no rule fires it guesses on the smallest domain
// and counts the guess. The guess count at completion is the
// puzzle's difficulty score; 0 means pure deduction sufficed.
package heuristics

import (
	"fmt"

	"github.com/Zulko/sudodle/internal/types"
)

// state holds the deduction state of one Solve call. Domains are
// per-cell candidate sets; rowPos[r][v-1] is the set of columns
// where value v can still go in row r, colPos[c][v-1] the set of
// rows for column c. rowDone/colDone flag (line, value) pairs whose
// placement has been processed.
type state struct {
	n        int
	domains  [][]types.ValueSet
	rowPos   [][]types.ValueSet
	colPos   [][]types.ValueSet
	rowDone  [][]bool
	colDone  [][]bool
	assigned [][]bool

	maxSolutions int
	solutions    []types.Grid
	branches     int
}

// Solve finds completions of a partial n×n Latin square using only
// human-style deductions plus guessing, up to maxSolutions grids
// (0 or less means unbounded). Returns the solutions and the number
// of branching decisions (guesses, not candidates) that were needed.
// For a valid puzzle (a unique completion) the heuristic always
// finds it.
func Solve(n int, known types.KnownValues, wrong types.WrongValues, maxSolutions int) ([]types.Grid, int, error) {
	if err := known.Validate(n); err != nil {
		return nil, 0, err
	}
	if err := wrong.Validate(n); err != nil {
		return nil, 0, err
	}

	st := newState(n, maxSolutions)

	// cell domains from positive and negative clues
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tile := types.Tile{Row: i, Col: j}
			if v, ok := known[tile]; ok {
				var dom types.ValueSet
				dom.Add(v - 1)
				st.domains[i][j] = dom
			} else {
				dom := types.FullSet(n)
				for _, v := range wrong[tile] {
					dom.Remove(v - 1)
				}
				st.domains[i][j] = dom
			}
		}
	}

	// apply the positive clues to the position sets
	for tile, v := range known {
		st.eliminateCell(tile.Row, tile.Col, v)
	}
	// negative clues remove positions for the forbidden values
	for tile, values := range wrong {
		for _, v := range values {
			st.rowPos[tile.Row][v-1].Remove(tile.Col)
			st.colPos[tile.Col][v-1].Remove(tile.Row)
		}
	}

	st.backtrack()
	return st.solutions, st.branches, nil
}

func newState(n, maxSolutions int) *state {
	st := &state{
		n:            n,
		domains:      make([][]types.ValueSet, n),
		rowPos:       make([][]types.ValueSet, n),
		colPos:       make([][]types.ValueSet, n),
		rowDone:      make([][]bool, n),
		colDone:      make([][]bool, n),
		assigned:     make([][]bool, n),
		maxSolutions: maxSolutions,
	}
	full := types.FullSet(n)
	for i := 0; i < n; i++ {
		st.domains[i] = make([]types.ValueSet, n)
		st.rowPos[i] = make([]types.ValueSet, n)
		st.colPos[i] = make([]types.ValueSet, n)
		st.rowDone[i] = make([]bool, n)
		st.colDone[i] = make([]bool, n)
		st.assigned[i] = make([]bool, n)
		for v := 0; v < n; v++ {
			st.rowPos[i][v] = full
			st.colPos[i][v] = full
		}
	}
	return st
}

// eliminateCell assigns (i,j)=v: fixes the domain, marks the
// (row,value) and (col,value) pairs as placed, removes v from the
// domains and positions of the peers of (i,j) and every other value
// from position (i,j).
// Runs at most once per cell.
func (st *state) eliminateCell(i, j, v int) {
	if st.assigned[i][j] {
		var dom types.ValueSet
		dom.Add(v - 1)
		st.domains[i][j] = dom
		return
	}
	st.assigned[i][j] = true

	var dom types.ValueSet
	dom.Add(v - 1)
	st.domains[i][j] = dom
	st.rowDone[i][v-1] = true
	st.colDone[j][v-1] = true

	// v is no longer a candidate of the other cells in row i and column j
	for k := 0; k < st.n; k++ {
		if k != j {
			st.domains[i][k].Remove(v - 1)
		}
		if k != i {
			st.domains[k][j].Remove(v - 1)
		}
	}

	// v cannot go at column j in any other row
	for row := 0; row < st.n; row++ {
		if row != i {
			st.rowPos[row][v-1].Remove(j)
		}
	}
	// v cannot go at row i in any other column
	for col := 0; col < st.n; col++ {
		if col != j {
			st.colPos[col][v-1].Remove(i)
		}
	}
	// no other value can go at (i,j)
	for vv := 0; vv < st.n; vv++ {
		st.rowPos[i][vv].Remove(j)
		st.colPos[j][vv].Remove(i)
	}
}

// propagate keeps applying the three forced-move rules until nothing
// changes: (i) singleton cell domains, (ii) values with a unique
// possible column in a row, (iii) values with a unique possible row
// in a column. Returns false on a contradiction.
func (st *state) propagate() bool {
	queue := true
	for queue {
		queue = false

		// a) contradiction: any empty domain?
		for i := 0; i < st.n; i++ {
			for j := 0; j < st.n; j++ {
				if st.domains[i][j] == 0 {
					return false
				}
			}
		}

		// b) singleton domains not yet processed
		for i := 0; i < st.n && !queue; i++ {
			for j := 0; j < st.n && !queue; j++ {
				dom := st.domains[i][j]
				if dom.PopCount() == 1 && !st.assigned[i][j] {
					st.eliminateCell(i, j, dom.Lsb()+1)
					queue = true
				}
			}
		}
		if queue {
			continue
		}

		// c) unique position in rows
		for r := 0; r < st.n && !queue; r++ {
			for v := 1; v <= st.n && !queue; v++ {
				if st.rowDone[r][v-1] {
					continue
				}
				poss := st.rowPos[r][v-1]
				if poss == 0 {
					return false
				}
				if poss.PopCount() == 1 {
					c := poss.Lsb()
					if !st.assigned[r][c] {
						st.eliminateCell(r, c, v)
						queue = true
					}
				}
			}
		}
		if queue {
			continue
		}

		// d) unique position in columns
		for c := 0; c < st.n && !queue; c++ {
			for v := 1; v <= st.n && !queue; v++ {
				if st.colDone[c][v-1] {
					continue
				}
				poss := st.colPos[c][v-1]
				if poss == 0 {
					return false
				}
				if poss.PopCount() == 1 {
					i := poss.Lsb()
					if !st.assigned[i][c] {
						st.eliminateCell(i, c, v)
						queue = true
					}
				}
			}
		}
	}
	return true
}

// solved reports whether every domain is a singleton.
func (st *state) solved() bool {
	for i := 0; i < st.n; i++ {
		for j := 0; j < st.n; j++ {
			if st.domains[i][j].PopCount() != 1 {
				return false
			}
		}
	}
	return true
}

// extract builds a grid from the singleton domains.
func (st *state) extract() types.Grid {
	grid := types.NewGrid(st.n)
	for i := 0; i < st.n; i++ {
		for j := 0; j < st.n; j++ {
			grid[i][j] = st.domains[i][j].Lsb() + 1
		}
	}
	return grid
}

// smallestDomain returns the unassigned cell with the smallest
// domain larger than one.
func (st *state) smallestDomain() (types.Tile, bool) {
	best := types.Tile{}
	bestSize := st.n + 1
	found := false
	for i := 0; i < st.n; i++ {
		for j := 0; j < st.n; j++ {
			size := st.domains[i][j].PopCount()
			if size > 1 && size < bestSize {
				best = types.Tile{Row: i, Col: j}
				bestSize = size
				found = true
			}
		}
	}
	return best, found
}

// snapshot copies the full deduction state.
func (st *state) snapshot() *state {
	c := newState(st.n, st.maxSolutions)
	for i := 0; i < st.n; i++ {
		copy(c.domains[i], st.domains[i])
		copy(c.rowPos[i], st.rowPos[i])
		copy(c.colPos[i], st.colPos[i])
		copy(c.rowDone[i], st.rowDone[i])
		copy(c.colDone[i], st.colDone[i])
		copy(c.assigned[i], st.assigned[i])
	}
	return c
}

// restore writes a snapshot back into the live state.
func (st *state) restore(from *state) {
	for i := 0; i < st.n; i++ {
		copy(st.domains[i], from.domains[i])
		copy(st.rowPos[i], from.rowPos[i])
		copy(st.colPos[i], from.colPos[i])
		copy(st.rowDone[i], from.rowDone[i])
		copy(st.colDone[i], from.colDone[i])
		copy(st.assigned[i], from.assigned[i])
	}
}

// backtrack propagates to a fixpoint and, when stuck, guesses on the
// smallest domain. Returns true when enough solutions have been
// found to stop the search.
func (st *state) backtrack() bool {
	if !st.propagate() {
		return false
	}

	if st.solved() {
		st.solutions = append(st.solutions, st.extract())
		return st.maxSolutions > 0 && len(st.solutions) >= st.maxSolutions
	}

	cell, found := st.smallestDomain()
	if !found {
		// domains are neither all singleton nor branchable - dead end
		return false
	}
	options := st.domains[cell.Row][cell.Col].Values()
	st.branches++

	saved := st.snapshot()
	for _, v := range options {
		st.restore(saved)
		st.eliminateCell(cell.Row, cell.Col, v)
		if st.backtrack() {
			return true
		}
	}
	return false
}

// ScoreDifficulty scores a puzzle given by its revealed tiles over
// the cyclic base square of order n. The clue encoding is the game's:
// revealed cells are positive clues, every other cell forbids the
// cyclic value. Returns the number of guesses the heuristic solver
// needed; 0 means the puzzle is solvable by pure deduction. An error
// is returned when the tile set does not describe a valid puzzle
// (more than one completion).
func ScoreDifficulty(tiles types.TileSet, n int) (int, error) {
	base := types.CyclicLatinSquare(n)
	known := make(types.KnownValues, len(tiles))
	for _, t := range tiles {
		known[t] = base[t.Row][t.Col]
	}
	wrong := make(types.WrongValues)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tile := types.Tile{Row: i, Col: j}
			if !tiles.Contains(tile) {
				wrong[tile] = []int{base[i][j]}
			}
		}
	}
	solutions, branches, err := Solve(n, known, wrong, 2)
	if err != nil {
		return 0, err
	}
	if len(solutions) > 1 {
		return 0, fmt.Errorf("found %d solutions for %s", len(solutions), tiles)
	}
	return branches, nil
}
