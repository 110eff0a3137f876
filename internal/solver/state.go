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

package solver

import (
	"github.com/Zulko/sudodle/internal/types"
)

// snapshot is a full copy of the search state taken before a branch
// is tried. Restoring it guarantees the state after a failed branch
// equals the state immediately before the placement. A full copy is
// O(N²) per branch which is cheap at N <= 16.
type snapshot struct {
	grid        types.Grid
	rowUsed     []types.ValueSet
	colUsed     []types.ValueSet
	rowPossible [][]types.ValueSet
	colPossible [][]types.ValueSet
}

// saveState copies the grid and the four bitmask arrays.
func (s *solver) saveState() *snapshot {
	st := &snapshot{
		grid:        s.grid.Clone(),
		rowUsed:     make([]types.ValueSet, s.n),
		colUsed:     make([]types.ValueSet, s.n),
		rowPossible: make([][]types.ValueSet, s.n),
		colPossible: make([][]types.ValueSet, s.n),
	}
	copy(st.rowUsed, s.rowUsed)
	copy(st.colUsed, s.colUsed)
	for i := 0; i < s.n; i++ {
		st.rowPossible[i] = make([]types.ValueSet, s.n)
		st.colPossible[i] = make([]types.ValueSet, s.n)
		copy(st.rowPossible[i], s.rowPossible[i])
		copy(st.colPossible[i], s.colPossible[i])
	}
	s.stats.StateSaves++
	return st
}

// restoreState writes a snapshot back into the live search state.
func (s *solver) restoreState(st *snapshot) {
	for i := 0; i < s.n; i++ {
		copy(s.grid[i], st.grid[i])
		copy(s.rowPossible[i], st.rowPossible[i])
		copy(s.colPossible[i], st.colPossible[i])
	}
	copy(s.rowUsed, st.rowUsed)
	copy(s.colUsed, st.colUsed)
}
