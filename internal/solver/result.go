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
	"time"

	"github.com/Zulko/sudodle/internal/types"
)

// Result stores the outcome of a CompleteAll call.
type Result struct {
	// Solutions holds up to maxSolutions completed Latin squares
	// consistent with all clues. Empty when the clues are inconsistent.
	Solutions []types.Grid

	// BranchSamples records, per branching decision taken, the number
	// of candidates considered at that branch.
	BranchSamples []int

	// Partial is true when the time budget elapsed before the search
	// space was exhausted; Solutions then holds what was found so far.
	Partial bool

	SolveTime time.Duration
	Stats     Statistics
}

func (r *Result) String() string {
	return out.Sprintf("solutions = %d, branches = %d, partial = %v, solve time = %d ms",
		len(r.Solutions), len(r.BranchSamples), r.Partial, r.SolveTime.Milliseconds())
}
