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

package generator

import (
	"math/rand"
	"time"

	"github.com/Zulko/sudodle/internal/config"
	"github.com/Zulko/sudodle/internal/types"
)

// intercalateStep attempts one random intercalate swap on the square
// in place. It picks two distinct rows r1, r2 and two distinct
// columns c1, c2. If the 2x2 submatrix has the form [[a,b],[b,a]]
// with a != b it is swapped to [[b,a],[a,b]], which preserves the
// Latin square property. Returns whether a swap was performed.
func intercalateStep(grid types.Grid, rng *rand.Rand) bool {
	n := grid.Size()
	r1, r2 := twoDistinct(n, rng)
	c1, c2 := twoDistinct(n, rng)

	a := grid[r1][c1]
	b := grid[r1][c2]
	if a == b {
		return false
	}
	if grid[r2][c1] == b && grid[r2][c2] == a {
		grid[r1][c1], grid[r1][c2] = b, a
		grid[r2][c1], grid[r2][c2] = a, b
		return true
	}
	return false
}

// twoDistinct returns two distinct indices in [0, n).
func twoDistinct(n int, rng *rand.Rand) (int, int) {
	first := rng.Intn(n)
	second := rng.Intn(n - 1)
	if second >= first {
		second++
	}
	return first, second
}

// UniformRandomLatinSquare generates a (nearly) uniformly random
// Latin square of order n via the Jacobson-Matthews intercalate-flip
// Markov chain. A seed square from the backtracking generator is
// walked through burnIn random flip attempts; after the burn-in the
// distribution over all Latin squares of order n is approximately
// uniform. burnIn of 0 or less selects the configured default of
// BurnInFactor * n * n steps. The same (n, seed, burnIn) triple
// produces the same square.
func UniformRandomLatinSquare(n int, seed int64, burnIn int) (types.Grid, error) {
	if !types.ValidSize(n) {
		return nil, types.ErrInvalidSize
	}
	rng := rand.New(rand.NewSource(seed))

	attemptLimit := time.Duration(config.Settings.Solver.GenAttemptTimeMs) * time.Millisecond
	grid, err := RandomLatinSquareRetry(n, seed, attemptLimit)
	if err != nil {
		return nil, err
	}

	if n < 2 {
		// no intercalates exist below order 2
		return grid, nil
	}
	if burnIn <= 0 {
		burnIn = config.Settings.Solver.BurnInFactor * n * n
	}
	for step := 0; step < burnIn; step++ {
		// a failed flip attempt is simply skipped
		intercalateStep(grid, rng)
	}
	return grid, nil
}
