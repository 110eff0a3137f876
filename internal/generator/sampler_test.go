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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zulko/sudodle/internal/types"
)

func TestUniformRandomLatinSquareIsLatin(t *testing.T) {
	for n := 1; n <= 8; n++ {
		grid, err := UniformRandomLatinSquare(n, 42, 0)
		assert.NoError(t, err)
		assert.True(t, grid.IsLatinSquare(), "size %d", n)
	}
}

func TestUniformRandomLatinSquareDeterministic(t *testing.T) {
	first, err := UniformRandomLatinSquare(5, 123, 500)
	assert.NoError(t, err)
	second, err := UniformRandomLatinSquare(5, 123, 500)
	assert.NoError(t, err)
	assert.True(t, first.Equals(second))
}

func TestUniformRandomLatinSquareSizeOne(t *testing.T) {
	grid, err := UniformRandomLatinSquare(1, 7, 0)
	assert.NoError(t, err)
	assert.True(t, grid.Equals(types.Grid{{1}}))
}

func TestIntercalateStepPreservesLatin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// the cyclic square of even order contains intercalates
	grid := types.CyclicLatinSquare(4)
	flips := 0
	for step := 0; step < 2_000; step++ {
		if intercalateStep(grid, rng) {
			flips++
			assert.True(t, grid.IsLatinSquare())
		}
	}
	assert.True(t, flips > 0)
	assert.True(t, grid.IsLatinSquare())
}

func TestTwoDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1_000; i++ {
		a, b := twoDistinct(4, rng)
		assert.NotEqual(t, a, b)
		assert.True(t, a >= 0 && a < 4)
		assert.True(t, b >= 0 && b < 4)
	}
}
