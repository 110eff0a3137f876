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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zulko/sudodle/internal/types"
)

func TestRandomLatinSquareIsLatin(t *testing.T) {
	for n := 1; n <= 9; n++ {
		grid, err := RandomLatinSquare(n, 42, time.Second)
		assert.NoError(t, err)
		assert.True(t, grid.IsLatinSquare(), "size %d", n)
	}
}

func TestRandomLatinSquareDeterministic(t *testing.T) {
	first, err := RandomLatinSquare(6, 4711, time.Second)
	assert.NoError(t, err)
	second, err := RandomLatinSquare(6, 4711, time.Second)
	assert.NoError(t, err)
	assert.True(t, first.Equals(second))

	other, err := RandomLatinSquare(6, 4712, time.Second)
	assert.NoError(t, err)
	assert.False(t, first.Equals(other))
}

func TestRandomLatinSquareSizeOne(t *testing.T) {
	grid, err := RandomLatinSquare(1, 1, time.Second)
	assert.NoError(t, err)
	assert.True(t, grid.Equals(types.Grid{{1}}))
}

func TestRandomLatinSquareInvalidSize(t *testing.T) {
	_, err := RandomLatinSquare(0, 1, time.Second)
	assert.Equal(t, types.ErrInvalidSize, err)
	_, err = RandomLatinSquare(17, 1, time.Second)
	assert.Equal(t, types.ErrInvalidSize, err)
}

func TestRandomLatinSquareRetry(t *testing.T) {
	grid, err := RandomLatinSquareRetry(7, 99, time.Second)
	assert.NoError(t, err)
	assert.True(t, grid.IsLatinSquare())
}

func BenchmarkRandomLatinSquare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = RandomLatinSquare(9, int64(i), time.Second)
	}
}
