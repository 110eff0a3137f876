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

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zulko/sudodle/internal/config"
	"github.com/Zulko/sudodle/internal/types"
)

func TestCompareSquares(t *testing.T) {
	guess := types.Grid{{1, 2}, {2, 1}}
	solution := types.Grid{{1, 2}, {2, 3}}
	right, wrong := CompareSquares(guess, solution)
	assert.Equal(t, []types.CellValue{{0, 0, 1}, {0, 1, 2}, {1, 0, 2}}, right)
	assert.Equal(t, []types.CellValue{{1, 1, 1}}, wrong)
}

func TestCompareSquaresLaw(t *testing.T) {
	// right and wrong always cover all N² cells
	guess := types.CyclicLatinSquare(5)
	solution := types.CyclicLatinSquare(5)
	solution[0][0], solution[0][4] = solution[0][4], solution[0][0]
	right, wrong := CompareSquares(guess, solution)
	assert.Equal(t, 25, len(right)+len(wrong))
	for _, cv := range right {
		assert.Equal(t, solution[cv.Row][cv.Col], cv.Value)
	}
	for _, cv := range wrong {
		assert.NotEqual(t, solution[cv.Row][cv.Col], cv.Value)
	}
}

func TestCompareSquaresIdentical(t *testing.T) {
	g := types.CyclicLatinSquare(4)
	right, wrong := CompareSquares(g, g.Clone())
	assert.Equal(t, 16, len(right))
	assert.Empty(t, wrong)
}

func TestSimulateGame(t *testing.T) {
	firstGuess := types.CyclicLatinSquare(4)
	result, err := Simulate(firstGuess, 4711, 2*time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Rounds >= 1)
	assert.True(t, result.Rounds <= config.Settings.Solver.MaxGameRounds)
	if result.Solved {
		// history is trimmed to the rounds after the first guess
		assert.Equal(t, result.Rounds-1, len(result.History))
	} else {
		assert.Equal(t, config.Settings.Solver.MaxGameRounds, len(result.History))
	}
	// the count of known cells never decreases
	for k := 1; k < len(result.History); k++ {
		assert.True(t, result.History[k] >= result.History[k-1])
	}
}

func TestSimulateGameDeterministic(t *testing.T) {
	firstGuess := types.CyclicLatinSquare(4)
	first, err := Simulate(firstGuess, 99, 2*time.Second)
	assert.NoError(t, err)
	second, err := Simulate(firstGuess, 99, 2*time.Second)
	assert.NoError(t, err)
	assert.Equal(t, first.Solved, second.Solved)
	assert.Equal(t, first.Rounds, second.Rounds)
	assert.Equal(t, first.History, second.History)
}

func TestSimulateGameSizeOne(t *testing.T) {
	// the 1x1 game is always won on the first guess
	result, err := Simulate(types.Grid{{1}}, 1, time.Second)
	assert.NoError(t, err)
	assert.True(t, result.Solved)
	assert.Equal(t, 1, result.Rounds)
	assert.Empty(t, result.History)
}

func TestSimulateGameInvalidSize(t *testing.T) {
	_, err := Simulate(types.Grid{}, 1, time.Second)
	assert.Equal(t, types.ErrInvalidSize, err)
}
