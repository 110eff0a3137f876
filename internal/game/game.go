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

// Package game simulates a Sudodle game: the player guesses a hidden
// Latin square, each cell of a guess is marked right or wrong, and
// the solver turns the accumulated feedback into the next guess.
package game

import (
	"errors"
	"time"

	"github.com/op/go-logging"

	"github.com/Zulko/sudodle/internal/config"
	"github.com/Zulko/sudodle/internal/generator"
	myLogging "github.com/Zulko/sudodle/internal/logging"
	"github.com/Zulko/sudodle/internal/solver"
	"github.com/Zulko/sudodle/internal/types"
)

var log *logging.Logger

// ErrNoCompletion is returned when the solver cannot produce a next
// guess from the accumulated clues within its time budget.
var ErrNoCompletion = errors.New("no completion found for accumulated clues")

// Result is the trace of one simulated game.
type Result struct {
	// History holds the count of known cells at the start of each
	// round. On a win the leading zero entry is trimmed.
	History []int

	// Solved reports whether the hidden square was guessed within
	// the round limit.
	Solved bool

	// Rounds is the number of guesses submitted.
	Rounds int
}

// CompareSquares compares two squares cell by cell. It returns the
// matching cells and the differing cells, each as (row, col, value)
// with the value taken from the guess. The two lists always cover
// all N² cells.
func CompareSquares(guess, solution types.Grid) (right, wrong []types.CellValue) {
	for i := range guess {
		for j := range guess[i] {
			cv := types.CellValue{Row: i, Col: j, Value: guess[i][j]}
			if guess[i][j] == solution[i][j] {
				right = append(right, cv)
			} else {
				wrong = append(wrong, cv)
			}
		}
	}
	return right, wrong
}

// Simulate plays a Sudodle game starting from the given first guess
// against a hidden square sampled with the given seed. Per round the
// guess is compared with the hidden square, right cells become
// positive clues, wrong cells negative ones, and the solver produces
// the next guess under solveLimit. The game ends on a win, after the
// configured round limit, or with ErrNoCompletion when re-solving
// fails.
func Simulate(firstGuess types.Grid, seed int64, solveLimit time.Duration) (*Result, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	n := firstGuess.Size()
	if !types.ValidSize(n) {
		return nil, types.ErrInvalidSize
	}

	hidden, err := generator.UniformRandomLatinSquare(n, seed, 0)
	if err != nil {
		return nil, err
	}
	log.Debugf("solution:\n%s", hidden.String())

	known := make(types.KnownValues)
	wrong := make(types.WrongValues)
	history := make([]int, 0, config.Settings.Solver.MaxGameRounds)

	guess := firstGuess
	maxRounds := config.Settings.Solver.MaxGameRounds

	for round := 1; round <= maxRounds; round++ {
		log.Debugf("guess:\n%s", guess.String())
		rightCells, wrongCells := CompareSquares(guess, hidden)
		history = append(history, len(known))

		if len(wrongCells) == 0 {
			return &Result{History: history[1:], Solved: true, Rounds: round}, nil
		}

		for _, cv := range rightCells {
			known[types.Tile{Row: cv.Row, Col: cv.Col}] = cv.Value
		}
		for _, cv := range wrongCells {
			tile := types.Tile{Row: cv.Row, Col: cv.Col}
			wrong[tile] = append(wrong[tile], cv.Value)
		}
		log.Debugf("found %d known values so far", len(known))

		next, ok, err := solver.CompleteFirst(n, known, wrong, solveLimit)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNoCompletion
		}
		guess = next
	}

	// round limit reached with wrong cells remaining
	return &Result{History: history, Solved: false, Rounds: maxRounds}, nil
}
