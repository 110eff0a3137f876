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

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid order outside [MinSize, MaxSize]
// is given to an API entry point.
var ErrInvalidSize = errors.New("grid size must be between 1 and 16")

// CellValue is a (row, col, value) triple as produced by the game
// comparator and consumed as a clue.
type CellValue struct {
	Row   int
	Col   int
	Value int
}

// KnownValues maps a cell to its known correct value (a positive clue).
// At most one entry per cell; values are 1..N.
type KnownValues map[Tile]int

// WrongValues maps a cell to the values known to be wrong there
// (negative clues).
type WrongValues map[Tile][]int

// Clone returns a copy of the map.
func (kv KnownValues) Clone() KnownValues {
	c := make(KnownValues, len(kv))
	for t, v := range kv {
		c[t] = v
	}
	return c
}

// Clone returns a deep copy of the map.
func (wv WrongValues) Clone() WrongValues {
	c := make(WrongValues, len(wv))
	for t, values := range wv {
		vs := make([]int, len(values))
		copy(vs, values)
		c[t] = vs
	}
	return c
}

// Validate checks all coordinates and values against the grid order n.
// This is the boundary check of the public solver API; clue sets which
// are in range but contradictory are not an error (the solver reports
// them as an empty solution list).
func (kv KnownValues) Validate(n int) error {
	if !ValidSize(n) {
		return ErrInvalidSize
	}
	for t, v := range kv {
		if t.Row < 0 || t.Row >= n || t.Col < 0 || t.Col >= n {
			return fmt.Errorf("known value at (%d,%d) out of range for size %d", t.Row, t.Col, n)
		}
		if v < 1 || v > n {
			return fmt.Errorf("known value %d at (%d,%d) outside 1..%d", v, t.Row, t.Col, n)
		}
	}
	return nil
}

// Validate checks all coordinates and values against the grid order n.
func (wv WrongValues) Validate(n int) error {
	if !ValidSize(n) {
		return ErrInvalidSize
	}
	for t, values := range wv {
		if t.Row < 0 || t.Row >= n || t.Col < 0 || t.Col >= n {
			return fmt.Errorf("wrong-value clue at (%d,%d) out of range for size %d", t.Row, t.Col, n)
		}
		for _, v := range values {
			if v < 1 || v > n {
				return fmt.Errorf("wrong value %d at (%d,%d) outside 1..%d", v, t.Row, t.Col, n)
			}
		}
	}
	return nil
}
