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

// Package types defines the fundamental data types of the Sudodle engine:
// the Grid for Latin squares, the ValueSet bitmask used for constraint
// tracking, tile coordinate sets with their transpose-canonical form and
// the clue maps accepted by the solvers.
package types

import (
	"math/rand"
	"strconv"
	"strings"
)

// Empty is the sentinel for a cell whose value is not (yet) known.
// Placed values are 1-indexed 1..N.
const Empty = -1

// Size limits for grids. MaxSize is bound by the width of the
// ValueSet bitmask.
const (
	MinSize = 1
	MaxSize = 16
)

// ValidSize reports whether n is a supported grid order.
func ValidSize(n int) bool {
	return n >= MinSize && n <= MaxSize
}

// Grid is a square matrix of cells. Each cell holds Empty or a
// value in 1..N. A Grid of order N has N rows of N columns.
type Grid [][]int

// NewGrid creates a grid of order n with every cell set to Empty.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for i := range g {
		g[i] = make([]int, n)
		for j := range g[i] {
			g[i][j] = Empty
		}
	}
	return g
}

// CyclicLatinSquare returns the cyclic Latin square of order n
// with L[i][j] = (i+j) mod n + 1. This is a valid Latin square for
// any positive n and is used as the standard first guess of a game.
func CyclicLatinSquare(n int) Grid {
	g := make(Grid, n)
	for i := range g {
		g[i] = make([]int, n)
		for j := range g[i] {
			g[i][j] = (i+j)%n + 1
		}
	}
	return g
}

// RandomSquare returns an n×n square holding n ones, n twos, etc.
// in shuffled positions. The result is generally NOT a Latin square.
// Used in simulation studies as an alternative first guess.
func RandomSquare(n int, seed int64) Grid {
	rng := rand.New(rand.NewSource(seed))
	numbers := make([]int, 0, n*n)
	for v := 1; v <= n; v++ {
		for k := 0; k < n; k++ {
			numbers = append(numbers, v)
		}
	}
	rng.Shuffle(len(numbers), func(a, b int) {
		numbers[a], numbers[b] = numbers[b], numbers[a]
	})
	g := make(Grid, n)
	for i := range g {
		g[i] = numbers[i*n : (i+1)*n]
	}
	return g
}

// Size returns the order of the grid.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i := range g {
		c[i] = make([]int, len(g[i]))
		copy(c[i], g[i])
	}
	return c
}

// Equals reports whether both grids have the same order and
// identical cells.
func (g Grid) Equals(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Transposed returns a new grid with rows and columns exchanged.
func (g Grid) Transposed() Grid {
	n := len(g)
	t := NewGrid(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t[j][i] = g[i][j]
		}
	}
	return t
}

// IsComplete reports whether no cell is Empty.
func (g Grid) IsComplete() bool {
	for i := range g {
		for j := range g[i] {
			if g[i][j] == Empty {
				return false
			}
		}
	}
	return true
}

// IsLatinSquare reports whether the grid is complete and every row
// and every column is a permutation of 1..N.
func (g Grid) IsLatinSquare() bool {
	n := len(g)
	if n == 0 {
		return false
	}
	full := FullSet(n)
	for i := 0; i < n; i++ {
		var rowSeen, colSeen ValueSet
		for j := 0; j < n; j++ {
			rv := g[i][j]
			cv := g[j][i]
			if rv < 1 || rv > n || cv < 1 || cv > n {
				return false
			}
			rowSeen.Add(rv - 1)
			colSeen.Add(cv - 1)
		}
		if rowSeen != full || colSeen != full {
			return false
		}
	}
	return true
}

// String returns the grid in the engine's display format, one row
// per line prefixed with "| ". Empty cells print as ".".
//  | 1 2 3
//  | 2 3 1
//  | 3 1 2
func (g Grid) String() string {
	var os strings.Builder
	for i, row := range g {
		if i > 0 {
			os.WriteString("\n")
		}
		os.WriteString("|")
		for _, cell := range row {
			os.WriteString(" ")
			if cell == Empty {
				os.WriteString(".")
			} else {
				os.WriteString(strconv.Itoa(cell))
			}
		}
	}
	return os.String()
}
