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
	"fmt"
	"sort"
	"strings"
)

// Tile is a cell coordinate (row, column), both 0-indexed.
type Tile struct {
	Row int
	Col int
}

// TileSet is a set of cell coordinates, e.g. the revealed cells of a
// puzzle. The order of tiles is not significant; Canonical() gives a
// normal form.
type TileSet []Tile

// Clone returns a copy of the tile set.
func (ts TileSet) Clone() TileSet {
	c := make(TileSet, len(ts))
	copy(c, ts)
	return c
}

// Sorted returns a copy sorted by (row, col).
func (ts TileSet) Sorted() TileSet {
	c := ts.Clone()
	sort.Slice(c, func(a, b int) bool {
		if c[a].Row != c[b].Row {
			return c[a].Row < c[b].Row
		}
		return c[a].Col < c[b].Col
	})
	return c
}

// Transposed returns a copy with every tile mirrored across the main
// diagonal, (i,j) -> (j,i).
func (ts TileSet) Transposed() TileSet {
	c := make(TileSet, len(ts))
	for k, t := range ts {
		c[k] = Tile{Row: t.Col, Col: t.Row}
	}
	return c
}

// Contains reports whether the set holds the given tile.
func (ts TileSet) Contains(t Tile) bool {
	for _, e := range ts {
		if e == t {
			return true
		}
	}
	return false
}

// Canonical returns the normal form of the tile set under transpose
// symmetry: the lexicographically smaller of the sorted set and the
// sorted transposed set. Canonical is idempotent and
// ts.Canonical() equals ts.Transposed().Canonical() for every ts.
func (ts TileSet) Canonical() TileSet {
	sorted := ts.Sorted()
	transposed := ts.Transposed().Sorted()
	if lexLess(transposed, sorted) {
		return transposed
	}
	return sorted
}

// lexLess compares two tile sequences in tuple lexicographic order.
func lexLess(a, b TileSet) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k].Row != b[k].Row {
			return a[k].Row < b[k].Row
		}
		if a[k].Col != b[k].Col {
			return a[k].Col < b[k].Col
		}
	}
	return len(a) < len(b)
}

// Key returns a string identifying the canonical form of the set.
// Two tile sets have the same key iff they are equal up to transpose
// symmetry.
func (ts TileSet) Key() string {
	return ts.Canonical().String()
}

// String returns the set in the puzzle line format used for discovery
// output, e.g. "(0,1), (2,3), (4,0)".
func (ts TileSet) String() string {
	var os strings.Builder
	for k, t := range ts {
		if k > 0 {
			os.WriteString(", ")
		}
		os.WriteString(fmt.Sprintf("(%d,%d)", t.Row, t.Col))
	}
	return os.String()
}
