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

package puzzle

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Zulko/sudodle/internal/types"
)

// CatalogEntry is one row of the puzzle catalog CSV consumed by the
// external book renderer. The compacted payload is opaque to the
// core beyond its leading grid-size digit.
type CatalogEntry struct {
	CompactedPuzzle string
	Level           int
	Difficulty      int
}

// GridSize returns the grid order encoded as the first character of
// the compacted payload, or 0 when the payload is empty or invalid.
func (e CatalogEntry) GridSize() int {
	if e.CompactedPuzzle == "" {
		return 0
	}
	size, err := strconv.Atoi(e.CompactedPuzzle[:1])
	if err != nil {
		return 0
	}
	return size
}

// LoadCatalog reads a puzzle catalog CSV with a header line holding
// at least the columns compacted_puzzle, level and difficulty.
func LoadCatalog(r io.Reader) ([]CatalogEntry, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog has no header line")
	}

	columns := make(map[string]int, len(records[0]))
	for idx, name := range records[0] {
		columns[name] = idx
	}
	for _, required := range []string{"compacted_puzzle", "level", "difficulty"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalog is missing column %q", required)
		}
	}

	entries := make([]CatalogEntry, 0, len(records)-1)
	for _, record := range records[1:] {
		level, err := strconv.Atoi(record[columns["level"]])
		if err != nil {
			return nil, fmt.Errorf("invalid level %q: %w", record[columns["level"]], err)
		}
		difficulty, err := strconv.Atoi(record[columns["difficulty"]])
		if err != nil {
			return nil, fmt.Errorf("invalid difficulty %q: %w", record[columns["difficulty"]], err)
		}
		entries = append(entries, CatalogEntry{
			CompactedPuzzle: record[columns["compacted_puzzle"]],
			Level:           level,
			Difficulty:      difficulty,
		})
	}
	return entries, nil
}

// SortEntries orders entries by (grid size, level, difficulty), the
// order the book renderer consumes.
func SortEntries(entries []CatalogEntry) {
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].GridSize() != entries[b].GridSize() {
			return entries[a].GridSize() < entries[b].GridSize()
		}
		if entries[a].Level != entries[b].Level {
			return entries[a].Level < entries[b].Level
		}
		return entries[a].Difficulty < entries[b].Difficulty
	})
}

// GroupBySizeLevel groups sorted entries into size -> level -> rows.
func GroupBySizeLevel(entries []CatalogEntry) map[int]map[int][]CatalogEntry {
	grouped := make(map[int]map[int][]CatalogEntry)
	for _, e := range entries {
		size := e.GridSize()
		if grouped[size] == nil {
			grouped[size] = make(map[int][]CatalogEntry)
		}
		grouped[size][e.Level] = append(grouped[size][e.Level], e)
	}
	return grouped
}

// digits for the compacted cell-index encoding, base 36
const compactDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// CompactTileSet encodes a tile set of a grid of order n as the
// catalog payload: the grid size digit followed by one base-36
// character per tile holding the row-major cell index. One character
// holds indices 0..35 only, so for sizes 7 to 9 a tile beyond the
// 36th cell is rejected with an error.
func CompactTileSet(n int, tiles types.TileSet) (string, error) {
	if !types.ValidSize(n) || n > 9 {
		return "", fmt.Errorf("compacted encoding supports sizes 1..9, got %d", n)
	}
	encoded := make([]byte, 0, len(tiles)+1)
	encoded = append(encoded, byte('0'+n))
	for _, t := range tiles.Sorted() {
		idx := t.Row*n + t.Col
		if idx < 0 || idx >= n*n {
			return "", fmt.Errorf("tile (%d,%d) out of range for size %d", t.Row, t.Col, n)
		}
		if idx >= len(compactDigits) {
			return "", fmt.Errorf("tile (%d,%d) has cell index %d, beyond the single-character range", t.Row, t.Col, idx)
		}
		encoded = append(encoded, compactDigits[idx])
	}
	return string(encoded), nil
}

// ExpandCompacted decodes a catalog payload back into the grid size
// and the tile set.
func ExpandCompacted(compacted string) (int, types.TileSet, error) {
	if compacted == "" {
		return 0, nil, fmt.Errorf("empty compacted puzzle")
	}
	n := int(compacted[0] - '0')
	if n < 1 || n > 9 {
		return 0, nil, fmt.Errorf("invalid grid size character %q", compacted[0])
	}
	tiles := make(types.TileSet, 0, len(compacted)-1)
	for _, ch := range compacted[1:] {
		idx := strings.IndexRune(compactDigits, ch)
		if idx < 0 || idx >= n*n {
			return 0, nil, fmt.Errorf("invalid cell character %q", ch)
		}
		tiles = append(tiles, types.Tile{Row: idx / n, Col: idx % n})
	}
	return n, tiles, nil
}
