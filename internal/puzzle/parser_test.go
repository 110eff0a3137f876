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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zulko/sudodle/internal/types"
)

func TestParsePuzzleLines(t *testing.T) {
	input := "(0,1), (2,3), (4,0)\n\n(0,0), (1,1)\n"
	puzzles, err := ParsePuzzleLines(strings.NewReader(input), false)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(puzzles))
	assert.Equal(t, types.TileSet{{0, 1}, {2, 3}, {4, 0}}, puzzles[0])
	assert.Equal(t, types.TileSet{{0, 0}, {1, 1}}, puzzles[1])
}

func TestParsePuzzleLinesWhitespace(t *testing.T) {
	input := "  (0, 1),  (2 ,3)  \n"
	puzzles, err := ParsePuzzleLines(strings.NewReader(input), false)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(puzzles))
	assert.Equal(t, types.TileSet{{0, 1}, {2, 3}}, puzzles[0])
}

func TestParsePuzzleLinesMalformed(t *testing.T) {
	// malformed lines are skipped with a warning, not a failure
	input := "(0,1), (2,3)\nnot a puzzle\n(x,y), (1,1)\n(1,1)\n"
	puzzles, err := ParsePuzzleLines(strings.NewReader(input), false)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(puzzles))
	assert.Equal(t, types.TileSet{{0, 1}, {2, 3}}, puzzles[0])
	assert.Equal(t, types.TileSet{{1, 1}}, puzzles[1])
}

func TestParsePuzzleLinesStandardize(t *testing.T) {
	// the second line is the transpose of the first
	input := "(0,1), (2,3)\n(1,0), (3,2)\n(0,2), (1,1)\n"
	puzzles, err := ParsePuzzleLines(strings.NewReader(input), true)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(puzzles))
}

func TestParsePuzzleLinesRoundTrip(t *testing.T) {
	tiles := types.TileSet{{0, 1}, {2, 3}, {4, 0}}
	parsed, err := ParsePuzzleLines(strings.NewReader(tiles.String()), false)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(parsed))
	assert.Equal(t, tiles, parsed[0])
}
