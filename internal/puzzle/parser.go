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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/Zulko/sudodle/internal/logging"
	"github.com/Zulko/sudodle/internal/types"
)

var log *logging.Logger

// ParsePuzzleLines reads tile sets in the discovery line format, one
// puzzle per line, e.g. "(0,1), (2,3), (4,0)". Blank lines are
// ignored; malformed lines are logged as warnings and skipped. With
// standardize set, puzzles equal up to transpose symmetry are
// deduplicated.
func ParsePuzzleLines(r io.Reader, standardize bool) ([]types.TileSet, error) {
	if log == nil {
		log = myLogging.GetLog()
	}

	var puzzles []types.TileSet
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tiles, ok := parseLine(line)
		if !ok {
			log.Warningf("could not parse line %q", line)
			continue
		}
		if standardize {
			key := tiles.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		puzzles = append(puzzles, tiles)
	}
	if err := scanner.Err(); err != nil {
		return puzzles, err
	}
	return puzzles, nil
}

// parseLine parses one "(i,j), (k,l)" line into a tile set.
func parseLine(line string) (types.TileSet, bool) {
	parts := strings.Split(line, ",")
	// re-join "(i" and "j)" pairs: splitting on "," yields two parts
	// per tile as the coordinates themselves contain a comma
	if len(parts)%2 != 0 {
		return nil, false
	}
	tiles := make(types.TileSet, 0, len(parts)/2)
	for p := 0; p < len(parts); p += 2 {
		rowPart := strings.TrimSpace(parts[p])
		colPart := strings.TrimSpace(parts[p+1])
		if !strings.HasPrefix(rowPart, "(") || !strings.HasSuffix(colPart, ")") {
			return nil, false
		}
		row, err1 := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(rowPart, "(")))
		col, err2 := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(colPart, ")")))
		if err1 != nil || err2 != nil {
			return nil, false
		}
		tiles = append(tiles, types.Tile{Row: row, Col: col})
	}
	return tiles, true
}
