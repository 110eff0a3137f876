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

package testsuite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zulko/sudodle/internal/puzzle"
	"github.com/Zulko/sudodle/internal/types"
)

// writeSuiteFile discovers the single-solution 4x4 puzzles with four
// revealed tiles and writes them as a suite file.
func writeSuiteFile(t *testing.T) string {
	t.Helper()
	base := types.CyclicLatinSquare(4)
	discovered, err := puzzle.FindSingleSolutionPuzzles(base, 4, 5*time.Second)
	assert.NoError(t, err)
	assert.True(t, len(discovered) > 0)

	var lines strings.Builder
	for _, d := range discovered {
		lines.WriteString(d.Tiles.String())
		lines.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "puzzles4x4.txt")
	err = os.WriteFile(path, []byte(lines.String()), 0644)
	assert.NoError(t, err)
	return path
}

func TestNewTestSuite(t *testing.T) {
	path := writeSuiteFile(t)
	ts, err := NewTestSuite(path, 4, 2*time.Second)
	assert.NoError(t, err)
	assert.True(t, len(ts.Tests) > 0)
}

func TestRunTestsAllSucceed(t *testing.T) {
	path := writeSuiteFile(t)
	ts, err := NewTestSuite(path, 4, 2*time.Second)
	assert.NoError(t, err)

	ts.RunTests()
	assert.NotNil(t, ts.LastResult)
	assert.Equal(t, len(ts.Tests), ts.LastResult.Counter)
	assert.Equal(t, len(ts.Tests), ts.LastResult.SuccessCounter)
	assert.Equal(t, 0, ts.LastResult.FailedCounter)
}

func TestNewTestSuiteMissingFile(t *testing.T) {
	_, err := NewTestSuite("no/such/suite.txt", 4, time.Second)
	assert.Error(t, err)
}
