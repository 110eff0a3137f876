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

// Package testsuite contains data structures and functionality to run
// suites of Sudodle puzzles from a file in the discovery line format.
// Each line holds the revealed tiles of one puzzle. Running the suite
// verifies with the constraint solver that every puzzle has exactly
// one completion and scores its difficulty with the human-heuristics
// solver, within a per-puzzle time budget.
package testsuite

import (
	"os"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zulko/sudodle/internal/heuristics"
	myLogging "github.com/Zulko/sudodle/internal/logging"
	"github.com/Zulko/sudodle/internal/puzzle"
	"github.com/Zulko/sudodle/internal/solver"
	"github.com/Zulko/sudodle/internal/types"
	"github.com/Zulko/sudodle/internal/util"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// resultType define possible results for a test as a type and constants
type resultType uint8

const (
	NotTested resultType = iota
	Failed    resultType = iota
	Success   resultType = iota
)

// SuiteResult data structure to collect sum of the results of tests
type SuiteResult struct {
	Counter          int
	SuccessCounter   int
	FailedCounter    int
	NotTestedCounter int
}

// Test defines the data structure for one puzzle test read from the
// suite file. When the tests are run the result is stored back into
// this instance.
type Test struct {
	tiles      types.TileSet
	rType      resultType
	solutions  int
	difficulty int
	solveTime  time.Duration
	partial    bool
}

// TestSuite is the data structure for running a file of puzzle tests.
type TestSuite struct {
	Tests      []*Test
	GridSize   int
	Time       time.Duration
	FilePath   string
	LastResult *SuiteResult
}

// NewTestSuite creates an instance of a TestSuite and reads in the
// given file to create test cases which can be run with RunTests()
func NewTestSuite(filePath string, gridSize int, solveTime time.Duration) (*TestSuite, error) {
	out.Println("Preparing Test Suite", filePath)

	if log == nil {
		log = myLogging.GetLog()
	}

	resolved, err := util.ResolveFile(filePath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(resolved)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	tileSets, err := puzzle.ParsePuzzleLines(file, true)
	if err != nil {
		return nil, err
	}

	newTestSuite := &TestSuite{
		Tests:    make([]*Test, 0, len(tileSets)),
		GridSize: gridSize,
		Time:     solveTime,
		FilePath: filePath,
	}
	for _, tiles := range tileSets {
		newTestSuite.Tests = append(newTestSuite.Tests, &Test{tiles: tiles})
	}
	return newTestSuite, nil
}

// RunTests runs all tests of the suite: solve each puzzle with the
// constraint solver (unique completion expected) and score it with
// the heuristics solver. Reports a summary when done.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		out.Printf("No tests to run\n")
		return
	}

	startTime := time.Now()
	base := types.CyclicLatinSquare(ts.GridSize)

	for _, test := range ts.Tests {
		ts.runSingleTest(base, test)
	}

	ts.LastResult = ts.sumUpTests()
	elapsed := time.Since(startTime)

	out.Printf("Suite finished: %d tests in %d ms\n", len(ts.Tests), elapsed.Milliseconds())
	out.Printf("Successful: %-3d (%d %%)\n", ts.LastResult.SuccessCounter,
		100*ts.LastResult.SuccessCounter/len(ts.Tests))
	out.Printf("Failed:     %-3d (%d %%)\n", ts.LastResult.FailedCounter,
		100*ts.LastResult.FailedCounter/len(ts.Tests))
	out.Printf("Not tested: %-3d (%d %%)\n", ts.LastResult.NotTestedCounter,
		100*ts.LastResult.NotTestedCounter/len(ts.Tests))
}

// runSingleTest solves one puzzle and stores the result back into
// the test instance.
func (ts *TestSuite) runSingleTest(base types.Grid, test *Test) {
	known, wrong := puzzle.Clues(base, test.tiles)

	result, err := solver.CompleteAll(ts.GridSize, known, wrong, ts.Time, 2)
	if err != nil {
		log.Warningf("puzzle %s rejected: %s", test.tiles, err)
		test.rType = Failed
		return
	}
	test.solutions = len(result.Solutions)
	test.solveTime = result.SolveTime
	test.partial = result.Partial

	if result.Partial {
		log.Warningf("puzzle %s exceeded the time budget", test.tiles)
		test.rType = Failed
		return
	}
	if test.solutions != 1 {
		log.Warningf("puzzle %s has %d completions, expected 1", test.tiles, test.solutions)
		test.rType = Failed
		return
	}

	difficulty, err := heuristics.ScoreDifficulty(test.tiles, ts.GridSize)
	if err != nil {
		log.Warningf("puzzle %s could not be scored: %s", test.tiles, err)
		test.rType = Failed
		return
	}
	test.difficulty = difficulty
	test.rType = Success
	log.Infof("puzzle %s ok, difficulty %d, %d ms", test.tiles, difficulty, test.solveTime.Milliseconds())
}

// sumUpTests counts the results of all tests into a SuiteResult.
func (ts *TestSuite) sumUpTests() *SuiteResult {
	tsr := &SuiteResult{}
	for _, t := range ts.Tests {
		tsr.Counter++
		switch t.rType {
		case NotTested:
			tsr.NotTestedCounter++
		case Failed:
			tsr.FailedCounter++
		case Success:
			tsr.SuccessCounter++
		}
	}
	return tsr
}
