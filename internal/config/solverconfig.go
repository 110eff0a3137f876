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

package config

type solverConfiguration struct {
	// UseHiddenSingles enables hidden single detection in rows and
	// columns during constraint propagation.
	UseHiddenSingles bool

	// UseLCV enables least-constraining-value ordering at branch points.
	UseLCV bool

	// SolveTimeMs is the default time budget for a single solver call.
	SolveTimeMs int

	// GenAttemptTimeMs is the time budget for one attempt of the
	// randomized backtracking generator before it is reseeded and retried.
	GenAttemptTimeMs int

	// BurnInFactor scales the number of intercalate flip steps of the
	// uniform sampler: steps = BurnInFactor * N * N.
	BurnInFactor int

	// Workers is the default number of parallel workers of the
	// task harness. 0 means number of CPU cores.
	Workers int

	// MaxGameRounds bounds the number of guesses in a simulated game.
	MaxGameRounds int
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func init() {
	initSolverDefaults()
}

func initSolverDefaults() {
	Settings.Solver.UseHiddenSingles = true
	Settings.Solver.UseLCV = true
	Settings.Solver.SolveTimeMs = 2_000
	Settings.Solver.GenAttemptTimeMs = 1_000
	Settings.Solver.BurnInFactor = 50
	Settings.Solver.Workers = 0
	Settings.Solver.MaxGameRounds = 5
}

func setupSolver() {
	if Settings.Solver.SolveTimeMs <= 0 {
		Settings.Solver.SolveTimeMs = 2_000
	}
	if Settings.Solver.GenAttemptTimeMs <= 0 {
		Settings.Solver.GenAttemptTimeMs = 1_000
	}
	if Settings.Solver.BurnInFactor <= 0 {
		Settings.Solver.BurnInFactor = 50
	}
	if Settings.Solver.Workers < 0 {
		Settings.Solver.Workers = 0
	}
	if Settings.Solver.MaxGameRounds <= 0 {
		Settings.Solver.MaxGameRounds = 5
	}
}
