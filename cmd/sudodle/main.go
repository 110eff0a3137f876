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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zulko/sudodle/internal/config"
	"github.com/Zulko/sudodle/internal/generator"
	"github.com/Zulko/sudodle/internal/logging"
	"github.com/Zulko/sudodle/internal/pool"
	"github.com/Zulko/sudodle/internal/puzzle"
	"github.com/Zulko/sudodle/internal/testsuite"
	"github.com/Zulko/sudodle/internal/types"
	"github.com/Zulko/sudodle/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	solverlogLvl := flag.String("solverloglvl", "", "solver log level\n(critical|error|warning|notice|info|debug)")
	size := flag.Int("size", 5, "grid size for generation, discovery and simulation")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the pseudo random generators")
	generate := flag.Bool("generate", false, "generates one random latin square and prints it")
	uniform := flag.Bool("uniform", false, "generates one near-uniformly sampled latin square and prints it")
	discover := flag.Int("discover", 0, "discovers all single-solution puzzles with the given number of revealed tiles\nuse -size to set the grid size")
	simulate := flag.Int("simulate", 0, "plays the given number of games against sampled hidden squares\nuse -size to set the grid size")
	randomGuess := flag.Bool("randomguess", false, "use shuffled random squares instead of the cyclic square\nas the first guesses of -simulate")
	workers := flag.Int("workers", 0, "number of parallel workers (0 = configured default, or number of CPU cores)")
	testSuite := flag.String("testsuite", "", "path to a file containing puzzle lines to verify and score")
	testTime := flag.Int("testtime", 2000, "solver time for each suite puzzle in milliseconds")
	profiling := flag.Bool("profile", false, "write a cpu profile to the working directory")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	if *profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// set config file
	// this needs to be set before config.Setup() is called. Otherwise the default will be used.
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// After reading the configuration file and the defaults we can now
	// overwrite settings with command line options.
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*solverlogLvl]; found {
		config.SolverLogLevel = lvl
	}

	// resetting log level auf standard log - required as most packages include
	// the standard logger as a global var and therefore even before main() is
	// called. These loggers start with the default log level and must be reset
	// to the actual level required.
	logging.GetLog()

	solveTime := time.Duration(config.Settings.Solver.SolveTimeMs) * time.Millisecond

	// generate a single square with the backtracking generator
	if *generate {
		attemptTime := time.Duration(config.Settings.Solver.GenAttemptTimeMs) * time.Millisecond
		grid, err := generator.RandomLatinSquareRetry(*size, *seed, attemptTime)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(grid)
		return
	}

	// sample a square with the intercalate-flip chain
	if *uniform {
		grid, err := generator.UniformRandomLatinSquare(*size, *seed, 0)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(grid)
		return
	}

	// discover single-solution puzzles and print them as puzzle lines
	if *discover > 0 {
		base := types.CyclicLatinSquare(*size)
		discovered, err := puzzle.FindSingleSolutionPuzzlesParallel(base, *discover, *workers, solveTime)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		out.Printf("Found %d single-solution puzzles (size %d, %d revealed tiles)\n",
			len(discovered), *size, *discover)
		for _, d := range discovered {
			fmt.Println(d.Tiles)
		}
		return
	}

	// run game simulations in parallel and summarize the outcomes
	if *simulate > 0 {
		firstGuesses := make([]types.Grid, *simulate)
		for k := range firstGuesses {
			if *randomGuess {
				firstGuesses[k] = types.RandomSquare(*size, *seed+int64(k))
			} else {
				firstGuesses[k] = types.CyclicLatinSquare(*size)
			}
		}
		results := pool.RunSimulations(firstGuesses, *seed, *workers, 0, solveTime)
		solved := 0
		for _, r := range results {
			if r != nil && r.Solved {
				solved++
			}
		}
		out.Printf("Solved %d of %d games within %d rounds\n",
			solved, len(results), config.Settings.Solver.MaxGameRounds)
		return
	}

	// execute test suite if a file is given
	if *testSuite != "" {
		ts, err := testsuite.NewTestSuite(*testSuite, *size, time.Duration(*testTime)*time.Millisecond)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		ts.RunTests()
		return
	}

	flag.Usage()
}

func printVersionInfo() {
	out.Printf("%s %s\n", version.Name, version.Version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
