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

// Package pool is the parallel harness of the engine. It dispatches
// independent CPU-bound tasks (solver calls, game simulations,
// puzzle discovery) across worker goroutines, bounds concurrency
// with a weighted semaphore and bounds each task with a wall clock
// budget.
package pool

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Zulko/sudodle/internal/config"
	"github.com/Zulko/sudodle/internal/game"
	"github.com/Zulko/sudodle/internal/types"
	"github.com/Zulko/sudodle/internal/util"
)

// Task is a self-contained unit of work. Tasks must not share
// mutable state; each owns its inputs. The stop flag is set when the
// task's wall clock budget elapses; a task iterating over several
// work items should poll it and return early so its worker slot
// frees up quickly.
type Task func(stop *util.Bool) interface{}

// TaskResult is the outcome of one task. When TimedOut is set the
// per-task budget elapsed before the task finished and Value is nil.
type TaskResult struct {
	Value    interface{}
	TimedOut bool
}

// Workers resolves the effective worker count: the given count, or
// the configured default, or the number of CPU cores.
func Workers(count int) int {
	if count > 0 {
		return count
	}
	if config.Settings.Solver.Workers > 0 {
		return config.Settings.Solver.Workers
	}
	return runtime.NumCPU()
}

// Run submits all tasks to a pool of the given number of workers and
// collects the results as they complete. Completion order is
// arbitrary. A task exceeding perTaskLimit yields a TaskResult with
// TimedOut set and has its stop flag raised; the harness itself
// never fails. A perTaskLimit of 0 means no budget. The worker slot
// of a timed-out task is only released once the abandoned task
// function returns, so the concurrency bound stays honest.
func Run(tasks []Task, workers int, perTaskLimit time.Duration) []TaskResult {
	workers = Workers(workers)
	sem := semaphore.NewWeighted(int64(workers))
	resultCh := make(chan TaskResult, len(tasks))

	for _, task := range tasks {
		task := task
		go func() {
			_ = sem.Acquire(context.TODO(), 1)

			stop := util.NewBool(false)
			inner := make(chan interface{}, 1)
			go func() {
				inner <- task(stop)
				sem.Release(1)
			}()

			if perTaskLimit <= 0 {
				resultCh <- TaskResult{Value: <-inner}
				return
			}
			timer := time.NewTimer(perTaskLimit)
			defer timer.Stop()
			select {
			case value := <-inner:
				resultCh <- TaskResult{Value: value}
			case <-timer.C:
				stop.Store(true)
				resultCh <- TaskResult{TimedOut: true}
			}
		}()
	}

	results := make([]TaskResult, 0, len(tasks))
	for range tasks {
		results = append(results, <-resultCh)
	}
	return results
}

// RunSimulations plays one game per first guess in parallel and
// returns the per-game results in completion order. Timed-out games
// appear as nil entries. A single game cannot be interrupted
// mid-round, so the tasks ignore the stop flag.
func RunSimulations(firstGuesses []types.Grid, seed int64, workers int, perGameLimit time.Duration, solveLimit time.Duration) []*game.Result {
	tasks := make([]Task, len(firstGuesses))
	for k, guess := range firstGuesses {
		guess := guess
		gameSeed := seed + int64(k)
		tasks[k] = func(_ *util.Bool) interface{} {
			result, err := game.Simulate(guess, gameSeed, solveLimit)
			if err != nil {
				return (*game.Result)(nil)
			}
			return result
		}
	}

	results := make([]*game.Result, 0, len(tasks))
	for _, tr := range Run(tasks, workers, perGameLimit) {
		if tr.TimedOut {
			results = append(results, nil)
			continue
		}
		results = append(results, tr.Value.(*game.Result))
	}
	return results
}
