// Package puzzle defines the contract every daily solver implements and the
// helpers they share for splitting, parsing and reducing puzzle input.
package puzzle

import (
	"context"
	"runtime"
)

// Answer holds both results for one day. A day that only has one part
// leaves Part2 at zero.
type Answer struct {
	Day   int
	Part1 int64
	Part2 int64

	// Part1Err and Part2Err are set when the input has no answer for that
	// part while the other part still solved. The matching value is zero.
	Part1Err error
	Part2Err error
}

// Part returns the answer for part 1 or 2.
func (a Answer) Part(n int) int64 {
	if n == 2 {
		return a.Part2
	}
	return a.Part1
}

// Err returns why part 1 or 2 has no answer, or nil.
func (a Answer) Err(n int) error {
	if n == 2 {
		return a.Part2Err
	}
	return a.Part1Err
}

// Solver computes the answers for a single day from its raw input text.
type Solver interface {
	Day() int
	Title() string
	Solve(ctx context.Context, input string) (Answer, error)
}

// Options carries the knobs shared by every solver.
type Options struct {
	// Workers bounds the number of goroutines used for line-parallel work.
	// Zero or negative means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns options sized for the current machine.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// EffectiveWorkers resolves the configured worker count.
func (o Options) EffectiveWorkers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}
