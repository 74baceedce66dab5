package alns

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/vrp/rng"
)

// Options configures the Run driver. Construct with NewOptions and the
// With* functional options; zero value is not ready to use.
type Options struct {
	DestroyDegree float64
	MaxIterations int
	Seed          int64
}

// Option mutates Options during construction.
type Option func(*Options)

// WithDestroyDegree overrides the default fraction of customers removed
// per iteration (0.2).
func WithDestroyDegree(degree float64) Option { return func(o *Options) { o.DestroyDegree = degree } }

// WithMaxIterations overrides the default iteration count (500).
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithSeed overrides the default seed (1).
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// NewOptions builds Options with sane defaults, then applies opts in order.
func NewOptions(opts ...Option) Options {
	o := Options{
		DestroyDegree: 0.2,
		MaxIterations: 500,
		Seed:          1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of an ALNS run: the best solution found and its
// cost, mirrored for convenience.
type Result struct {
	Best     Solution
	BestCost float64
}

// Run executes a simulated-annealing-flavored ALNS loop: starting from
// problem's initial solution, each of opts.MaxIterations iterations draws
// a destroy operator and a repair operator uniformly at random, applies
// destroy at opts.DestroyDegree then repair, and accepts the resulting
// solution if its cost is no worse than the current accepted solution's
// cost. The best solution seen is tracked independent of acceptance. logw
// receives one line per iteration that improves on the best-seen cost;
// pass io.Discard to suppress. Run returns early if ctx is canceled,
// yielding the best solution found up to that point.
func Run(ctx context.Context, problem Problem, destroyOps []DestroyOperator, repairOps []RepairOperator, opts Options, r rng.Source, logw io.Writer) Result {
	current := problem.InitialSolution(r)
	currentCost := problem.Cost(current)

	best := current.Clone()
	bestCost := currentCost

	for iter := 0; iter < opts.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			return Result{Best: best, BestCost: bestCost}
		default:
		}

		destroyOp := destroyOps[r.IntN(len(destroyOps))]
		repairOp := repairOps[r.IntN(len(repairOps))]

		destroyed := destroyOp.Destroy(current, opts.DestroyDegree, r)
		candidate := repairOp.Repair(destroyed, r)
		candidateCost := problem.Cost(candidate)

		if candidateCost <= currentCost {
			current = candidate
			currentCost = candidateCost
		}

		if candidateCost < bestCost {
			best = candidate.Clone()
			bestCost = candidateCost
			if logw != nil {
				fmt.Fprintf(logw, "iteration %d: new best cost %g (%s + %s)\n", iter, bestCost, destroyOp.Name(), repairOp.Name())
			}
		}
	}

	return Result{Best: best, BestCost: bestCost}
}
