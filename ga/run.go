package ga

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/vrp/rng"
)

// Options configures the Run driver. Construct with NewOptions and the
// With* functional options; zero value is not ready to use.
type Options struct {
	PopulationSize int
	Generations    int
	TournamentSize int
	CrossoverRate  float64
	MutationRate   float64
	Elitism        int
}

// Option mutates Options during construction.
type Option func(*Options)

// WithPopulationSize overrides the default population size (40).
func WithPopulationSize(n int) Option { return func(o *Options) { o.PopulationSize = n } }

// WithGenerations overrides the default generation count (100).
func WithGenerations(n int) Option { return func(o *Options) { o.Generations = n } }

// WithTournamentSize overrides the default tournament size (3).
func WithTournamentSize(n int) Option { return func(o *Options) { o.TournamentSize = n } }

// WithCrossoverRate overrides the default crossover rate (0.9).
func WithCrossoverRate(rate float64) Option { return func(o *Options) { o.CrossoverRate = rate } }

// WithMutationRate overrides the default mutation rate (0.1).
func WithMutationRate(rate float64) Option { return func(o *Options) { o.MutationRate = rate } }

// WithElitism overrides the default elitism count (2).
func WithElitism(n int) Option { return func(o *Options) { o.Elitism = n } }

// NewOptions builds Options with sane textbook defaults, then applies opts
// in order.
func NewOptions(opts ...Option) Options {
	o := Options{
		PopulationSize: 40,
		Generations:    100,
		TournamentSize: 3,
		CrossoverRate:  0.9,
		MutationRate:   0.1,
		Elitism:        2,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of a GA run: the best individual found and its
// fitness, mirrored for convenience.
type Result struct {
	Best        GiantTour
	BestFitness float64
}

// Run executes a minimal generational GA: initializes a random population,
// then for Generations rounds performs tournament selection paired with OX
// crossover (at CrossoverRate) and mutation (at MutationRate), keeping the
// Elitism best individuals verbatim each generation. logw receives one
// line per generation reporting the best fitness so far; pass io.Discard
// to suppress. Run returns early if ctx is canceled, yielding the best
// individual found up to that point.
func Run(ctx context.Context, problem Problem, opts Options, r rng.Source, logw io.Writer) Result {
	pop := make([]GiantTour, opts.PopulationSize)
	for i := range pop {
		ind := problem.CreateIndividual(r)
		ind.Fitness = problem.Evaluate(ind)
		pop[i] = ind
	}
	sortByFitness(pop)

	for gen := 0; gen < opts.Generations; gen++ {
		select {
		case <-ctx.Done():
			return Result{Best: pop[0], BestFitness: pop[0].Fitness}
		default:
		}

		next := make([]GiantTour, 0, opts.PopulationSize)
		next = append(next, pop[:min(opts.Elitism, len(pop))]...)

		for len(next) < opts.PopulationSize {
			p1 := tournamentSelect(pop, opts.TournamentSize, r)
			p2 := tournamentSelect(pop, opts.TournamentSize, r)

			var c1, c2 GiantTour
			if r.Float64() < opts.CrossoverRate {
				c1, c2 = problem.Crossover(p1, p2, r)
			} else {
				c1, c2 = p1.Clone(), p2.Clone()
			}

			if r.Float64() < opts.MutationRate {
				problem.Mutate(&c1, r)
			}
			if r.Float64() < opts.MutationRate {
				problem.Mutate(&c2, r)
			}

			c1.Fitness = problem.Evaluate(c1)
			next = append(next, c1)
			if len(next) < opts.PopulationSize {
				c2.Fitness = problem.Evaluate(c2)
				next = append(next, c2)
			}
		}

		pop = next
		sortByFitness(pop)

		if logw != nil {
			fmt.Fprintf(logw, "generation %d: best fitness %g\n", gen, pop[0].Fitness)
		}
	}

	return Result{Best: pop[0], BestFitness: pop[0].Fitness}
}

func tournamentSelect(pop []GiantTour, size int, r rng.Source) GiantTour {
	best := pop[r.IntN(len(pop))]
	for i := 1; i < size; i++ {
		cand := pop[r.IntN(len(pop))]
		if cand.Fitness < best.Fitness {
			best = cand
		}
	}
	return best
}

func sortByFitness(pop []GiantTour) {
	for i := 1; i < len(pop); i++ {
		for j := i; j > 0 && pop[j].Fitness < pop[j-1].Fitness; j-- {
			pop[j], pop[j-1] = pop[j-1], pop[j]
		}
	}
}

