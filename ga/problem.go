package ga

import (
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/localsearch"
	"github.com/katalvlaran/vrp/model"
	"github.com/katalvlaran/vrp/rng"
	"github.com/katalvlaran/vrp/split"
)

// Problem is the contract the GA driver needs from a VRP encoding:
// construct random individuals, score them, and produce offspring.
// Implementations must be safe for concurrent read-only use; Run never
// mutates a Problem after construction.
type Problem interface {
	CreateIndividual(r rng.Source) GiantTour
	Evaluate(g GiantTour) float64
	Crossover(p1, p2 GiantTour, r rng.Source) (GiantTour, GiantTour)
	Mutate(g *GiantTour, r rng.Source)
}

// RoutingGAProblem is the giant-tour GA problem for capacitated vehicle
// routing: fitness is the Prins split-DP distance, optionally polished per
// route with 2-opt.
type RoutingGAProblem struct {
	customers        []model.Customer
	distances        distmatrix.Matrix
	capacity         int
	applyLocalSearch bool
}

// NewRoutingGAProblem builds a GA problem over customers (index 0 = depot)
// for a homogeneous fleet of vehicles with the given capacity. Local
// search polishing is enabled by default; disable it with
// WithoutLocalSearch for a pure split-DP fitness.
func NewRoutingGAProblem(customers []model.Customer, distances distmatrix.Matrix, capacity int) *RoutingGAProblem {
	return &RoutingGAProblem{
		customers:        customers,
		distances:        distances,
		capacity:         capacity,
		applyLocalSearch: true,
	}
}

// WithoutLocalSearch disables intra-route 2-opt during evaluation.
func (p *RoutingGAProblem) WithoutLocalSearch() *RoutingGAProblem {
	p.applyLocalSearch = false
	return p
}

func (p *RoutingGAProblem) numCustomers() int { return len(p.customers) - 1 }

// CreateIndividual builds a uniform random permutation of {1..n} via
// Fisher-Yates.
func (p *RoutingGAProblem) CreateIndividual(r rng.Source) GiantTour {
	n := p.numCustomers()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i + 1
	}
	rng.ShuffleInts(perm, r)
	return NewGiantTour(perm)
}

// Evaluate splits the tour into feasible routes and sums their distance,
// optionally polishing each route with 2-opt first.
func (p *RoutingGAProblem) Evaluate(g GiantTour) float64 {
	result := split.Split(g.Customers, p.customers, p.distances, p.capacity)

	if !p.applyLocalSearch {
		return result.TotalDistance
	}

	total := 0.0
	for _, route := range result.Routes {
		_, dist := localsearch.TwoOpt(route, model.DepotID, p.distances)
		total += dist
	}
	return total
}

// Crossover applies order crossover (OX) to the two parent permutations.
func (p *RoutingGAProblem) Crossover(parent1, parent2 GiantTour, r rng.Source) (GiantTour, GiantTour) {
	c1, c2 := orderCrossover(parent1.Customers, parent2.Customers, r)
	return NewGiantTour(c1), NewGiantTour(c2)
}

// Mutate applies swap mutation or invert (2-opt-style) mutation with equal
// probability.
func (p *RoutingGAProblem) Mutate(g *GiantTour, r rng.Source) {
	if g.Len() < 2 {
		return
	}
	if r.IntN(2) == 0 {
		swapMutation(g.Customers, r)
	} else {
		invertMutation(g.Customers, r)
	}
}
