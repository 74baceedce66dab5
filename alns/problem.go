package alns

import (
	"github.com/katalvlaran/vrp/constructive"
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/model"
	"github.com/katalvlaran/vrp/rng"
)

// unassignedPenalty is the per-customer cost charged for a customer left
// unassigned, large enough that any feasible full assignment outranks any
// solution with a gap, for instances of realistic size.
const unassignedPenalty = 10000.0

// Problem is the contract the ALNS driver needs from a VRP encoding: an
// initial solution to destroy and repair, and a scalar cost to compare
// candidates by. Implementations must be safe for concurrent read-only use.
type Problem interface {
	InitialSolution(r rng.Source) Solution
	Cost(sol Solution) float64
}

// RoutingALNSProblem is the lightweight-representation ALNS problem for
// capacitated vehicle routing: an initial nearest-neighbor solution, and a
// cost that sums total distance with a heavy per-unassigned-customer
// penalty so the search always prefers serving more customers.
type RoutingALNSProblem struct {
	customers []model.Customer
	distances distmatrix.Matrix
	capacity  int
}

// NewRoutingALNSProblem builds an ALNS problem over customers (index 0 =
// depot) for a homogeneous fleet of vehicles with the given capacity.
func NewRoutingALNSProblem(customers []model.Customer, distances distmatrix.Matrix, capacity int) *RoutingALNSProblem {
	return &RoutingALNSProblem{customers: customers, distances: distances, capacity: capacity}
}

// InitialSolution builds a starting solution with the nearest-neighbor
// constructive heuristic, converted to the lightweight route representation.
func (p *RoutingALNSProblem) InitialSolution(_ rng.Source) Solution {
	vehicles := make([]model.Vehicle, len(p.customers))
	for i := range vehicles {
		v, _ := model.NewVehicle(i, p.capacity)
		vehicles[i] = v
	}

	nnSol := constructive.NearestNeighbor(p.customers, p.distances, vehicles)

	routes := make([][]int, len(nnSol.Routes))
	for i, r := range nnSol.Routes {
		routes[i] = append([]int(nil), r.CustomerIDs()...)
	}
	unassigned := append([]int(nil), nnSol.Unassigned...)

	return NewSolution(routes, unassigned, p.distances)
}

// Cost is total route distance plus unassignedPenalty per unassigned
// customer.
func (p *RoutingALNSProblem) Cost(sol Solution) float64 {
	return sol.TotalDistance + float64(len(sol.Unassigned))*unassignedPenalty
}
