// Package constructive provides the constructive heuristics that build a
// first feasible Solution from scratch: nearest neighbor (plain and
// time-window), Clarke-Wright savings, sweep, and Solomon I1 insertion.
package constructive

import (
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/evaluator"
	"github.com/katalvlaran/vrp/model"
)

// NearestNeighbor builds a solution greedily: loop over vehicles in
// order; for each, starting from the depot, repeatedly pick the unvisited
// customer of minimum distance whose demand fits the vehicle's remaining
// capacity; close the route when no candidate fits. Customers left over
// after exhausting vehicles are returned unassigned. O(n^2).
func NearestNeighbor(customers []model.Customer, dist distmatrix.Matrix, vehicles []model.Vehicle) model.Solution {
	n := len(customers)
	sol := model.NewSolution()
	if n <= 1 {
		return sol
	}

	visited := make([]bool, n)
	visited[model.DepotID] = true

	for _, veh := range vehicles {
		ev := evaluator.New(customers, dist, veh)
		var route []int
		load := 0
		current := veh.DepotID()

		for {
			next, found := nearestFitting(customers, dist, current, visited, load, veh.Capacity)
			if !found {
				break
			}
			route = append(route, next)
			visited[next] = true
			load += customers[next].Demand
			current = next
		}

		if len(route) > 0 {
			built, _ := ev.BuildRoute(route)
			sol.AddRoute(built)
		}
	}

	for i := 1; i < n; i++ {
		if !visited[i] {
			sol.AddUnassigned(i)
		}
	}

	sol.TotalCost = sol.TotalDistance()
	return sol
}

// nearestFitting returns the unvisited customer nearest to from whose
// demand fits within capacity-load, or (-1, false) if none exists.
func nearestFitting(customers []model.Customer, dist distmatrix.Matrix, from int, visited []bool, load, capacity int) (int, bool) {
	best := -1
	bestDist := 0.0
	for i, c := range customers {
		if visited[i] {
			continue
		}
		if load+c.Demand > capacity {
			continue
		}
		d := dist.Get(from, i)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best != -1
}
