package constructive

import (
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/evaluator"
	"github.com/katalvlaran/vrp/model"
)

// SolomonI1 builds routes one at a time: each new route is seeded with the
// farthest unrouted customer from the depot; customers are then inserted
// one at a time at whichever (customer, position) pair minimizes insertion
// cost d(prev,c)+d(c,next)-d(prev,next), subject to capacity and a full
// re-simulation of the candidate route's timing for time-window
// feasibility. A route is closed (and a new one started) once no
// remaining unrouted customer can be feasibly inserted anywhere in it.
// A seed that cannot be served on its own (demand above capacity, or its
// window closes before the vehicle can reach it) is recorded as unassigned.
// O(n^2 * m) where m is the number of routes.
func SolomonI1(customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle) model.Solution {
	n := len(customers)
	sol := model.NewSolution()
	if n <= 1 {
		return sol
	}

	depot := vehicle.DepotID()
	ev := evaluator.New(customers, dist, vehicle)

	unrouted := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		unrouted = append(unrouted, i)
	}

	for len(unrouted) > 0 {
		seedIdx := farthestFromDepot(customers, dist, depot, unrouted)
		seed := unrouted[seedIdx]
		route := []int{seed}
		load := customers[seed].Demand
		unrouted = removeAt(unrouted, seedIdx)
		if load > vehicle.Capacity || !isTWFeasible(customers, dist, depot, route) {
			sol.AddUnassigned(seed)
			continue
		}

		for {
			bestIdx, bestPos, _, found := bestInsertion(customers, dist, vehicle, route, load, unrouted)
			if !found {
				break
			}
			cid := unrouted[bestIdx]
			route = insertAt(route, bestPos, cid)
			load += customers[cid].Demand
			unrouted = removeAt(unrouted, bestIdx)
		}

		built, _ := ev.BuildRoute(route)
		sol.AddRoute(built)
	}

	sol.TotalCost = sol.TotalDistance()
	return sol
}

func farthestFromDepot(customers []model.Customer, dist distmatrix.Matrix, depot int, candidates []int) int {
	best := 0
	bestDist := dist.Get(depot, candidates[0])
	for i := 1; i < len(candidates); i++ {
		d := dist.Get(depot, candidates[i])
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// bestInsertion scans every unrouted candidate and every position in
// route, returning the (candidate index into unrouted, position, cost)
// triple with minimum insertion cost among capacity- and
// time-window-feasible options.
func bestInsertion(customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle, route []int, load int, unrouted []int) (int, int, float64, bool) {
	depot := vehicle.DepotID()
	found := false
	bestIdx, bestPos := 0, 0
	bestCost := 0.0

	for ui, cid := range unrouted {
		if load+customers[cid].Demand > vehicle.Capacity {
			continue
		}
		for pos := 0; pos <= len(route); pos++ {
			prev := depot
			if pos > 0 {
				prev = route[pos-1]
			}
			next := depot
			if pos < len(route) {
				next = route[pos]
			}
			cost := dist.Get(prev, cid) + dist.Get(cid, next) - dist.Get(prev, next)

			candidate := insertAt(route, pos, cid)
			if !isTWFeasible(customers, dist, depot, candidate) {
				continue
			}

			if !found || cost < bestCost {
				found = true
				bestIdx = ui
				bestPos = pos
				bestCost = cost
			}
		}
	}
	return bestIdx, bestPos, bestCost, found
}

// isTWFeasible re-simulates routeIDs from the depot at time 0 and reports
// whether every customer with a time window is reached by its Due.
func isTWFeasible(customers []model.Customer, dist distmatrix.Matrix, depot int, routeIDs []int) bool {
	clock := 0.0
	prev := depot
	for _, cid := range routeIDs {
		c := customers[cid]
		arrival := clock + dist.Get(prev, cid)
		if c.TimeWindow != nil {
			if c.TimeWindow.IsViolated(arrival) {
				return false
			}
			clock = arrival + c.TimeWindow.WaitingTime(arrival) + c.ServiceDuration
		} else {
			clock = arrival + c.ServiceDuration
		}
		prev = cid
	}
	return true
}

func insertAt(route []int, pos, cid int) []int {
	out := make([]int, 0, len(route)+1)
	out = append(out, route[:pos]...)
	out = append(out, cid)
	out = append(out, route[pos:]...)
	return out
}

func removeAt(a []int, idx int) []int {
	out := make([]int, 0, len(a)-1)
	out = append(out, a[:idx]...)
	out = append(out, a[idx+1:]...)
	return out
}
