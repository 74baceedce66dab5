// Package split implements the Prins (2004) dynamic-program split of a
// giant tour (a permutation of customer ids) into capacity-feasible
// sub-routes, plus a time-window-aware variant. Both model the partition
// as a shortest path over an auxiliary graph: node i is the boundary after
// tour[i-1], and edge (i,j) is the route serving tour[i:j].
package split

import (
	"math"

	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/model"
)

// Result is the outcome of a split: the partition of the giant tour into
// per-route customer-id slices, and its total distance.
//
// Complete reports whether every customer in the tour was placed: when the
// DP finds no feasible path from the tour's start to its end, Complete is
// false, Routes holds only the partial partition reconstructed from the
// farthest reachable position, and TotalDistance is that partial cost.
// Callers MUST check Complete before trusting Routes or TotalDistance —
// a false Complete is a feasibility outcome, not a construction error, and
// Split/SplitTW never raise it as an error.
type Result struct {
	Routes        [][]int
	TotalDistance float64
	Complete      bool
}

// Split partitions tour into capacity-feasible sub-routes minimizing total
// distance, via dynamic programming. O(n^2).
func Split(tour []int, customers []model.Customer, dist distmatrix.Matrix, capacity int) Result {
	n := len(tour)
	if n == 0 {
		return Result{Complete: true}
	}

	const depot = model.DepotID
	cost := make([]float64, n+1)
	pred := make([]int, n+1)
	for i := range cost {
		cost[i] = math.Inf(1)
	}
	cost[0] = 0

	for i := 0; i < n; i++ {
		if math.IsInf(cost[i], 1) {
			continue
		}

		load := 0
		routeDist := 0.0

		for j := i; j < n; j++ {
			cid := tour[j]
			load += customers[cid].Demand
			if load > capacity {
				break
			}

			if j == i {
				routeDist = dist.Get(depot, cid)
			} else {
				routeDist += dist.Get(tour[j-1], cid)
			}

			totalRoute := routeDist + dist.Get(cid, depot)
			newCost := cost[i] + totalRoute
			if newCost < cost[j+1] {
				cost[j+1] = newCost
				pred[j+1] = i
			}
		}
	}

	return backtrack(tour, cost, pred, n)
}

// backtrack reconstructs routes from the farthest reachable boundary,
// reporting Complete only when that boundary is n.
func backtrack(tour []int, cost []float64, pred []int, n int) Result {
	last := n
	for last > 0 && math.IsInf(cost[last], 1) {
		last--
	}

	var routes [][]int
	j := last
	for j > 0 {
		i := pred[j]
		routes = append(routes, append([]int(nil), tour[i:j]...))
		j = i
	}
	for l, r := 0, len(routes)-1; l < r; l, r = l+1, r-1 {
		routes[l], routes[r] = routes[r], routes[l]
	}

	total := 0.0
	if last > 0 {
		total = cost[last]
	}

	return Result{Routes: routes, TotalDistance: total, Complete: last == n}
}
