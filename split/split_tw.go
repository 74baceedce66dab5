package split

import (
	"math"

	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/model"
)

// SplitTW extends Split with time-window feasibility: an edge (i,j) in the
// auxiliary graph is valid only if simulating tour[i:j] forward from the
// depot at time 0 never arrives at a customer after its Due. O(n^2).
func SplitTW(tour []int, customers []model.Customer, dist distmatrix.Matrix, capacity int) Result {
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
		clock := 0.0

		for j := i; j < n; j++ {
			cid := tour[j]
			c := customers[cid]
			load += c.Demand
			if load > capacity {
				break
			}

			if j == i {
				routeDist = dist.Get(depot, cid)
				clock = routeDist
			} else {
				travel := dist.Get(tour[j-1], cid)
				routeDist += travel
				clock += travel
			}

			if c.TimeWindow != nil {
				if clock > c.TimeWindow.Due {
					break
				}
				if clock < c.TimeWindow.Ready {
					clock = c.TimeWindow.Ready
				}
			}
			clock += c.ServiceDuration

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
