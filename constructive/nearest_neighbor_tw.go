package constructive

import (
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/evaluator"
	"github.com/katalvlaran/vrp/model"
)

// NearestNeighborTW is the Solomon-variant nearest neighbor: identical to
// NearestNeighbor but additionally prunes candidates whose arrival would
// exceed the customer's time window Due. Timing (including waiting) is
// simulated forward alongside load; both are hard constraints. A customer
// unreachable from the depot within its window is never inserted and ends
// up unassigned.
func NearestNeighborTW(customers []model.Customer, dist distmatrix.Matrix, vehicles []model.Vehicle) model.Solution {
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
		clock := 0.0
		current := veh.DepotID()

		for {
			next, arrival, found := nearestFittingTW(customers, dist, current, visited, load, veh.Capacity, clock)
			if !found {
				break
			}
			c := customers[next]
			route = append(route, next)
			visited[next] = true
			load += c.Demand

			serviceStart := arrival
			if c.TimeWindow != nil {
				serviceStart = arrival + c.TimeWindow.WaitingTime(arrival)
			}
			clock = serviceStart + c.ServiceDuration
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

// nearestFittingTW returns the unvisited, capacity- and window-feasible
// customer nearest to from, along with the arrival time it would produce.
func nearestFittingTW(customers []model.Customer, dist distmatrix.Matrix, from int, visited []bool, load, capacity int, clock float64) (int, float64, bool) {
	best := -1
	bestDist := 0.0
	bestArrival := 0.0
	for i, c := range customers {
		if visited[i] {
			continue
		}
		if load+c.Demand > capacity {
			continue
		}
		travel := dist.Get(from, i)
		arrival := clock + travel
		if c.TimeWindow != nil && c.TimeWindow.IsViolated(arrival) {
			continue
		}
		if best == -1 || travel < bestDist {
			best = i
			bestDist = travel
			bestArrival = arrival
		}
	}
	return best, bestArrival, best != -1
}
