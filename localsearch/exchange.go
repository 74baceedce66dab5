package localsearch

import (
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/model"
)

// Exchange applies inter-route cross-exchange (2-opt*): swaps the tail
// segments of two routes at whichever cut positions reduce total distance
// while keeping both resulting routes within capacity. Solutions with
// fewer than two routes are returned unchanged. O(n^3 * R^2) per pass, since
// both routes' loads are re-summed for every cut pair.
func Exchange(sol model.Solution, customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle) model.Solution {
	if sol.NumRoutes() < 2 {
		return sol
	}

	routes := make([][]int, len(sol.Routes))
	for i, r := range sol.Routes {
		routes[i] = r.CustomerIDs()
	}

	depot := vehicle.DepotID()
	improved := true
	for improved {
		improved = false
		for r1 := 0; r1 < len(routes); r1++ {
			for r2 := r1 + 1; r2 < len(routes); r2++ {
				cut1, cut2, delta, ok := findBestExchange(routes[r1], routes[r2], depot, dist, customers, vehicle)
				if ok && delta < eps {
					tail1 := append([]int(nil), routes[r1][cut1:]...)
					tail2 := append([]int(nil), routes[r2][cut2:]...)
					routes[r1] = append(routes[r1][:cut1:cut1], tail2...)
					routes[r2] = append(routes[r2][:cut2:cut2], tail1...)
					improved = true
				}
			}
		}
	}

	return rebuildSolution(routes, sol, customers, dist, vehicle)
}

// findBestExchange scans every (cut1,cut2) split of the two routes and
// returns the split with minimum reconnection delta.
func findBestExchange(route1, route2 []int, depot int, dist distmatrix.Matrix, customers []model.Customer, vehicle model.Vehicle) (int, int, float64, bool) {
	n1, n2 := len(route1), len(route2)
	found := false
	bestCut1, bestCut2 := 0, 0
	bestDelta := 0.0

	for cut1 := 1; cut1 <= n1; cut1++ {
		for cut2 := 1; cut2 <= n2; cut2++ {
			newLoad1 := 0
			for _, c := range route1[:cut1] {
				newLoad1 += customers[c].Demand
			}
			for _, c := range route2[cut2:] {
				newLoad1 += customers[c].Demand
			}
			newLoad2 := 0
			for _, c := range route2[:cut2] {
				newLoad2 += customers[c].Demand
			}
			for _, c := range route1[cut1:] {
				newLoad2 += customers[c].Demand
			}
			if newLoad1 > vehicle.Capacity || newLoad2 > vehicle.Capacity {
				continue
			}

			oldEdge1 := dist.Get(route1[cut1-1], depot)
			if cut1 < n1 {
				oldEdge1 = dist.Get(route1[cut1-1], route1[cut1])
			}
			oldEdge2 := dist.Get(route2[cut2-1], depot)
			if cut2 < n2 {
				oldEdge2 = dist.Get(route2[cut2-1], route2[cut2])
			}

			newEdge1 := dist.Get(route1[cut1-1], depot)
			if cut2 < n2 {
				newEdge1 = dist.Get(route1[cut1-1], route2[cut2])
			}
			newEdge2 := dist.Get(route2[cut2-1], depot)
			if cut1 < n1 {
				newEdge2 = dist.Get(route2[cut2-1], route1[cut1])
			}

			delta := (newEdge1 + newEdge2) - (oldEdge1 + oldEdge2)
			if delta < eps && (!found || delta < bestDelta) {
				found = true
				bestCut1, bestCut2, bestDelta = cut1, cut2, delta
			}
		}
	}

	return bestCut1, bestCut2, bestDelta, found
}
