// Package localsearch implements intra- and inter-route improvement
// operators over a fixed customer set: 2-opt, Or-opt, and 3-opt act within
// a single route; Relocate and Exchange move customers between routes.
// Every operator is deterministic first-improvement (or best-per-pass) and
// never proposes a move costed as an improvement by less than eps — this
// guards against oscillation from floating point noise.
package localsearch

import "github.com/katalvlaran/vrp/distmatrix"

// eps is the minimum magnitude a delta must clear to be treated as an
// improvement rather than floating point noise.
const eps = -1e-10

// TwoOpt applies 2-opt improvement to a single route (customer IDs,
// excluding depot): for every pair of edges (i,i+1) and (j,j+1), reverses
// the segment [i+1..j] when doing so shortens the route. Repeats until a
// full pass finds no improving reversal. O(n^2) per pass.
func TwoOpt(route []int, depot int, dist distmatrix.Matrix) ([]int, float64) {
	if len(route) < 2 {
		return append([]int(nil), route...), routeDistance(route, depot, dist)
	}

	current := append([]int(nil), route...)
	improved := true
	for improved {
		improved = false
		n := len(current)
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if twoOptDelta(current, depot, dist, i, j) < eps {
					reverseSegment(current, i, j)
					improved = true
				}
			}
		}
	}

	return current, routeDistance(current, depot, dist)
}

// twoOptDelta computes the distance change from replacing edges
// (prevI,route[i]) and (route[j],nextJ) with (prevI,route[j]) and
// (route[i],nextJ).
func twoOptDelta(route []int, depot int, dist distmatrix.Matrix, i, j int) float64 {
	n := len(route)
	prevI := depot
	if i > 0 {
		prevI = route[i-1]
	}
	nextJ := depot
	if j < n-1 {
		nextJ = route[j+1]
	}

	oldCost := dist.Get(prevI, route[i]) + dist.Get(route[j], nextJ)
	newCost := dist.Get(prevI, route[j]) + dist.Get(route[i], nextJ)
	return newCost - oldCost
}

func reverseSegment(route []int, i, j int) {
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		route[lo], route[hi] = route[hi], route[lo]
	}
}

// routeDistance computes depot -> route[0] -> ... -> route[n-1] -> depot.
func routeDistance(route []int, depot int, dist distmatrix.Matrix) float64 {
	if len(route) == 0 {
		return 0
	}
	total := dist.Get(depot, route[0])
	for i := 0; i+1 < len(route); i++ {
		total += dist.Get(route[i], route[i+1])
	}
	total += dist.Get(route[len(route)-1], depot)
	return total
}
