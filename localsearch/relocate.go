package localsearch

import (
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/evaluator"
	"github.com/katalvlaran/vrp/model"
)

// relocateMove describes moving the customer at from_route[from_pos] to
// to_route[to_pos].
type relocateMove struct {
	fromRoute, fromPos int
	toRoute, toPos     int
	delta              float64
}

// Relocate applies inter-route relocation: repeatedly moves a single
// customer from one route to a better position in another route, subject
// to capacity, accepting the single best move found each pass until no
// improving move remains. Solutions with fewer than two routes are
// returned unchanged. O(n^2 * R) per pass.
func Relocate(sol model.Solution, customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle) model.Solution {
	if sol.NumRoutes() < 2 {
		return sol
	}

	routes := make([][]int, len(sol.Routes))
	for i, r := range sol.Routes {
		routes[i] = r.CustomerIDs()
	}

	improved := true
	for improved {
		improved = false
		mv, ok := findBestRelocate(routes, customers, dist, vehicle)
		if ok && mv.delta < eps {
			cid := routes[mv.fromRoute][mv.fromPos]
			routes[mv.fromRoute] = append(routes[mv.fromRoute][:mv.fromPos], routes[mv.fromRoute][mv.fromPos+1:]...)
			dst := routes[mv.toRoute]
			out := make([]int, 0, len(dst)+1)
			out = append(out, dst[:mv.toPos]...)
			out = append(out, cid)
			out = append(out, dst[mv.toPos:]...)
			routes[mv.toRoute] = out
			improved = true
		}
	}

	return rebuildSolution(routes, sol, customers, dist, vehicle)
}

func findBestRelocate(routes [][]int, customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle) (relocateMove, bool) {
	depot := vehicle.DepotID()
	found := false
	var best relocateMove

	for fromR := range routes {
		for fromPos := range routes[fromR] {
			cid := routes[fromR][fromPos]
			removalDelta := removalCost(routes[fromR], fromPos, depot, dist)

			for toR, toRoute := range routes {
				if toR == fromR {
					continue
				}
				toLoad := 0
				for _, c := range toRoute {
					toLoad += customers[c].Demand
				}
				if toLoad+customers[cid].Demand > vehicle.Capacity {
					continue
				}

				for toPos := 0; toPos <= len(toRoute); toPos++ {
					insertionDelta := insertionCost(toRoute, toPos, cid, depot, dist)
					delta := removalDelta + insertionDelta
					if delta < eps && (!found || delta < best.delta) {
						found = true
						best = relocateMove{fromR, fromPos, toR, toPos, delta}
					}
				}
			}
		}
	}

	return best, found
}

func removalCost(route []int, pos, depot int, dist distmatrix.Matrix) float64 {
	prev := depot
	if pos > 0 {
		prev = route[pos-1]
	}
	next := depot
	if pos < len(route)-1 {
		next = route[pos+1]
	}
	cid := route[pos]
	return dist.Get(prev, next) - dist.Get(prev, cid) - dist.Get(cid, next)
}

func insertionCost(route []int, pos, cid, depot int, dist distmatrix.Matrix) float64 {
	prev := depot
	if pos > 0 {
		prev = route[pos-1]
	}
	next := depot
	if pos < len(route) {
		next = route[pos]
	}
	return dist.Get(prev, cid) + dist.Get(cid, next) - dist.Get(prev, next)
}

// rebuildSolution re-evaluates every route's customer sequence from scratch
// and reassembles a Solution, carrying over the original's unassigned list.
func rebuildSolution(routes [][]int, original model.Solution, customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle) model.Solution {
	ev := evaluator.New(customers, dist, vehicle)
	out := model.NewSolution()

	for _, r := range routes {
		if len(r) == 0 {
			continue
		}
		built, _ := ev.BuildRoute(r)
		out.AddRoute(built)
	}

	for _, u := range original.Unassigned {
		out.AddUnassigned(u)
	}

	out.TotalCost = out.TotalDistance()
	return out
}
