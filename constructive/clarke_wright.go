package constructive

import (
	"sort"

	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/evaluator"
	"github.com/katalvlaran/vrp/model"
)

// saving is a candidate merge of two singleton-derived routes via
// customers i and j, with value s(i,j) = d(0,i) + d(0,j) - d(i,j).
type saving struct {
	i, j  int
	value float64
}

// ClarkeWright builds a solution with the savings algorithm: start from n
// singleton routes, one per customer; repeatedly merge the pair of routes
// whose endpoints yield the largest positive savings, provided doing so
// respects capacity and the routes in question actually have i/j as
// endpoints. O(n^2 log n), dominated by the sort.
func ClarkeWright(customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle) model.Solution {
	n := len(customers)
	sol := model.NewSolution()
	if n <= 1 {
		return sol
	}

	depot := vehicle.DepotID()

	var savings []saving
	for i := 1; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := dist.Get(depot, i) + dist.Get(depot, j) - dist.Get(i, j)
			if s > 0 {
				savings = append(savings, saving{i: i, j: j, value: s})
			}
		}
	}
	sort.SliceStable(savings, func(a, b int) bool { return savings[a].value > savings[b].value })

	routeOf := make(map[int]int, n-1) // customer -> route id
	routeLoad := make(map[int]int)
	routeMembers := make(map[int][]int)
	nextRouteID := 0

	for c := 1; c < n; c++ {
		if customers[c].Demand > vehicle.Capacity {
			continue // handled as unassigned below
		}
		rid := nextRouteID
		nextRouteID++
		routeOf[c] = rid
		routeLoad[rid] = customers[c].Demand
		routeMembers[rid] = []int{c}
	}

	for _, s := range savings {
		ri, iok := routeOf[s.i]
		rj, jok := routeOf[s.j]
		if !iok || !jok || ri == rj {
			continue
		}
		if routeLoad[ri]+routeLoad[rj] > vehicle.Capacity {
			continue
		}

		mi := routeMembers[ri]
		mj := routeMembers[rj]
		iAtEnd := mi[len(mi)-1] == s.i
		iAtStart := mi[0] == s.i
		jAtStart := mj[0] == s.j
		jAtEnd := mj[len(mj)-1] == s.j

		var merged []int
		switch {
		case iAtEnd && jAtStart:
			merged = append(append([]int{}, mi...), mj...)
		case jAtEnd && iAtStart:
			merged = append(append([]int{}, mj...), mi...)
		case iAtEnd && jAtEnd:
			rev := reversed(mj)
			merged = append(append([]int{}, mi...), rev...)
		case iAtStart && jAtStart:
			rev := reversed(mi)
			merged = append(append([]int{}, rev...), mj...)
		default:
			continue
		}

		newLoad := routeLoad[ri] + routeLoad[rj]
		delete(routeMembers, rj)
		delete(routeLoad, rj)
		routeMembers[ri] = merged
		routeLoad[ri] = newLoad
		for _, c := range merged {
			routeOf[c] = ri
		}
	}

	ev := evaluator.New(customers, dist, vehicle)
	for _, members := range routeMembers {
		if len(members) == 0 {
			continue
		}
		built, _ := ev.BuildRoute(members)
		sol.AddRoute(built)
	}

	for c := 1; c < n; c++ {
		if _, ok := routeOf[c]; !ok {
			sol.AddUnassigned(c)
		}
	}

	sol.TotalCost = sol.TotalDistance()
	return sol
}

func reversed(a []int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}
