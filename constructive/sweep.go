package constructive

import (
	"math"
	"sort"

	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/evaluator"
	"github.com/katalvlaran/vrp/model"
)

// angleEntry pairs a customer id with its polar angle relative to the
// depot.
type angleEntry struct {
	id    int
	angle float64
}

// Sweep builds a solution by sorting customers by polar angle from the
// depot and packing them into routes in that order, opening a new route
// whenever the next customer would exceed remaining capacity. Customers
// whose demand alone exceeds the vehicle's capacity are unassigned. A
// customer coincident with the depot's coordinates resolves to angle 0
// (math.Atan2(0,0) == 0 in Go) and is sorted like any other zero-angle
// customer; such input is not otherwise expected to occur. O(n log n).
func Sweep(customers []model.Customer, dist distmatrix.Matrix, vehicle model.Vehicle) model.Solution {
	n := len(customers)
	sol := model.NewSolution()
	if n <= 1 {
		return sol
	}

	depot := customers[vehicle.DepotID()]

	entries := make([]angleEntry, 0, n-1)
	for i := 1; i < n; i++ {
		dx := customers[i].X - depot.X
		dy := customers[i].Y - depot.Y
		entries = append(entries, angleEntry{id: i, angle: math.Atan2(dy, dx)})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].angle < entries[b].angle })

	ev := evaluator.New(customers, dist, vehicle)
	var current []int
	load := 0

	flush := func() {
		if len(current) > 0 {
			built, _ := ev.BuildRoute(current)
			sol.AddRoute(built)
			current = nil
			load = 0
		}
	}

	for _, e := range entries {
		demand := customers[e.id].Demand
		if load+demand > vehicle.Capacity && len(current) > 0 {
			flush()
		}
		if demand <= vehicle.Capacity {
			current = append(current, e.id)
			load += demand
		} else {
			sol.AddUnassigned(e.id)
		}
	}
	flush()

	sol.TotalCost = sol.TotalDistance()
	return sol
}
