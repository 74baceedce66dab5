// Package alns implements adaptive large neighborhood search over a
// lightweight VRP solution representation: plain customer-id route slices
// plus an unassigned list, mutated directly by destroy and repair
// operators without rebuilding full model.Route objects on every move.
package alns

import (
	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/model"
)

// Solution is the ALNS working representation: routes as customer-id
// sequences, a separate unassigned list, and a cached total distance kept
// in sync by Recalculate.
type Solution struct {
	Routes        [][]int
	Unassigned    []int
	TotalDistance float64
}

// NewSolution builds a Solution from route sequences and an unassigned
// list, computing its total distance immediately.
func NewSolution(routes [][]int, unassigned []int, dist distmatrix.Matrix) Solution {
	s := Solution{Routes: routes, Unassigned: unassigned}
	s.Recalculate(dist)
	return s
}

// NumRoutes returns the number of (possibly empty) route slices held.
func (s Solution) NumRoutes() int { return len(s.Routes) }

// Clone returns a deep copy safe to mutate independently.
func (s Solution) Clone() Solution {
	routes := make([][]int, len(s.Routes))
	for i, r := range s.Routes {
		routes[i] = append([]int(nil), r...)
	}
	return Solution{
		Routes:        routes,
		Unassigned:    append([]int(nil), s.Unassigned...),
		TotalDistance: s.TotalDistance,
	}
}

// Recalculate recomputes TotalDistance from the current Routes.
func (s *Solution) Recalculate(dist distmatrix.Matrix) {
	s.TotalDistance = computeTotalDistance(s.Routes, dist)
}

// RemoveEmptyRoutes drops any zero-length route slices.
func (s *Solution) RemoveEmptyRoutes() {
	out := s.Routes[:0]
	for _, r := range s.Routes {
		if len(r) > 0 {
			out = append(out, r)
		}
	}
	s.Routes = out
}

func computeTotalDistance(routes [][]int, dist distmatrix.Matrix) float64 {
	const depot = model.DepotID
	total := 0.0
	for _, route := range routes {
		if len(route) == 0 {
			continue
		}
		total += dist.Get(depot, route[0])
		for i := 0; i+1 < len(route); i++ {
			total += dist.Get(route[i], route[i+1])
		}
		total += dist.Get(route[len(route)-1], depot)
	}
	return total
}
