package alns

import (
	"math"

	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/model"
	"github.com/katalvlaran/vrp/rng"
)

// DestroyOperator removes a degree-controlled fraction of assigned
// customers from a solution, returning a new solution with them moved to
// Unassigned. Implementations must be deterministic given the same
// solution, degree, and RNG state.
type DestroyOperator interface {
	Name() string
	Destroy(sol Solution, degree float64, r rng.Source) Solution
}

func numToRemove(sol Solution, degree float64) int {
	total := 0
	for _, route := range sol.Routes {
		total += len(route)
	}
	n := int(float64(total)*degree + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

func totalAssigned(sol Solution) int {
	total := 0
	for _, route := range sol.Routes {
		total += len(route)
	}
	return total
}

// RandomRemoval removes uniformly random assigned customers.
type RandomRemoval struct{}

func (RandomRemoval) Name() string { return "random_removal" }

func (RandomRemoval) Destroy(sol Solution, degree float64, r rng.Source) Solution {
	out := sol.Clone()
	numRemove := numToRemove(out, degree)

	for i := 0; i < numRemove; i++ {
		assigned := totalAssigned(out)
		if assigned == 0 {
			break
		}

		target := r.IntN(assigned)
		count := 0
		removed := false
		for ri, route := range out.Routes {
			if count+len(route) > target {
				pos := target - count
				cid := route[pos]
				out.Routes[ri] = append(route[:pos], route[pos+1:]...)
				out.Unassigned = append(out.Unassigned, cid)
				removed = true
				break
			}
			count += len(route)
		}
		if !removed {
			break
		}
	}

	out.RemoveEmptyRoutes()
	return out
}

// WorstRemoval removes the assigned customers whose removal yields the
// largest distance saving, with small uniform noise for tie-breaking.
type WorstRemoval struct {
	Distances distmatrix.Matrix
}

func (WorstRemoval) Name() string { return "worst_removal" }

func (w WorstRemoval) removalSaving(route []int, pos int) float64 {
	const depot = model.DepotID
	cid := route[pos]
	prev := depot
	if pos > 0 {
		prev = route[pos-1]
	}
	next := depot
	if pos < len(route)-1 {
		next = route[pos+1]
	}
	return w.Distances.Get(prev, cid) + w.Distances.Get(cid, next) - w.Distances.Get(prev, next)
}

func (w WorstRemoval) Destroy(sol Solution, degree float64, r rng.Source) Solution {
	out := sol.Clone()
	numRemove := numToRemove(out, degree)

	for i := 0; i < numRemove; i++ {
		bestSaving := math.Inf(-1)
		bestRoute, bestPos := 0, 0
		found := false

		for ri, route := range out.Routes {
			for pos := range route {
				saving := w.removalSaving(route, pos) + r.Float64()*0.01
				if saving > bestSaving {
					bestSaving = saving
					bestRoute = ri
					bestPos = pos
					found = true
				}
			}
		}

		if !found {
			break
		}

		cid := out.Routes[bestRoute][bestPos]
		out.Routes[bestRoute] = append(out.Routes[bestRoute][:bestPos], out.Routes[bestRoute][bestPos+1:]...)
		out.Unassigned = append(out.Unassigned, cid)
	}

	out.RemoveEmptyRoutes()
	return out
}

// ShawRemoval removes a random seed customer, then repeatedly removes the
// still-assigned customer most related (Shaw 1998) to any already-removed
// customer, where relatedness combines proximity and demand similarity.
type ShawRemoval struct {
	Distances distmatrix.Matrix
	Customers []model.Customer
}

func (ShawRemoval) Name() string { return "shaw_removal" }

func (s ShawRemoval) relatedness(a, b int) float64 {
	dist := s.Distances.Get(a, b)
	demandDiff := absInt(s.Customers[a].Demand - s.Customers[b].Demand)
	return 1.0/(dist+0.1) + 1.0/(float64(demandDiff)+1.0)
}

func (s ShawRemoval) Destroy(sol Solution, degree float64, r rng.Source) Solution {
	out := sol.Clone()
	total := totalAssigned(out)
	if total == 0 {
		return out
	}
	numRemove := numToRemove(out, degree)

	var assigned []int
	for _, route := range out.Routes {
		assigned = append(assigned, route...)
	}

	seedIdx := r.IntN(len(assigned))
	seed := assigned[seedIdx]
	assigned = append(assigned[:seedIdx], assigned[seedIdx+1:]...)

	removed := []int{seed}
	removeCustomer(&out, seed)

	for i := 1; i < numRemove; i++ {
		if len(assigned) == 0 {
			break
		}

		bestRelatedness := math.Inf(-1)
		bestIdx := 0
		for idx, cid := range assigned {
			maxRel := math.Inf(-1)
			for _, removedID := range removed {
				if rel := s.relatedness(removedID, cid); rel > maxRel {
					maxRel = rel
				}
			}
			if maxRel > bestRelatedness {
				bestRelatedness = maxRel
				bestIdx = idx
			}
		}

		next := assigned[bestIdx]
		assigned = append(assigned[:bestIdx], assigned[bestIdx+1:]...)
		removed = append(removed, next)
		removeCustomer(&out, next)
	}

	out.Unassigned = append(out.Unassigned, removed...)
	out.RemoveEmptyRoutes()
	return out
}

func removeCustomer(sol *Solution, customerID int) {
	for ri, route := range sol.Routes {
		for pos, cid := range route {
			if cid == customerID {
				sol.Routes[ri] = append(route[:pos], route[pos+1:]...)
				return
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

