package alns

import (
	"math"

	"github.com/katalvlaran/vrp/distmatrix"
	"github.com/katalvlaran/vrp/model"
	"github.com/katalvlaran/vrp/rng"
)

// RepairOperator reinserts a solution's Unassigned customers back into
// Routes. Implementations must place every customer, creating new routes
// when no feasible insertion exists.
type RepairOperator interface {
	Name() string
	Repair(sol Solution, r rng.Source) Solution
}

// insertionCost finds the cheapest feasible (route, position) for customerID
// in routes, honoring capacity only. ok is false when no route has room.
func insertionCost(routes [][]int, customerID int, distances distmatrix.Matrix, customers []model.Customer, capacity int) (route, pos int, cost float64, ok bool) {
	const depot = model.DepotID
	demand := customers[customerID].Demand
	cost = math.Inf(1)

	for ri, r := range routes {
		load := 0
		for _, cid := range r {
			load += customers[cid].Demand
		}
		if load+demand > capacity {
			continue
		}

		for p := 0; p <= len(r); p++ {
			prev := depot
			if p > 0 {
				prev = r[p-1]
			}
			next := depot
			if p < len(r) {
				next = r[p]
			}
			c := distances.Get(prev, customerID) + distances.Get(customerID, next) - distances.Get(prev, next)
			if c < cost {
				cost = c
				route = ri
				pos = p
				ok = true
			}
		}
	}

	return route, pos, cost, ok
}

// sortedInsertionCosts returns every feasible (route, position, cost) triple
// for customerID across routes, ascending by cost. A route contributes at
// most one entry: its own cheapest position.
func sortedInsertionCosts(routes [][]int, customerID int, distances distmatrix.Matrix, customers []model.Customer, capacity int) []insertionOption {
	const depot = model.DepotID
	demand := customers[customerID].Demand
	var options []insertionOption

	for ri, r := range routes {
		load := 0
		for _, cid := range r {
			load += customers[cid].Demand
		}
		if load+demand > capacity {
			continue
		}

		bestPos, bestCost := 0, math.Inf(1)
		for p := 0; p <= len(r); p++ {
			prev := depot
			if p > 0 {
				prev = r[p-1]
			}
			next := depot
			if p < len(r) {
				next = r[p]
			}
			c := distances.Get(prev, customerID) + distances.Get(customerID, next) - distances.Get(prev, next)
			if c < bestCost {
				bestCost = c
				bestPos = p
			}
		}
		options = append(options, insertionOption{route: ri, pos: bestPos, cost: bestCost})
	}

	for i := 1; i < len(options); i++ {
		for j := i; j > 0 && options[j].cost < options[j-1].cost; j-- {
			options[j], options[j-1] = options[j-1], options[j]
		}
	}
	return options
}

type insertionOption struct {
	route, pos int
	cost       float64
}

// GreedyInsertion repeatedly inserts the unassigned customer with the
// cheapest feasible insertion cost across all routes, creating a new
// singleton route for any customer with no feasible insertion. Only
// capacity is enforced; time windows are not checked during repair.
type GreedyInsertion struct {
	Distances distmatrix.Matrix
	Customers []model.Customer
	Capacity  int
}

func (GreedyInsertion) Name() string { return "greedy_insertion" }

func (g GreedyInsertion) Repair(sol Solution, _ rng.Source) Solution {
	out := sol.Clone()
	unassigned := out.Unassigned
	out.Unassigned = nil

	for len(unassigned) > 0 {
		bestIdx := -1
		bestRoute, bestPos := 0, 0
		bestCost := math.Inf(1)

		for ui, cid := range unassigned {
			route, pos, cost, ok := insertionCost(out.Routes, cid, g.Distances, g.Customers, g.Capacity)
			if ok && cost < bestCost {
				bestCost = cost
				bestIdx = ui
				bestRoute = route
				bestPos = pos
			}
		}

		if bestIdx < 0 {
			cid := unassigned[0]
			unassigned = unassigned[1:]
			out.Routes = append(out.Routes, []int{cid})
			continue
		}

		cid := unassigned[bestIdx]
		unassigned = append(unassigned[:bestIdx], unassigned[bestIdx+1:]...)
		r := out.Routes[bestRoute]
		r = append(r, 0)
		copy(r[bestPos+1:], r[bestPos:])
		r[bestPos] = cid
		out.Routes[bestRoute] = r
	}

	out.Recalculate(g.Distances)
	return out
}

// RegretInsertion inserts unassigned customers in order of how costly it
// would be to defer each one, using a regret-k measure (Ropke & Pisinger
// 2006): the sum, over a customer's best k-1 alternative insertion costs
// beyond its cheapest, of the gap to that cheapest cost. Customers with
// fewer than k feasible routes are always inserted before customers with k
// or more, since their regret is not comparable on the same scale; within
// that constrained group the customer with the fewest alternatives (and,
// among ties, the cheapest insertion) goes first. K defaults to 2.
type RegretInsertion struct {
	Distances distmatrix.Matrix
	Customers []model.Customer
	Capacity  int
	K         int
}

// WithK returns a copy of r with K set to k (floored at 2).
func (r RegretInsertion) WithK(k int) RegretInsertion {
	if k < 2 {
		k = 2
	}
	r.K = k
	return r
}

func (RegretInsertion) Name() string { return "regret_insertion" }

func (rep RegretInsertion) Repair(sol Solution, _ rng.Source) Solution {
	k := rep.K
	if k < 2 {
		k = 2
	}

	out := sol.Clone()
	unassigned := out.Unassigned
	out.Unassigned = nil

	for len(unassigned) > 0 {
		var best *insertionCandidate

		for ui, cid := range unassigned {
			options := sortedInsertionCosts(out.Routes, cid, rep.Distances, rep.Customers, rep.Capacity)
			if len(options) == 0 {
				continue
			}

			bestCost := options[0].cost
			regret := 0.0
			for i := 1; i < k && i < len(options); i++ {
				regret += options[i].cost - bestCost
			}

			cand := insertionCandidate{
				unassignedIdx: ui,
				route:         options[0].route,
				pos:           options[0].pos,
				bestCost:      bestCost,
				regret:        regret,
				available:     len(options),
			}

			if best == nil || candidateOutranks(cand, *best, k) {
				best = &cand
			}
		}

		if best == nil {
			cid := unassigned[0]
			unassigned = unassigned[1:]
			out.Routes = append(out.Routes, []int{cid})
			continue
		}

		cid := unassigned[best.unassignedIdx]
		unassigned = append(unassigned[:best.unassignedIdx], unassigned[best.unassignedIdx+1:]...)
		r := out.Routes[best.route]
		r = append(r, 0)
		copy(r[best.pos+1:], r[best.pos:])
		r[best.pos] = cid
		out.Routes[best.route] = r
	}

	out.Recalculate(rep.Distances)
	return out
}

type insertionCandidate struct {
	unassignedIdx int
	route, pos    int
	bestCost      float64
	regret        float64
	available     int
}

// candidateOutranks reports whether a should be inserted before b.
// Customers with fewer than k feasible routes always outrank customers
// with k or more, since a low alternative count is a harder constraint
// than any regret value computed from it. Within that constrained group,
// fewer alternatives wins, then cheaper best cost; within the unconstrained
// group, higher regret wins, then cheaper best cost.
func candidateOutranks(a, b insertionCandidate, k int) bool {
	aConstrained := a.available < k
	bConstrained := b.available < k
	if aConstrained != bConstrained {
		return aConstrained
	}
	if aConstrained {
		if a.available != b.available {
			return a.available < b.available
		}
		return a.bestCost < b.bestCost
	}
	if a.regret != b.regret {
		return a.regret > b.regret
	}
	return a.bestCost < b.bestCost
}
