// Package evaluator turns an ordered customer-id sequence into a timed
// Route plus any feasibility Violations, by simulating one vehicle leaving
// the depot at time 0 with load 0. It is the single place timing, load,
// and feasibility are computed; every constructive heuristic and local
// search operator that produces a Route goes through it.
package evaluator

import "github.com/katalvlaran/vrp/model"

// DistanceSource is the subset of distmatrix.Matrix the evaluator needs.
// Declared as an interface here (rather than importing distmatrix
// directly) so the evaluator has no dependency on how distances are
// stored — any source of pairwise distances, dense or otherwise, can
// drive it.
type DistanceSource interface {
	Get(i, j int) float64
}

// RouteEvaluator simulates routes for one vehicle template against a fixed
// customer list and distance source.
type RouteEvaluator struct {
	customers []model.Customer
	distances DistanceSource
	vehicle   model.Vehicle
}

// New returns a RouteEvaluator bound to customers, distances, and vehicle.
// customers must be indexable by customer id (customers[id]); index 0 must
// be the depot.
func New(customers []model.Customer, distances DistanceSource, vehicle model.Vehicle) RouteEvaluator {
	return RouteEvaluator{customers: customers, distances: distances, vehicle: vehicle}
}

// BuildRoute simulates a single vehicle visiting customerIDs in order,
// starting and ending at the depot. It never discards a route on
// infeasibility: violations are returned alongside the built route so the
// caller decides whether to accept, reject, or penalize.
func (e RouteEvaluator) BuildRoute(customerIDs []int) (model.Route, []model.Violation) {
	route := model.NewRoute(e.vehicle.ID)
	if len(customerIDs) == 0 {
		return route, nil
	}

	depot := e.vehicle.DepotID()
	var violations []model.Violation

	clock := 0.0
	load := 0
	prev := depot

	for _, cid := range customerIDs {
		c := e.customers[cid]
		travel := e.distances.Get(prev, cid)
		arrival := clock + travel

		var serviceStart float64
		if c.TimeWindow != nil {
			if c.TimeWindow.IsViolated(arrival) {
				violations = append(violations, model.Violation{
					Kind:       model.TimeWindowViolated,
					CustomerID: cid,
					Arrival:    arrival,
					Due:        c.TimeWindow.Due,
				})
				// Late arrivals are kept, not rejected: service starts at
				// arrival with no further waiting.
				serviceStart = arrival
			} else {
				serviceStart = arrival + c.TimeWindow.WaitingTime(arrival)
			}
		} else {
			serviceStart = arrival
		}

		departure := serviceStart + c.ServiceDuration
		load += c.Demand

		route.PushVisit(model.Visit{
			CustomerID: cid,
			Arrival:    arrival,
			Departure:  departure,
			LoadAfter:  load,
		})

		clock = departure
		prev = cid
	}

	returnTravel := e.distances.Get(prev, depot)
	route.TotalDistance = routeDistance(customerIDs, depot, e.distances)
	route.TotalDuration = clock + returnTravel

	if load > e.vehicle.Capacity {
		violations = append(violations, model.Violation{
			Kind:       model.CapacityExceeded,
			RouteIndex: 0,
			Load:       load,
			Capacity:   e.vehicle.Capacity,
		})
	}
	if e.vehicle.MaxDistance != nil && route.TotalDistance > *e.vehicle.MaxDistance {
		violations = append(violations, model.Violation{
			Kind:        model.MaxDistanceExceeded,
			RouteIndex:  0,
			Distance:    route.TotalDistance,
			MaxDistance: *e.vehicle.MaxDistance,
		})
	}
	if e.vehicle.MaxDuration != nil && route.TotalDuration > *e.vehicle.MaxDuration {
		violations = append(violations, model.Violation{
			Kind:        model.MaxDurationExceeded,
			RouteIndex:  0,
			Duration:    route.TotalDuration,
			MaxDuration: *e.vehicle.MaxDuration,
		})
	}

	return route, violations
}

// routeDistance returns the depot-closed travel distance of customerIDs:
// depot -> customerIDs[0] -> ... -> customerIDs[n-1] -> depot.
func routeDistance(customerIDs []int, depot int, d DistanceSource) float64 {
	if len(customerIDs) == 0 {
		return 0
	}
	dist := d.Get(depot, customerIDs[0])
	for i := 0; i < len(customerIDs)-1; i++ {
		dist += d.Get(customerIDs[i], customerIDs[i+1])
	}
	dist += d.Get(customerIDs[len(customerIDs)-1], depot)
	return dist
}

// EvaluateSolution applies BuildRoute to every route's customer-id
// sequence (discovered via r.CustomerIDs()), accumulates
// distance*CostPerDistance + FixedCost per route into the returned cost,
// and stamps the originating route index onto every route-scoped
// violation (TimeWindowViolated carries no route index and passes
// through unchanged).
func (e RouteEvaluator) EvaluateSolution(s model.Solution) (float64, []model.Violation) {
	var (
		totalCost  float64
		violations []model.Violation
	)
	for i, r := range s.Routes {
		built, vs := e.BuildRoute(r.CustomerIDs())
		totalCost += built.TotalDistance*e.vehicle.CostPerDist + e.vehicle.FixedCost
		for _, v := range vs {
			if v.Kind != model.TimeWindowViolated {
				v.RouteIndex = i
			}
			violations = append(violations, v)
		}
	}
	return totalCost, violations
}
