package model

import "github.com/google/uuid"

// Visit is a single stop on a route: arrival, departure, and cumulative
// load after service. Produced by the evaluator; never mutated afterward.
type Visit struct {
	CustomerID int
	Arrival    float64
	Departure  float64
	LoadAfter  int
}

// Route is an ordered, depot-to-depot sequence of visits assigned to one
// vehicle. Built exclusively by the evaluator; treated as read-only by
// every consumer.
type Route struct {
	ID            uuid.UUID
	VehicleID     int
	Visits        []Visit
	TotalDistance float64
	TotalDuration float64
	TotalLoad     int
}

// NewRoute returns an empty route owned by vehicleID.
func NewRoute(vehicleID int) Route {
	return Route{ID: uuid.New(), VehicleID: vehicleID}
}

// PushVisit appends v to the route and updates TotalLoad to v.LoadAfter,
// matching the reference accumulation rule (load-after-service is always
// the running total, never a delta).
func (r *Route) PushVisit(v Visit) {
	r.Visits = append(r.Visits, v)
	r.TotalLoad = v.LoadAfter
}

// CustomerIDs returns the ordered customer ids visited by this route,
// excluding the implicit depot endpoints.
func (r Route) CustomerIDs() []int {
	ids := make([]int, len(r.Visits))
	for i, v := range r.Visits {
		ids[i] = v.CustomerID
	}
	return ids
}

// Len returns the number of customers served by this route.
func (r Route) Len() int { return len(r.Visits) }
