// Package model defines the shared routing data model — Customer,
// TimeWindow, Vehicle, Visit, Route, Solution, Violation — used by every
// other package in this module. Types here are immutable once constructed;
// operators never mutate a Customer, TimeWindow, or Vehicle in place.
package model

import (
	"errors"
	"math"
)

// Errors returned by TimeWindow and Customer construction.
var (
	// ErrInvalidTimeWindow is returned when ready > due, or either endpoint
	// is non-finite (NaN or +/-Inf).
	ErrInvalidTimeWindow = errors.New("model: ready must be <= due and both finite")
	// ErrNegativeDemand is returned when a customer's demand is negative.
	ErrNegativeDemand = errors.New("model: demand must be non-negative")
	// ErrNegativeServiceDuration is returned when service duration is negative.
	ErrNegativeServiceDuration = errors.New("model: service duration must be non-negative")
)

// DepotID is the reserved customer id for the depot. Every route starts and
// ends here; the depot itself is never a Visit.
const DepotID = 0

// TimeWindow is a closed interval [Ready, Due] within which a customer must
// be served. Both endpoints are finite and Ready <= Due.
type TimeWindow struct {
	Ready float64
	Due   float64
}

// NewTimeWindow validates and constructs a TimeWindow. Construction fails
// (returns the zero value and an error) if ready > due or either endpoint
// is not finite — no partially valid TimeWindow ever escapes this
// constructor.
func NewTimeWindow(ready, due float64) (TimeWindow, error) {
	if math.IsNaN(ready) || math.IsNaN(due) || math.IsInf(ready, 0) || math.IsInf(due, 0) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	if ready > due {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{Ready: ready, Due: due}, nil
}

// Contains reports whether t falls within [Ready, Due], inclusive.
func (w TimeWindow) Contains(t float64) bool {
	return w.Ready <= t && t <= w.Due
}

// WaitingTime returns the idle time a vehicle arriving at t must spend
// before service may start: max(0, Ready - t).
func (w TimeWindow) WaitingTime(arrival float64) float64 {
	if arrival < w.Ready {
		return w.Ready - arrival
	}
	return 0
}

// IsViolated reports whether an arrival at t is too late to be served
// within the window: t > Due.
func (w TimeWindow) IsViolated(arrival float64) bool {
	return arrival > w.Due
}

// Customer is an immutable location: the depot (id 0) or a customer to be
// served. Demand and ServiceDuration are zero for the depot.
type Customer struct {
	ID              int
	X, Y            float64
	Demand          int
	ServiceDuration float64
	// TimeWindow is nil when the customer has no time-window constraint.
	TimeWindow *TimeWindow
}

// NewCustomer constructs a Customer with no time window. Fails if demand
// or serviceDuration is negative.
func NewCustomer(id int, x, y float64, demand int, serviceDuration float64) (Customer, error) {
	if demand < 0 {
		return Customer{}, ErrNegativeDemand
	}
	if serviceDuration < 0 {
		return Customer{}, ErrNegativeServiceDuration
	}
	return Customer{ID: id, X: x, Y: y, Demand: demand, ServiceDuration: serviceDuration}, nil
}

// Depot constructs the depot customer: id 0, demand 0, service duration 0.
func Depot(x, y float64) Customer {
	// Demand and service duration are both 0 by construction; NewCustomer
	// cannot fail for these arguments.
	c, _ := NewCustomer(DepotID, x, y, 0, 0)
	return c
}

// WithTimeWindow returns a copy of c with the given time window attached.
func (c Customer) WithTimeWindow(w TimeWindow) Customer {
	c.TimeWindow = &w
	return c
}

// DistanceTo returns the Euclidean distance between c and o.
func (c Customer) DistanceTo(o Customer) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return math.Hypot(dx, dy)
}
