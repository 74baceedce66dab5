package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
)

// ViolationKind tags the variant carried by a Violation.
type ViolationKind int

const (
	// CapacityExceeded: a route's total load exceeds its vehicle's capacity.
	CapacityExceeded ViolationKind = iota
	// TimeWindowViolated: a customer was served after its window's Due.
	TimeWindowViolated
	// MaxDistanceExceeded: a route's total distance exceeds its vehicle's cap.
	MaxDistanceExceeded
	// MaxDurationExceeded: a route's total duration exceeds its vehicle's cap.
	MaxDurationExceeded
)

// String returns the Go-style name of the kind (e.g. "CapacityExceeded").
func (k ViolationKind) String() string {
	switch k {
	case CapacityExceeded:
		return "CapacityExceeded"
	case TimeWindowViolated:
		return "TimeWindowViolated"
	case MaxDistanceExceeded:
		return "MaxDistanceExceeded"
	case MaxDurationExceeded:
		return "MaxDurationExceeded"
	default:
		return "Unknown"
	}
}

// Violation is a tagged, feasibility-related event emitted by the
// evaluator. Violations are never raised as errors — a route carrying one
// is still returned to the caller, who decides whether to reject it or
// apply a soft penalty.
type Violation struct {
	Kind ViolationKind

	// RouteIndex is set for route-scoped kinds (CapacityExceeded,
	// MaxDistanceExceeded, MaxDurationExceeded). TimeWindowViolated has no
	// route index in the reference model and leaves this at its zero value.
	RouteIndex int

	// CustomerID is set for TimeWindowViolated.
	CustomerID int

	// Load/Capacity are set for CapacityExceeded.
	Load     int
	Capacity int

	// Arrival/Due are set for TimeWindowViolated.
	Arrival float64
	Due     float64

	// Distance/MaxDistance are set for MaxDistanceExceeded.
	Distance    float64
	MaxDistance float64

	// Duration/MaxDuration are set for MaxDurationExceeded.
	Duration    float64
	MaxDuration float64
}

// Code returns a stable, lower_snake_case tag for the violation's kind,
// suitable for logging or serialization without a type switch.
func (v Violation) Code() string {
	return strcase.ToSnake(v.Kind.String())
}

// Error implements the error interface so a Violation can be returned or
// wrapped wherever a caller treats feasibility problems as errors, without
// forcing every evaluator caller to do so.
func (v Violation) Error() string {
	switch v.Kind {
	case CapacityExceeded:
		return fmt.Sprintf("%s: route %d load %d exceeds capacity %d", v.Code(), v.RouteIndex, v.Load, v.Capacity)
	case TimeWindowViolated:
		return fmt.Sprintf("%s: customer %d arrival %.6f exceeds due %.6f", v.Code(), v.CustomerID, v.Arrival, v.Due)
	case MaxDistanceExceeded:
		return fmt.Sprintf("%s: route %d distance %.6f exceeds max %.6f", v.Code(), v.RouteIndex, v.Distance, v.MaxDistance)
	case MaxDurationExceeded:
		return fmt.Sprintf("%s: route %d duration %.6f exceeds max %.6f", v.Code(), v.RouteIndex, v.Duration, v.MaxDuration)
	default:
		return v.Code()
	}
}

// Solution owns a set of routes and the customers that could not be
// placed in any of them. The union of served and unassigned customer ids
// is the invariant every feasibility-preserving operator must maintain.
type Solution struct {
	ID         uuid.UUID
	Routes     []Route
	Unassigned []int
	TotalCost  float64
}

// NewSolution returns an empty solution.
func NewSolution() Solution {
	return Solution{ID: uuid.New()}
}

// AddRoute appends r to the solution.
func (s *Solution) AddRoute(r Route) { s.Routes = append(s.Routes, r) }

// AddUnassigned appends customerID to the unassigned list.
func (s *Solution) AddUnassigned(customerID int) {
	s.Unassigned = append(s.Unassigned, customerID)
}

// NumRoutes returns the number of non-empty routes in the solution.
func (s Solution) NumRoutes() int { return len(s.Routes) }

// NumUnassigned returns the number of customers not placed in any route.
func (s Solution) NumUnassigned() int { return len(s.Unassigned) }

// NumServed returns the total number of customers placed across all routes.
func (s Solution) NumServed() int {
	n := 0
	for _, r := range s.Routes {
		n += r.Len()
	}
	return n
}

// TotalDistance returns the sum of TotalDistance across all routes.
func (s Solution) TotalDistance() float64 {
	d := 0.0
	for _, r := range s.Routes {
		d += r.TotalDistance
	}
	return d
}

// IsFeasible reports whether every customer is served (no unassigned) and
// no violations were recorded against this solution by the evaluator. It
// does not itself recompute violations: callers pass the violation slice
// returned alongside this solution by the evaluator.
func (s Solution) IsFeasible(violations []Violation) bool {
	return len(violations) == 0 && len(s.Unassigned) == 0
}
