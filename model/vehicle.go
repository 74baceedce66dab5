package model

import "errors"

// ErrInvalidCapacity is returned when a vehicle is constructed with a
// non-positive capacity.
var ErrInvalidCapacity = errors.New("model: capacity must be positive")

// Vehicle is an immutable vehicle template. The fleet is homogeneous in
// capacity for the purposes of split/repair/relocate; heterogeneous cost
// fields are permitted and observed only by the evaluator's cost
// aggregation.
type Vehicle struct {
	ID           int
	Capacity     int
	DepotIDValue int
	CostPerDist  float64
	FixedCost    float64
	MaxDistance  *float64
	MaxDuration  *float64
}

// vehicleOptions holds the tunables applied by functional options passed
// to NewVehicle. Defaults mirror the reference implementation: depot 0,
// cost-per-distance 1, fixed cost 0, no max-distance/max-duration caps.
type vehicleOptions struct {
	depotID     int
	costPerDist float64
	fixedCost   float64
	maxDistance *float64
	maxDuration *float64
}

func defaultVehicleOptions() vehicleOptions {
	return vehicleOptions{
		depotID:     DepotID,
		costPerDist: 1.0,
		fixedCost:   0.0,
	}
}

// VehicleOption configures a Vehicle at construction time.
type VehicleOption func(*vehicleOptions)

// WithDepotID overrides the default depot id (0).
func WithDepotID(id int) VehicleOption {
	return func(o *vehicleOptions) { o.depotID = id }
}

// WithCostPerDistance overrides the default cost-per-distance (1.0).
func WithCostPerDistance(c float64) VehicleOption {
	return func(o *vehicleOptions) { o.costPerDist = c }
}

// WithFixedCost overrides the default fixed cost (0.0).
func WithFixedCost(c float64) VehicleOption {
	return func(o *vehicleOptions) { o.fixedCost = c }
}

// WithMaxDistance sets a positive cap on total route distance.
func WithMaxDistance(d float64) VehicleOption {
	return func(o *vehicleOptions) { o.maxDistance = &d }
}

// WithMaxDuration sets a positive cap on total route duration.
func WithMaxDuration(d float64) VehicleOption {
	return func(o *vehicleOptions) { o.maxDuration = &d }
}

// NewVehicle constructs a Vehicle with the given id and capacity, applying
// any supplied options over the documented defaults. Fails if capacity is
// not positive.
func NewVehicle(id, capacity int, opts ...VehicleOption) (Vehicle, error) {
	if capacity <= 0 {
		return Vehicle{}, ErrInvalidCapacity
	}
	o := defaultVehicleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Vehicle{
		ID:           id,
		Capacity:     capacity,
		DepotIDValue: o.depotID,
		CostPerDist:  o.costPerDist,
		FixedCost:    o.fixedCost,
		MaxDistance:  o.maxDistance,
		MaxDuration:  o.maxDuration,
	}, nil
}

// DepotID returns the id of the location this vehicle's routes start and
// end at.
func (v Vehicle) DepotID() int { return v.DepotIDValue }
