package alns_test

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/katalvlaran/vrp/alns"
	"github.com/katalvlaran/vrp/rng"
	"github.com/stretchr/testify/assert"
)

func TestRun_BasicConverges(t *testing.T) {
	t.Parallel()

	customers, dm := lineSetup(t)
	problem := alns.NewRoutingALNSProblem(customers, dm, 30)
	destroyOps := []alns.DestroyOperator{alns.RandomRemoval{}}
	repairOps := []alns.RepairOperator{alns.GreedyInsertion{Distances: dm, Customers: customers, Capacity: 30}}
	opts := alns.NewOptions(alns.WithMaxIterations(200), alns.WithSeed(42))

	result := alns.Run(context.Background(), problem, destroyOps, repairOps, opts, rng.New(42), io.Discard)
	assert.Less(t, result.BestCost, math.Inf(1))
	assert.Empty(t, result.Best.Unassigned)
}

func TestRun_WorstRemoval(t *testing.T) {
	t.Parallel()

	customers, dm := lineSetup(t)
	problem := alns.NewRoutingALNSProblem(customers, dm, 30)
	destroyOps := []alns.DestroyOperator{alns.WorstRemoval{Distances: dm}}
	repairOps := []alns.RepairOperator{alns.GreedyInsertion{Distances: dm, Customers: customers, Capacity: 30}}
	opts := alns.NewOptions(alns.WithMaxIterations(200), alns.WithSeed(42))

	result := alns.Run(context.Background(), problem, destroyOps, repairOps, opts, rng.New(42), io.Discard)
	assert.Less(t, result.BestCost, math.Inf(1))
	assert.Empty(t, result.Best.Unassigned)
}

func TestRun_ShawAndRegret(t *testing.T) {
	t.Parallel()

	customers, dm := lineSetup(t)
	problem := alns.NewRoutingALNSProblem(customers, dm, 30)
	destroyOps := []alns.DestroyOperator{alns.ShawRemoval{Distances: dm, Customers: customers}}
	repairOps := []alns.RepairOperator{alns.RegretInsertion{Distances: dm, Customers: customers, Capacity: 30}}
	opts := alns.NewOptions(alns.WithMaxIterations(200), alns.WithSeed(42))

	result := alns.Run(context.Background(), problem, destroyOps, repairOps, opts, rng.New(42), io.Discard)
	assert.Less(t, result.BestCost, math.Inf(1))
	assert.Empty(t, result.Best.Unassigned)
}

func TestRun_StopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	customers, dm := lineSetup(t)
	problem := alns.NewRoutingALNSProblem(customers, dm, 30)
	destroyOps := []alns.DestroyOperator{alns.RandomRemoval{}}
	repairOps := []alns.RepairOperator{alns.GreedyInsertion{Distances: dm, Customers: customers, Capacity: 30}}
	opts := alns.NewOptions(alns.WithMaxIterations(100000), alns.WithSeed(42))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := alns.Run(ctx, problem, destroyOps, repairOps, opts, rng.New(42), io.Discard)
	assert.GreaterOrEqual(t, result.BestCost, 0.0)
}
