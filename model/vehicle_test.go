package model_test

import (
	"testing"

	"github.com/katalvlaran/vrp/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle_Defaults(t *testing.T) {
	t.Parallel()

	v, err := model.NewVehicle(0, 100)
	require.NoError(t, err)
	assert.Equal(t, model.DepotID, v.DepotID())
	assert.Equal(t, 1.0, v.CostPerDist)
	assert.Equal(t, 0.0, v.FixedCost)
	assert.Nil(t, v.MaxDistance)
	assert.Nil(t, v.MaxDuration)
}

func TestNewVehicle_RejectsNonPositiveCapacity(t *testing.T) {
	t.Parallel()

	_, err := model.NewVehicle(0, 0)
	assert.ErrorIs(t, err, model.ErrInvalidCapacity)

	_, err = model.NewVehicle(0, -5)
	assert.ErrorIs(t, err, model.ErrInvalidCapacity)
}

func TestNewVehicle_Options(t *testing.T) {
	t.Parallel()

	v, err := model.NewVehicle(1, 50,
		model.WithDepotID(3),
		model.WithCostPerDistance(2.5),
		model.WithFixedCost(10),
		model.WithMaxDistance(500),
		model.WithMaxDuration(600),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, v.DepotID())
	assert.Equal(t, 2.5, v.CostPerDist)
	assert.Equal(t, 10.0, v.FixedCost)
	require.NotNil(t, v.MaxDistance)
	assert.Equal(t, 500.0, *v.MaxDistance)
	require.NotNil(t, v.MaxDuration)
	assert.Equal(t, 600.0, *v.MaxDuration)
}
