package boundarylayer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowToThickness(t *testing.T) {
	var (
		deltaS = 3.753e-5
		target = 0.01825
		g      = 1.2
	)
	growths, err := GrowToThickness([]float64{deltaS}, target, g)
	assert.NoError(t, err)
	assert.Len(t, growths, 1)

	seq := growths[0].Layers
	assert.GreaterOrEqual(t, len(seq), 2)
	assert.Equal(t, 0., seq[0])
	assert.Equal(t, deltaS, seq[1])
	// Geometric growth after the first two entries, strictly increasing
	for i := 2; i < len(seq); i++ {
		assert.InEpsilon(t, seq[i-1]*g, seq[i], 1.e-12)
		assert.Greater(t, seq[i], seq[i-1])
	}
	// Stopping condition is tight: the full sum clears the target, the sum
	// without the last layer does not
	assert.GreaterOrEqual(t, seq.Total(), target)
	assert.Less(t, seq.Total()-seq.FinalIncrement(), target)
	assert.Equal(t, seq.FinalIncrement(), growths[0].FinalIncrement)
}

func TestGrowToThicknessFirstLayerExceedsTarget(t *testing.T) {
	growths, err := GrowToThickness([]float64{0.02}, 0.015, 1.2)
	assert.NoError(t, err)
	assert.Equal(t, LayerSequence{0, 0.02}, growths[0].Layers)
	assert.Equal(t, 0.02, growths[0].FinalIncrement)
}

func TestGrowToThicknessBatchIndependence(t *testing.T) {
	var (
		deltaS = []float64{5.e-6, 4.e-5, 2.5e-4}
		target = 0.015
	)
	batch, err := GrowToThickness(deltaS, target, 1.2)
	assert.NoError(t, err)
	assert.Len(t, batch, 3)
	for i, ds := range deltaS {
		single, sErr := GrowToThickness([]float64{ds}, target, 1.2)
		assert.NoError(t, sErr)
		assert.Equal(t, single[0], batch[i])
	}
}

func TestGrowToThicknessInvalidInput(t *testing.T) {
	_, err := GrowToThickness([]float64{1.e-4}, 0.015, 1.0)
	assert.True(t, errors.Is(err, ErrInvalidPhysicalInput))
	_, err = GrowToThickness([]float64{-1.e-4}, 0.015, 1.2)
	assert.True(t, errors.Is(err, ErrInvalidPhysicalInput))
	_, err = GrowToThickness([]float64{1.e-4}, 0, 1.2)
	assert.True(t, errors.Is(err, ErrInvalidPhysicalInput))
}

func TestGrowToLayerCount(t *testing.T) {
	results, err := GrowToLayerCount([]float64{2.5e-4}, 0.015, 30, 1.2, 0.1)
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	r := results[0]
	assert.InDelta(t, 1.048, r.GrowthFactor, 1.e-3)
	assert.Equal(t, 30, r.LayerCount)
	// Layer count includes the zero sentinel and the seeded first layer
	assert.Len(t, r.Layers, 30)
	assert.Equal(t, 0., r.Layers[0])
	assert.Equal(t, 2.5e-4, r.Layers[1])
	assert.GreaterOrEqual(t, r.Layers.Total(), 0.015)
}

func TestGrowToLayerCountBatch(t *testing.T) {
	results, err := GrowToLayerCount([]float64{5.e-6, 4.e-5, 2.5e-4}, 0.015, 30, 1.3, 0.1)
	assert.NoError(t, err)
	assert.Len(t, results, 3)
	for _, r := range results {
		assert.Len(t, r.Layers, 30)
		assert.Greater(t, r.GrowthFactor, 1.)
	}
	// Thinner first layers need faster growth to land on the same count
	assert.Greater(t, results[0].GrowthFactor, results[1].GrowthFactor)
	assert.Greater(t, results[1].GrowthFactor, results[2].GrowthFactor)
}

func TestGrowToLayerCountNonConvergent(t *testing.T) {
	// A first layer nearly as thick as the target can never produce 30
	// layers, whatever the growth factor
	_, err := GrowToLayerCount([]float64{0.014}, 0.015, 30, 1.3, 0.1)
	assert.True(t, errors.Is(err, ErrGrowthSearchDidNotConverge))
}

func TestGrowToLayerCountInvalidInput(t *testing.T) {
	_, err := GrowToLayerCount([]float64{2.5e-4}, 0.015, 2, 1.3, 0.1)
	assert.True(t, errors.Is(err, ErrInvalidPhysicalInput))
	_, err = GrowToLayerCount([]float64{2.5e-4}, 0.015, 30, -1.3, 0.1)
	assert.True(t, errors.Is(err, ErrInvalidPhysicalInput))
}
