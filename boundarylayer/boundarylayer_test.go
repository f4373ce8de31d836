package boundarylayer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mscotty/cfdmesh/fluidmech"
)

// Sea level conditions pinned by the reference data
const (
	seaRho = 1.225
	seaMu  = 1.7894e-5
)

func TestFirstLayerThickness(t *testing.T) {
	// Degenerate self-referential case pinning the formula: uFric = sqrt(mu/rho)
	uFric := fluidmech.FrictionVelocity(seaRho, seaMu)
	assert.InDelta(t, 0.003822, FirstLayerThickness(seaRho, seaMu, uFric, 1.0), 1.e-6)
}

func TestFirstLayerThicknessRoundTrip(t *testing.T) {
	var (
		uFric = 0.38925
		yPlus = []float64{1, 5, 30}
	)
	deltaS := FirstLayerThicknessEach(seaRho, seaMu, uFric, yPlus)
	for i, ds := range deltaS {
		assert.InEpsilon(t, yPlus[i], fluidmech.YPlus(ds, uFric, seaRho, seaMu), 1.e-12)
	}
}

func TestTransitionX(t *testing.T) {
	// With Re_transition set to Re(L), the transition point is L itself
	re := fluidmech.ReynoldsNumber(seaRho, seaMu, 10, 5)
	assert.InDelta(t, 5.0, TransitionX(seaRho, seaMu, 10, re), 1.e-10)
}

func TestThicknessFormulas(t *testing.T) {
	re := fluidmech.ReynoldsNumber(seaRho, seaMu, 10, 5)
	assert.InDelta(t, 0.0027025, ThicknessLaminar(re, 1), 1.e-6)
	assert.InDelta(t, 0.01825, ThicknessTurbulent(re, 1), 1.e-5)
	assert.InDelta(t, 0.01825, ThicknessAuto(seaRho, seaMu, 10, 1, re, DefaultReTransition), 1.e-5)
}

func TestThicknessAutoDiscontinuity(t *testing.T) {
	var (
		uInf = 10.
		re   = fluidmech.ReynoldsNumber(seaRho, seaMu, uInf, 5)
		xt   = TransitionX(seaRho, seaMu, uInf, DefaultReTransition)
		eps  = xt * 1.e-9
	)
	below := ThicknessAuto(seaRho, seaMu, uInf, xt-eps, re, DefaultReTransition)
	at := ThicknessAuto(seaRho, seaMu, uInf, xt, re, DefaultReTransition)
	above := ThicknessAuto(seaRho, seaMu, uInf, xt+eps, re, DefaultReTransition)
	assert.InEpsilon(t, ThicknessLaminar(re, xt-eps), below, 1.e-12)
	assert.InEpsilon(t, ThicknessTurbulent(re, xt), at, 1.e-12) // inclusive at the transition point
	assert.InEpsilon(t, ThicknessTurbulent(re, xt+eps), above, 1.e-12)
	assert.Greater(t, math.Abs(at-below), math.Abs(at)*1.e-3) // the jump is real
}

func TestValues(t *testing.T) {
	c := NewCalculator()
	s, err := c.Values(0, 10, 5, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 0.01825, s.Delta, 1.e-4)
	assert.InDelta(t, 0.38925, s.FrictionVelocity, 1.e-4)
	assert.InDelta(t, 0.18561, s.WallShear, 1.e-4)
	assert.InDelta(t, 0.00303, s.FrictionCoefficient, 1.e-5)
	assert.InDelta(t, 3.423e6, s.Reynolds, 1.e3)
	assert.InDelta(t, seaRho, s.Density, 1.e-3)
	assert.InDelta(t, seaMu, s.Viscosity, 1.e-7)
}

func TestValuesVectorFirstLayer(t *testing.T) {
	c := NewCalculator()
	s, err := c.Values(0, 10, 5, 1)
	assert.NoError(t, err)
	deltaS := FirstLayerThicknessEach(s.Density, s.Viscosity, s.FrictionVelocity, []float64{1, 5, 30})
	expected := []float64{3.753e-5, 1.8763e-4, 1.1258e-3}
	assert.Len(t, deltaS, 3)
	for i := range deltaS {
		assert.InEpsilon(t, expected[i], deltaS[i], 1.e-3)
	}
}

func TestValuesInvalidInput(t *testing.T) {
	c := NewCalculator()
	for _, tc := range []struct {
		name       string
		uInf, L, x float64
	}{
		{"zero velocity", 0, 5, 1},
		{"negative length", 10, -5, 1},
		{"NaN location", 10, 5, math.NaN()},
	} {
		_, err := c.Values(0, tc.uInf, tc.L, tc.x)
		assert.True(t, errors.Is(err, ErrInvalidPhysicalInput), tc.name)
	}
	// A broken atmosphere model must surface as invalid input, not NaN
	c.Atmos = func(altitudeM float64) (rho, mu float64) { return -1, 1.8e-5 }
	_, err := c.Values(0, 10, 5, 1)
	assert.True(t, errors.Is(err, ErrInvalidPhysicalInput))
}
