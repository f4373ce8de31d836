package fluidmech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormulas(t *testing.T) {
	var (
		rho, mu = 1.2, 0.01
		uInf, L = 10., 5.
	)
	re := ReynoldsNumber(rho, mu, uInf, L)
	assert.Equal(t, 6000., re)

	cf := FrictionCoefficient(re)
	assert.InDelta(t, 0.0075, cf, 1.e-4)

	assert.InDelta(t, 0.3, WallShear(rho, uInf, 0.005), 1.e-12)

	tau := WallShear(rho, uInf, cf)
	uFric := FrictionVelocity(rho, tau)
	assert.InDelta(t, 0.6125, uFric, 1.e-4)

	assert.InDelta(t, 0.7350, YPlus(0.01, uFric, rho, mu), 1.e-4)
}

func TestReynoldsMonotonicity(t *testing.T) {
	var (
		rho, mu = 1.2, 0.01
		uInf, L = 10., 5.
		base    = ReynoldsNumber(rho, mu, uInf, L)
	)
	assert.Greater(t, ReynoldsNumber(rho*1.1, mu, uInf, L), base)
	assert.Greater(t, ReynoldsNumber(rho, mu, uInf*1.1, L), base)
	assert.Greater(t, ReynoldsNumber(rho, mu, uInf, L*1.1), base)
	assert.Less(t, ReynoldsNumber(rho, mu*1.1, uInf, L), base)
}

func TestFrictionCoefficientDecreasing(t *testing.T) {
	prev := FrictionCoefficient(1.e3)
	for _, re := range []float64{1.e4, 1.e5, 1.e6, 1.e7} {
		cf := FrictionCoefficient(re)
		assert.Less(t, cf, prev)
		prev = cf
	}
}

func TestYPlusEach(t *testing.T) {
	var (
		uFric, rho, mu = 0.5, 1.2, 0.01
		deltaS         = []float64{1.e-4, 5.e-4, 3.e-3}
	)
	yp := YPlusEach(deltaS, uFric, rho, mu)
	assert.Len(t, yp, 3)
	for i, ds := range deltaS {
		assert.Equal(t, YPlus(ds, uFric, rho, mu), yp[i])
	}
}
