package inputparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYAML(t *testing.T) {
	var fc FlightConditions
	err := fc.Parse([]byte(`
alt: 0
u_inf: 10
L: 5
y_plus: [1, 5, 30]
num_of_layers: 30
`))
	assert.NoError(t, err)
	assert.Equal(t, 10., fc.UInf)
	assert.Equal(t, []float64{1, 5, 30}, fc.YPlus)
	assert.Equal(t, 30, fc.NumOfLayers)
	// Atmosphere defaults at sea level
	assert.InDelta(t, 1.225, fc.Rho, 1.e-4)
	assert.InDelta(t, 1.7894e-5, fc.Mu, 1.e-8)
	// X location defaults to the full characteristic length
	assert.Equal(t, 1., fc.XLoc)
}

func TestDefaultXLocReynolds(t *testing.T) {
	// A flight file without x_loc must yield Re = rho·u_inf·L/mu, not L²
	var fc FlightConditions
	err := fc.Parse([]byte(`{"alt": 0, "u_inf": 10, "L": 5}`))
	assert.NoError(t, err)
	assert.Equal(t, 1., fc.XLoc)
	re := fc.Rho * fc.UInf * fc.Length * fc.XLoc / fc.Mu
	assert.InEpsilon(t, 3.423e6, re, 1.e-3)
}

func TestParseJSON(t *testing.T) {
	// The mesh tooling writes flight files as JSON; the YAML parser takes both
	var fc FlightConditions
	err := fc.Parse([]byte(`{"alt": 3000, "u_inf": 100, "L": 2.5, "rho": 1.1, "mu": 1.7e-5}`))
	assert.NoError(t, err)
	assert.Equal(t, 3000., fc.Altitude)
	// Pinned values win over the atmosphere
	assert.Equal(t, 1.1, fc.Rho)
	assert.Equal(t, 1.7e-5, fc.Mu)
}

func TestParseGridFactors(t *testing.T) {
	var fc FlightConditions
	err := fc.Parse([]byte(`{"alt": 0, "u_inf": 10, "L": 5, "grid_factors": [0.75, 1.0, 1.5, 2.0]}`))
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.75, 1.0, 1.5, 2.0}, fc.GridFactors)
}
