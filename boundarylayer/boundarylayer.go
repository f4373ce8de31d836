// Package boundarylayer sizes wall-normal mesh layers for CFD pre-processing:
// boundary layer thickness from flight conditions, first cell height from a
// y+ target, and geometric layer growth to either a total thickness or an
// exact layer count.
package boundarylayer

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mscotty/cfdmesh/atmosphere"
	"github.com/mscotty/cfdmesh/fluidmech"
)

// DefaultReTransition is the critical Reynolds number for laminar to
// turbulent transition on a flat plate.
const DefaultReTransition = 500000.

// ErrInvalidPhysicalInput marks nonpositive or non-finite physical
// quantities where the formulas would otherwise emit NaN or Inf.
var ErrInvalidPhysicalInput = errors.New("invalid physical input")

// AtmosphereFunc maps altitude in meters to density and dynamic viscosity.
// The calculator treats it as a pure function.
type AtmosphereFunc func(altitudeM float64) (rho, mu float64)

// State holds the boundary layer quantities produced by one evaluation of
// the flight conditions. Immutable once produced.
type State struct {
	Delta               float64 // boundary layer thickness, m
	FrictionVelocity    float64 // m/s
	WallShear           float64 // Pa
	FrictionCoefficient float64
	Reynolds            float64
	Density             float64 // kg/m³
	Viscosity           float64 // Pa·s
}

// LayerSequence is the per-layer thickness sequence: a zero sentinel, the
// first layer thickness, then geometric growth.
type LayerSequence []float64

func (ls LayerSequence) Total() float64 {
	return floats.Sum(ls)
}

// FinalIncrement is the thickness of the outermost layer, the first layer
// itself when nothing was grown.
func (ls LayerSequence) FinalIncrement() float64 {
	return ls[len(ls)-1]
}

type Calculator struct {
	Atmos         AtmosphereFunc
	ReTransition  float64
	MaxSearchIter int // outer iteration cap for the growth factor search
}

func NewCalculator() *Calculator {
	return &Calculator{
		Atmos:         atmosphere.Lookup,
		ReTransition:  DefaultReTransition,
		MaxSearchIter: DefaultMaxSearchIter,
	}
}

func checkPositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) || val <= 0 {
		return fmt.Errorf("%w: %s = %g, must be positive and finite", ErrInvalidPhysicalInput, name, val)
	}
	return nil
}

// FirstLayerThickness inverts the y+ relation: deltaS = yPlus·mu/(uFric·rho)
func FirstLayerThickness(rho, mu, uFric, yPlus float64) float64 {
	return yPlus * mu / (uFric * rho)
}

// FirstLayerThicknessEach applies FirstLayerThickness elementwise over y+
func FirstLayerThicknessEach(rho, mu, uFric float64, yPlus []float64) (deltaS []float64) {
	deltaS = make([]float64, len(yPlus))
	for i, yp := range yPlus {
		deltaS[i] = FirstLayerThickness(rho, mu, uFric, yp)
	}
	return
}

// TransitionX locates the laminar/turbulent transition point along the
// surface: x_t = Re_t·mu/(rho·uInf)
func TransitionX(rho, mu, uInf, reTransition float64) float64 {
	return reTransition * mu / (rho * uInf)
}

// ThicknessLaminar computes the laminar flat-plate thickness 5x/√Re
func ThicknessLaminar(re, x float64) float64 {
	return 5 * x / math.Sqrt(re)
}

// ThicknessTurbulent computes the turbulent flat-plate thickness 0.37x/Re^0.2
func ThicknessTurbulent(re, x float64) float64 {
	return 0.37 * x / math.Pow(re, 0.2)
}

// ThicknessAuto selects the turbulent formula at and beyond the transition
// point, the laminar one before it. The two branches do not meet, so the
// result jumps discontinuously at exactly x = TransitionX.
func ThicknessAuto(rho, mu, uInf, x, re, reTransition float64) float64 {
	if x >= TransitionX(rho, mu, uInf, reTransition) {
		return ThicknessTurbulent(re, x)
	}
	return ThicknessLaminar(re, x)
}

// Values evaluates the full boundary layer state for the flight conditions:
// atmosphere lookup, Reynolds number over L·x, friction coefficient, wall
// shear, friction velocity, and the thickness selected by ThicknessAuto.
func (c *Calculator) Values(altitudeM, uInf, L, x float64) (s State, err error) {
	for _, in := range []struct {
		name string
		val  float64
	}{
		{"u_inf", uInf},
		{"L", L},
		{"x", x},
	} {
		if err = checkPositive(in.name, in.val); err != nil {
			return
		}
	}
	rho, mu := c.Atmos(altitudeM)
	if err = checkPositive("rho", rho); err != nil {
		return
	}
	if err = checkPositive("mu", mu); err != nil {
		return
	}
	re := fluidmech.ReynoldsNumber(rho, mu, uInf, L*x)
	if err = checkPositive("Re", re); err != nil {
		return
	}
	cf := fluidmech.FrictionCoefficient(re)
	tau := fluidmech.WallShear(rho, uInf, cf)
	uFric := fluidmech.FrictionVelocity(rho, tau)
	s = State{
		Delta:               ThicknessAuto(rho, mu, uInf, x, re, c.ReTransition),
		FrictionVelocity:    uFric,
		WallShear:           tau,
		FrictionCoefficient: cf,
		Reynolds:            re,
		Density:             rho,
		Viscosity:           mu,
	}
	return
}
