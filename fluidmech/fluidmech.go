// Package fluidmech holds the flat-plate fluid mechanics formulas used for
// boundary layer mesh sizing. All functions are stateless; callers are
// responsible for positive, finite inputs.
package fluidmech

import "math"

// ReynoldsNumber computes Re = rho · uInf · L / mu
func ReynoldsNumber(rho, mu, uInf, L float64) float64 {
	return rho * uInf * L / mu
}

// FrictionCoefficient computes the turbulent flat-plate power law
// Cf = 0.026 · Re^(-1/7). Invalid for Re <= 0.
func FrictionCoefficient(re float64) float64 {
	return 0.026 / math.Pow(re, 1./7.)
}

// WallShear computes tau = Cf · rho · uInf² / 2
func WallShear(rho, uInf, cf float64) float64 {
	return cf * rho * uInf * uInf / 2
}

// FrictionVelocity computes uFric = sqrt(tau/rho), NaN if tau/rho < 0
func FrictionVelocity(rho, tauWall float64) float64 {
	return math.Sqrt(tauWall / rho)
}

// YPlus computes the nondimensional wall distance of a cell of height deltaS
func YPlus(deltaS, uFric, rho, mu float64) float64 {
	return deltaS * uFric * rho / mu
}

// YPlusEach applies YPlus elementwise over a slice of first-cell heights
func YPlusEach(deltaS []float64, uFric, rho, mu float64) (yp []float64) {
	yp = make([]float64, len(deltaS))
	for i, ds := range deltaS {
		yp[i] = YPlus(ds, uFric, rho, mu)
	}
	return
}
