package boundarylayer

import "github.com/mscotty/cfdmesh/fluidmech"

// LayersResult is the output of the grow-to-thickness composite queries:
// one Growth per input element plus the flow state they were derived from.
type LayersResult struct {
	Growths    []Growth
	FirstLayer []float64 // delta_s per element
	YPlus      []float64 // y+ per element
	State      State
}

// LayerCountResult is the output of the grow-to-layer-count composite query.
type LayerCountResult struct {
	Results    []GrowthResult
	FirstLayer []float64
	State      State
}

// FindLayers computes the boundary layer state for the flight conditions,
// derives the first layer thickness per y+ target, and grows each to the
// boundary layer thickness.
func (c *Calculator) FindLayers(altitudeM, uInf, L float64, yPlus []float64,
	x, growthFactor float64) (res LayersResult, err error) {
	if res.State, err = c.Values(altitudeM, uInf, L, x); err != nil {
		return
	}
	res.YPlus = yPlus
	res.FirstLayer = FirstLayerThicknessEach(res.State.Density, res.State.Viscosity,
		res.State.FrictionVelocity, yPlus)
	res.Growths, err = GrowToThickness(res.FirstLayer, res.State.Delta, growthFactor)
	return
}

// FindLayersGivenFirstLayer is FindLayers with the inverse wiring: the first
// layer thicknesses are given and the y+ each implies is reported back.
func (c *Calculator) FindLayersGivenFirstLayer(altitudeM, uInf, L float64, deltaS []float64,
	x, growthFactor float64) (res LayersResult, err error) {
	if res.State, err = c.Values(altitudeM, uInf, L, x); err != nil {
		return
	}
	res.FirstLayer = deltaS
	res.YPlus = fluidmech.YPlusEach(deltaS, res.State.FrictionVelocity,
		res.State.Density, res.State.Viscosity)
	res.Growths, err = GrowToThickness(deltaS, res.State.Delta, growthFactor)
	return
}

// FindLayersGivenLayerCount computes the boundary layer state and searches
// for the growth factor that hits totalLayers exactly. When deltaS is nil
// the first layer thicknesses are derived from the y+ targets, otherwise
// the given values are used directly.
func (c *Calculator) FindLayersGivenLayerCount(altitudeM, uInf, L float64, yPlus []float64,
	x float64, totalLayers int, deltaS []float64,
	growthFactor, increment float64) (res LayerCountResult, err error) {
	if res.State, err = c.Values(altitudeM, uInf, L, x); err != nil {
		return
	}
	if deltaS == nil {
		deltaS = FirstLayerThicknessEach(res.State.Density, res.State.Viscosity,
			res.State.FrictionVelocity, yPlus)
	}
	res.FirstLayer = deltaS
	res.Results, err = growToLayerCount(deltaS, res.State.Delta, totalLayers,
		growthFactor, increment, c.MaxSearchIter)
	return
}
