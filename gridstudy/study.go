package gridstudy

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mscotty/cfdmesh/boundarylayer"
	"github.com/mscotty/cfdmesh/inputparams"
)

// Study applies grid factors to a mesh sizing spec under fixed flight
// conditions.
type Study struct {
	Calc   *boundarylayer.Calculator
	Flight inputparams.FlightConditions
	Log    *logrus.Logger
}

func NewStudy(flight inputparams.FlightConditions) (s *Study) {
	s = &Study{
		Calc:   boundarylayer.NewCalculator(),
		Flight: flight,
		Log:    logrus.New(),
	}
	if flight.ReTransition > 0 {
		s.Calc.ReTransition = flight.ReTransition
	}
	return
}

// ReadFlightConditions loads the flight conditions file (YAML or JSON) and
// fills density and viscosity from the standard atmosphere when absent.
func ReadFlightConditions(path string) (fc inputparams.FlightConditions, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	err = fc.Parse(data)
	return
}

// ScaleGlobalSizing scales the global sizing block. Absolute sizes multiply
// by the grid factor; Size_Increment is a ratio, so only its excess over 1
// scales. Unknown fields pass through untouched.
func ScaleGlobalSizing(sizing map[string]float64, gridFactor float64) (scaled map[string]float64) {
	scaled = make(map[string]float64, len(sizing))
	for field, val := range sizing {
		switch field {
		case "Scaling_Factor", "Global_Size", "Minimum_Size":
			scaled[field] = val * gridFactor
		case "Size_Increment":
			scaled[field] = 1 + (val-1)*gridFactor
		default:
			scaled[field] = val
		}
	}
	return
}

// ScaleTopoSizing scales every topological sizing value by the grid factor
func ScaleTopoSizing(sizing map[string]float64, gridFactor float64) (scaled map[string]float64) {
	scaled = make(map[string]float64, len(sizing))
	for field, val := range sizing {
		scaled[field] = val * gridFactor
	}
	return
}

// scaleBLSizing scales each surface's first layer thickness by the grid
// factor and re-derives the growth rate that keeps the layer count at that
// new thickness.
func (s *Study) scaleBLSizing(sizing map[string]BLSizing, gridFactor float64) (scaled map[string]BLSizing, err error) {
	scaled = make(map[string]BLSizing, len(sizing))
	for surface, bl := range sizing {
		firstLayer := bl.FirstLayerThickness * gridFactor
		res, qErr := s.Calc.FindLayersGivenLayerCount(
			s.Flight.Altitude, s.Flight.UInf, s.Flight.Length,
			s.Flight.YPlus, s.Flight.XLoc,
			bl.NumberOfLayers, []float64{firstLayer},
			boundarylayer.DefaultGrowthFactor, boundarylayer.DefaultSearchIncrement)
		if qErr != nil {
			return nil, qErr
		}
		scaled[surface] = BLSizing{
			GrowthRate:          res.Results[0].GrowthFactor,
			FirstLayerThickness: firstLayer,
			NumberOfLayers:      bl.NumberOfLayers,
		}
		s.Log.WithFields(logrus.Fields{
			"surface":     surface,
			"factor":      gridFactor,
			"first_layer": firstLayer,
			"growth_rate": res.Results[0].GrowthFactor,
		}).Info("scaled BL sizing")
	}
	return
}

// Apply scales one grid spec by one grid factor
func (s *Study) Apply(spec GridSpec, gridFactor float64) (scaled GridSpec, err error) {
	scaled = make(GridSpec, len(spec))
	for name, comp := range spec {
		s.Log.WithFields(logrus.Fields{
			"component": name,
			"factor":    gridFactor,
		}).Info("processing component")
		out := Component{}
		if comp.GlobalSizing != nil {
			out.GlobalSizing = ScaleGlobalSizing(comp.GlobalSizing, gridFactor)
		}
		if comp.TopoSizing != nil {
			out.TopoSizing = ScaleTopoSizing(comp.TopoSizing, gridFactor)
		}
		if comp.BLSizing != nil {
			if out.BLSizing, err = s.scaleBLSizing(comp.BLSizing, gridFactor); err != nil {
				return nil, err
			}
		}
		scaled[name] = out
	}
	return
}

// CreateGrids runs the whole family: one scaled spec per grid factor,
// written as <stem><factor>.json, plus a _complete file of the family.
func (s *Study) CreateGrids(spec GridSpec, gridFactors []float64, outFile string) (family map[string]GridSpec, err error) {
	family = make(map[string]GridSpec, len(gridFactors))
	for _, factor := range gridFactors {
		scaled, aErr := s.Apply(spec, factor)
		if aErr != nil {
			return nil, aErr
		}
		if err = WriteGridFile(factorFileName(outFile, factor), scaled); err != nil {
			return nil, err
		}
		family[factorKey(factor)] = scaled
	}
	err = WriteFamilyFile(completeFileName(outFile), family)
	return
}
