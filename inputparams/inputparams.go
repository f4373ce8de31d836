package inputparams

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/mscotty/cfdmesh/atmosphere"
)

// FlightConditions obtained from the YAML or JSON input file
type FlightConditions struct {
	Altitude     float64   `json:"alt"`           // m
	UInf         float64   `json:"u_inf"`         // m/s
	Length       float64   `json:"L"`             // characteristic length, m
	XLoc         float64   `json:"x_loc"`         // streamwise location as a fraction of L; defaults to 1
	YPlus        []float64 `json:"y_plus"`        // y+ targets
	NumOfLayers  int       `json:"num_of_layers"` // layer count target for growth searches
	GridFactors  []float64 `json:"grid_factors"`  // grid convergence family
	Rho          float64   `json:"rho"`           // filled from the atmosphere when absent
	Mu           float64   `json:"mu"`            // filled from the atmosphere when absent
	ReTransition float64   `json:"re_transition"`
}

func (fc *FlightConditions) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, fc); err != nil {
		return err
	}
	fc.ApplyDefaults()
	return nil
}

// ApplyDefaults fills density and viscosity from the standard atmosphere
// when the file does not pin them. An unset x_loc defaults to 1, the full
// characteristic length, so Re comes out as rho·u_inf·L/mu.
func (fc *FlightConditions) ApplyDefaults() {
	if fc.Rho == 0 || fc.Mu == 0 {
		rho, mu := atmosphere.Lookup(fc.Altitude)
		if fc.Rho == 0 {
			fc.Rho = rho
		}
		if fc.Mu == 0 {
			fc.Mu = mu
		}
	}
	if fc.XLoc == 0 {
		fc.XLoc = 1
	}
}

func (fc *FlightConditions) Print() {
	fmt.Printf("%8.2f\t\t= Altitude [m]\n", fc.Altitude)
	fmt.Printf("%8.3f\t\t= U_inf [m/s]\n", fc.UInf)
	fmt.Printf("%8.4f\t\t= L [m]\n", fc.Length)
	fmt.Printf("%8.4f\t\t= X location [fraction of L]\n", fc.XLoc)
	fmt.Printf("%8.4f\t\t= Density [kg/m³]\n", fc.Rho)
	fmt.Printf("%8.4e\t\t= Dynamic Viscosity [Pa·s]\n", fc.Mu)
	fmt.Printf("%v\t\t= Y+ targets\n", fc.YPlus)
	if fc.NumOfLayers != 0 {
		fmt.Printf("[%d]\t\t\t= Number of Layers\n", fc.NumOfLayers)
	}
	if len(fc.GridFactors) != 0 {
		fmt.Printf("%v\t\t= Grid Factors\n", fc.GridFactors)
	}
}
