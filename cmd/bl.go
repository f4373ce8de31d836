/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mscotty/cfdmesh/boundarylayer"
	"github.com/mscotty/cfdmesh/inputparams"
)

// BLCmd represents the bl command
var BLCmd = &cobra.Command{
	Use:   "bl",
	Short: "Boundary layer state and layer growth for flight conditions",
	Long: `
Computes the boundary layer state (thickness, friction velocity, wall shear,
friction coefficient) for the given flight conditions and grows a geometric
layer sequence per y+ target or first layer thickness,

cfdmesh bl -a 0 -u 10 -L 5 -x 1 --yplus 1,5,30
cfdmesh bl --flight flight.yaml --layers 30`,
	Run: func(cmd *cobra.Command, args []string) {
		bp := &BLParams{}
		bp.Flight.Altitude, _ = cmd.Flags().GetFloat64("altitude")
		bp.Flight.UInf, _ = cmd.Flags().GetFloat64("uinf")
		bp.Flight.Length, _ = cmd.Flags().GetFloat64("length")
		bp.Flight.XLoc, _ = cmd.Flags().GetFloat64("xloc")
		bp.Flight.YPlus, _ = cmd.Flags().GetFloat64Slice("yplus")
		bp.Flight.NumOfLayers, _ = cmd.Flags().GetInt("layers")
		bp.FirstLayer, _ = cmd.Flags().GetFloat64Slice("firstlayer")
		bp.GrowthFactor, _ = cmd.Flags().GetFloat64("growth")
		bp.Increment, _ = cmd.Flags().GetFloat64("increment")
		flightFile, _ := cmd.Flags().GetString("flight")
		if flightFile != "" {
			data, err := os.ReadFile(flightFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if err = bp.Flight.Parse(data); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		if err := RunBL(bp); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(BLCmd)
	BLCmd.Flags().Float64P("altitude", "a", 0, "altitude [m]")
	BLCmd.Flags().Float64P("uinf", "u", 10, "free-stream velocity [m/s]")
	BLCmd.Flags().Float64P("length", "L", 1, "characteristic length [m]")
	BLCmd.Flags().Float64P("xloc", "x", 1, "streamwise location as a fraction of L")
	BLCmd.Flags().Float64Slice("yplus", []float64{1}, "y+ targets")
	BLCmd.Flags().Float64Slice("firstlayer", nil, "first layer thicknesses [m], overrides yplus")
	BLCmd.Flags().IntP("layers", "n", 0, "layer count target; 0 grows to the BL thickness instead")
	BLCmd.Flags().Float64P("growth", "g", boundarylayer.DefaultGrowthFactor, "growth factor (initial guess in layer count mode)")
	BLCmd.Flags().Float64("increment", boundarylayer.DefaultSearchIncrement, "growth factor search increment")
	BLCmd.Flags().StringP("flight", "f", "", "flight conditions file (YAML or JSON)")
}

type BLParams struct {
	Flight       inputparams.FlightConditions
	FirstLayer   []float64
	GrowthFactor float64
	Increment    float64
}

func RunBL(bp *BLParams) (err error) {
	var (
		calc = boundarylayer.NewCalculator()
		fl   = bp.Flight
	)
	if fl.ReTransition > 0 {
		calc.ReTransition = fl.ReTransition
	}
	fl.ApplyDefaults()
	fl.Print()
	switch {
	case fl.NumOfLayers > 0:
		res, qErr := calc.FindLayersGivenLayerCount(fl.Altitude, fl.UInf, fl.Length,
			fl.YPlus, fl.XLoc, fl.NumOfLayers, bp.FirstLayer,
			bp.GrowthFactor, bp.Increment)
		if qErr != nil {
			return qErr
		}
		printState(res.State)
		for i, r := range res.Results {
			fmt.Printf("delta_s = %.6e: growth factor %.5f, %d layers, final increment %.6e\n",
				res.FirstLayer[i], r.GrowthFactor, r.LayerCount, r.FinalIncrement)
		}
	case len(bp.FirstLayer) > 0:
		res, qErr := calc.FindLayersGivenFirstLayer(fl.Altitude, fl.UInf, fl.Length,
			bp.FirstLayer, fl.XLoc, bp.GrowthFactor)
		if qErr != nil {
			return qErr
		}
		printState(res.State)
		printGrowths(res)
	default:
		res, qErr := calc.FindLayers(fl.Altitude, fl.UInf, fl.Length,
			fl.YPlus, fl.XLoc, bp.GrowthFactor)
		if qErr != nil {
			return qErr
		}
		printState(res.State)
		printGrowths(res)
	}
	return
}

func printState(s boundarylayer.State) {
	fmt.Printf("%12.6e\t= BL thickness [m]\n", s.Delta)
	fmt.Printf("%12.6e\t= Friction velocity [m/s]\n", s.FrictionVelocity)
	fmt.Printf("%12.6e\t= Wall shear [Pa]\n", s.WallShear)
	fmt.Printf("%12.6e\t= Cf\n", s.FrictionCoefficient)
	fmt.Printf("%12.6e\t= Re\n", s.Reynolds)
}

func printGrowths(res boundarylayer.LayersResult) {
	for i, g := range res.Growths {
		fmt.Printf("delta_s = %.6e (y+ %.3f): %d layers, total %.6e, final increment %.6e\n",
			res.FirstLayer[i], res.YPlus[i], len(g.Layers), g.Layers.Total(), g.FinalIncrement)
	}
}
