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

	"github.com/mscotty/cfdmesh/fileutil"
	"github.com/mscotty/cfdmesh/gridstudy"
)

// GridCmd represents the grid command
var GridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Generate a grid convergence family from a mesh sizing file",
	Long: `
Scales a mesh sizing JSON file by each grid factor, re-deriving boundary
layer growth rates so every grid keeps its layer count, and writes one
sizing file per factor plus a _complete file of the family,

cfdmesh grid --grid grid.json --flight flight.json --factors 0.75,1.0,1.5,2.0
cfdmesh grid --dir ./cases --flight flight.json --factors 0.5,1.0`,
	Run: func(cmd *cobra.Command, args []string) {
		gridFile, _ := cmd.Flags().GetString("grid")
		gridDir, _ := cmd.Flags().GetString("dir")
		flightFile, _ := cmd.Flags().GetString("flight")
		factors, _ := cmd.Flags().GetFloat64Slice("factors")
		if err := RunGrid(gridFile, gridDir, flightFile, factors); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(GridCmd)
	GridCmd.Flags().StringP("grid", "g", "", "mesh sizing JSON file")
	GridCmd.Flags().StringP("dir", "d", "", "directory scanned for mesh sizing JSON files")
	GridCmd.Flags().StringP("flight", "f", "", "flight conditions file (YAML or JSON)")
	GridCmd.Flags().Float64Slice("factors", []float64{0.75, 1.0, 1.5, 2.0}, "grid factors")
}

func RunGrid(gridFile, gridDir, flightFile string, factors []float64) (err error) {
	if flightFile == "" {
		return fmt.Errorf("a flight conditions file is required")
	}
	flight, err := gridstudy.ReadFlightConditions(flightFile)
	if err != nil {
		return
	}
	if len(flight.GridFactors) != 0 {
		factors = flight.GridFactors
	}
	var gridFiles []string
	switch {
	case gridFile != "":
		gridFiles = []string{gridFile}
	case gridDir != "":
		gridFiles, err = fileutil.Filter(gridDir,
			&fileutil.Criteria{Extensions: []string{".json"}},
			&fileutil.Criteria{Names: []string{"_complete"}})
		if err != nil {
			return
		}
	default:
		return fmt.Errorf("either --grid or --dir is required")
	}
	study := gridstudy.NewStudy(flight)
	for _, gf := range gridFiles {
		spec, lErr := gridstudy.LoadGridSpec(gf)
		if lErr != nil {
			return lErr
		}
		if _, err = study.CreateGrids(spec, factors, gf); err != nil {
			return
		}
	}
	return
}
