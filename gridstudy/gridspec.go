// Package gridstudy scales mesh sizing configurations by grid factors to
// produce a family of grids for grid convergence studies. Boundary layer
// growth rates are re-derived at each scaled first layer thickness so every
// grid in the family keeps the requested layer count.
package gridstudy

import (
	"encoding/json"
	"fmt"
	"os"
)

// BLSizing is one surface entry of the mesh tool's boundary layer schema.
// The key spellings are fixed by the downstream mesh tool.
type BLSizing struct {
	GrowthRate          float64 `json:"Growth_Rate"`
	FirstLayerThickness float64 `json:"1st_Layer_Thickness"`
	NumberOfLayers      int     `json:"Number_of_Layers"`
}

// Component groups the sizing blocks of one meshed component (body, wing, ...)
type Component struct {
	GlobalSizing map[string]float64  `json:"Global_Sizing,omitempty"`
	TopoSizing   map[string]float64  `json:"Topo_Sizing,omitempty"`
	BLSizing     map[string]BLSizing `json:"BL_Sizing,omitempty"`
}

// GridSpec maps component names to their sizing blocks
type GridSpec map[string]Component

// On disk, Topo_Sizing and BL_Sizing arrive as parallel name/value arrays
type rawTopoSizing struct {
	Name []string  `json:"name"`
	Val  []float64 `json:"val"`
}

type rawBLSizing struct {
	Name                []string  `json:"name"`
	GrowthRate          []float64 `json:"Growth_Rate"`
	FirstLayerThickness []float64 `json:"1st_Layer_Thickness"`
	NumberOfLayers      []int     `json:"Number_of_Layers"`
}

type rawComponent struct {
	GlobalSizing map[string]float64 `json:"Global_Sizing"`
	TopoSizing   *rawTopoSizing     `json:"Topo_Sizing"`
	BLSizing     *rawBLSizing       `json:"BL_Sizing"`
}

// LoadGridSpec reads a mesh sizing JSON file and reformats the parallel
// name/value arrays into per surface maps.
func LoadGridSpec(path string) (spec GridSpec, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	return parseGridSpec(data)
}

func parseGridSpec(data []byte) (spec GridSpec, err error) {
	var raw map[string]rawComponent
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("grid spec: %w", err)
	}
	spec = make(GridSpec, len(raw))
	for name, rc := range raw {
		comp := Component{GlobalSizing: rc.GlobalSizing}
		if rc.TopoSizing != nil {
			if len(rc.TopoSizing.Name) != len(rc.TopoSizing.Val) {
				return nil, fmt.Errorf("grid spec: %s: Topo_Sizing has %d names for %d values",
					name, len(rc.TopoSizing.Name), len(rc.TopoSizing.Val))
			}
			comp.TopoSizing = make(map[string]float64, len(rc.TopoSizing.Name))
			for i, n := range rc.TopoSizing.Name {
				comp.TopoSizing[n] = rc.TopoSizing.Val[i]
			}
		}
		if rc.BLSizing != nil {
			bl := rc.BLSizing
			if len(bl.Name) != len(bl.GrowthRate) ||
				len(bl.Name) != len(bl.FirstLayerThickness) ||
				len(bl.Name) != len(bl.NumberOfLayers) {
				return nil, fmt.Errorf("grid spec: %s: BL_Sizing arrays are not the same length", name)
			}
			comp.BLSizing = make(map[string]BLSizing, len(bl.Name))
			for i, n := range bl.Name {
				comp.BLSizing[n] = BLSizing{
					GrowthRate:          bl.GrowthRate[i],
					FirstLayerThickness: bl.FirstLayerThickness[i],
					NumberOfLayers:      bl.NumberOfLayers[i],
				}
			}
		}
		spec[name] = comp
	}
	return
}
