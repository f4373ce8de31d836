package gridstudy

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// factorFileName turns grid.json into grid0.75.json for factor 0.75
func factorFileName(outFile string, factor float64) string {
	stem, ext := splitExt(outFile)
	return stem + strconv.FormatFloat(factor, 'g', -1, 64) + ext
}

func completeFileName(outFile string) string {
	stem, ext := splitExt(outFile)
	return stem + "_complete" + ext
}

func factorKey(factor float64) string {
	return "factor" + strconv.FormatFloat(factor, 'g', -1, 64)
}

func splitExt(path string) (stem, ext string) {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i], path[i:]
	}
	return path, ".json"
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// WriteGridFile writes one scaled grid spec in the mesh tool's JSON schema
func WriteGridFile(path string, spec GridSpec) error {
	return writeJSON(path, spec)
}

// WriteFamilyFile writes the whole grid family keyed by factor
func WriteFamilyFile(path string, family map[string]GridSpec) error {
	return writeJSON(path, family)
}
