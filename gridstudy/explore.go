package gridstudy

import (
	"fmt"
	"io"
	"sort"
)

// Explore walks a decoded JSON tree depth first and calls visit with a
// dotted path for every leaf, map keys in sorted order so output is stable.
func Explore(jsonData interface{}, prefix string, visit func(path string, leaf interface{})) {
	switch node := jsonData.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			childPrefix := k
			if prefix != "" {
				childPrefix = prefix + "." + k
			}
			Explore(node[k], childPrefix, visit)
		}
	case []interface{}:
		for i, v := range node {
			Explore(v, fmt.Sprintf("%s[%d]", prefix, i), visit)
		}
	default:
		visit(prefix, jsonData)
	}
}

// PrintTree writes one "path: value" line per leaf of a decoded JSON tree
func PrintTree(w io.Writer, jsonData interface{}) {
	Explore(jsonData, "", func(path string, leaf interface{}) {
		fmt.Fprintf(w, "%s: %v\n", path, leaf)
	})
}
