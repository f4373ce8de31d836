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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mscotty/cfdmesh/gridstudy"
)

// ExploreCmd represents the explore command
var ExploreCmd = &cobra.Command{
	Use:   "explore [file]",
	Short: "Print every leaf of a mesh sizing JSON file as a dotted path",
	Long: `
Walks a mesh sizing JSON file and prints one "path: value" line per leaf,
array indices in brackets, for inspecting what a scaled grid family wrote,

cfdmesh explore grid_complete.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunExplore(os.Stdout, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ExploreCmd)
}

func RunExplore(w io.Writer, path string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var tree interface{}
	if err = json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	gridstudy.PrintTree(w, tree)
	return
}
