package main

import "github.com/mscotty/cfdmesh/cmd"

func main() {
	cmd.Execute()
}
