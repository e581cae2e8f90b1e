package main

import "github.com/terraincore/heightline/cmd/heightcli/cmd"

func main() {
	cmd.Execute()
}
