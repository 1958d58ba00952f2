package main

import (
	"github.com/scholarly-metadata/rdfmap/cmd"
)

func main() {
	cmd.Execute()
}
