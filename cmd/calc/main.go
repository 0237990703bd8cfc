package main

import (
	"os"

	"mvpcalc/cmd/calc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
