package main

import (
	"os"

	"github.com/TwistedSD/Financial-Calculators/cmd/fincalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
