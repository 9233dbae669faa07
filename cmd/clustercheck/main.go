// main is the entry point for the clustercheck CLI.
package main

import (
	"github.com/clusterlab/clustercheck/cmd"
	"github.com/clusterlab/clustercheck/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
