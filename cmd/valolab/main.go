package main

import (
	"os"

	"github.com/velolib/valolab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
