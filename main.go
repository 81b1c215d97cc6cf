package main

import (
	"os"

	"github.com/harini/sciquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
