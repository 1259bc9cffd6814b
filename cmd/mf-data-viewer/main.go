package main

import (
	"os"

	"github.com/clshinji/mf-data-viewer/cmd/mf-data-viewer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
