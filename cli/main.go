package main

import (
	"os"

	"github.com/jankeromnes/edgedb/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
