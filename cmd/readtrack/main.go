package main

import (
	"os"

	"github.com/tdat2209/Read-Track-Backend/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
