package main

import (
	"os"

	"github.com/thefifthleaf/subconv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
