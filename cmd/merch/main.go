package main

import (
	"os"

	"github.com/mondaymerch/merch-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
