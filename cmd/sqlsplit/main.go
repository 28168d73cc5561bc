// Package main is the entry point for the sqlsplit CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlsplit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
