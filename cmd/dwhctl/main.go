// Package main is the entry point for dwhctl.
package main

import (
	"fmt"
	"os"

	"github.com/quangvdm00/datawarehouse-aws/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
