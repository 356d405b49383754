// Package main provides the decomp CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("decomp %s\n", version)
		return
	}

	fmt.Println("decomp - truncated tensor decompositions for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/spectrum for a runnable walkthrough.")
}
