// Package main is the entry point for the Mindcanvas application.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "mindcanvas: %v\n", err)
		os.Exit(1)
	}
}
