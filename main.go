// Package main provides the entry point for RVSim.
// RVSim is a minimal RV32I instruction-set emulator with an optional
// timing model.
//
// For the full CLI, use: go run ./cmd/rvsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("RVSim - RV32I instruction-set emulator")
	fmt.Println("")
	fmt.Println("Usage: rvsim [options] <program.bin|program.hex>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -mem       Memory capacity in 32-bit words (default 1024)")
	fmt.Println("  -timing    Enable timing simulation mode")
	fmt.Println("  -config    Path to timing configuration JSON file")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rvsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rvsim' instead.")
	}
}
