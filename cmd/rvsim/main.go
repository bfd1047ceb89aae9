// Package main provides the RVSim command-line interface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/loader"
	"github.com/sarchlab/rvsim/timing/core"
	"github.com/sarchlab/rvsim/timing/latency"
)

var (
	memSize    = flag.Int("mem", emu.DefaultMemSize, "Memory capacity in 32-bit words")
	timing     = flag.Bool("timing", false, "Enable timing simulation mode")
	configPath = flag.String("config", "", "Path to timing configuration JSON file")
	maxInsts   = flag.Uint64("max-insts", 0, "Stop after this many instructions (0 = no limit)")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: rvsim [options] <program.bin|program.hex>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := validateMemSize(*memSize); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	programPath := flag.Arg(0)

	prog, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s (%d words)\n", programPath, len(prog.Words))
	}

	if *timing {
		os.Exit(runTiming(prog))
	}
	os.Exit(runEmulation(prog))
}

// runEmulation runs the program in functional emulation mode.
func runEmulation(prog *loader.Program) int {
	opts := []emu.EmulatorOption{
		emu.WithMemorySize(*memSize),
		emu.WithMaxInstructions(*maxInsts),
	}
	if *verbose {
		opts = append(opts, emu.WithUnknownInstHook(func(pc, word uint32) {
			fmt.Fprintf(os.Stderr, "unknown instruction 0x%08X at PC=%d\n", word, pc)
		}))
	}

	emulator := emu.NewEmulator(opts...)
	if err := emulator.LoadProgram(prog.Words); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		return 1
	}

	if err := emulator.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Emulation error: %v\n", err)
		return 1
	}

	if *verbose {
		fmt.Printf("Instructions executed: %d\n", emulator.InstructionCount())
	}
	dumpRegisters(emulator.RegFile())
	return 0
}

// runTiming runs the program through the timing model.
func runTiming(prog *loader.Program) int {
	regFile := &emu.RegFile{}
	memory := emu.NewMemorySized(*memSize)
	if uint32(len(prog.Words)) > memory.Size() {
		fmt.Fprintf(os.Stderr, "Error: program of %d words exceeds memory capacity of %d words\n",
			len(prog.Words), memory.Size())
		return 1
	}
	for i, word := range prog.Words {
		memory.WriteWord(uint32(i), word)
	}

	opts := []core.CoreOption{core.WithMaxInstructions(*maxInsts)}
	if *configPath != "" {
		config, err := latency.LoadTimingConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading timing config: %v\n", err)
			return 1
		}
		opts = append(opts, core.WithTimingConfig(config))
	}

	c := core.NewCore(regFile, memory, opts...)
	c.Run()

	stats := c.Stats()
	fmt.Printf("Cycles:       %d\n", stats.Cycles)
	fmt.Printf("Instructions: %d\n", stats.Instructions)
	fmt.Printf("CPI:          %.2f\n", stats.CPI())
	if *verbose {
		icache := c.ICacheStats()
		fmt.Printf("I-cache:      %d hits, %d misses\n", icache.Hits, icache.Misses)
	}
	dumpRegisters(regFile)
	return 0
}

// validateMemSize rejects memory capacities that cannot hold a program.
func validateMemSize(words int) error {
	if words <= 0 {
		return fmt.Errorf("memory size must be at least 1 word, got %d", words)
	}
	return nil
}

// dumpRegisters prints all nonzero registers.
func dumpRegisters(regFile *emu.RegFile) {
	for i := uint8(0); i < emu.NumRegs; i++ {
		if v := regFile.ReadReg(i); v != 0 {
			fmt.Printf("x%-2d = %d (0x%08X)\n", i, v, v)
		}
	}
}
