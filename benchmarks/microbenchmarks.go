// Package benchmarks provides small self-encoded programs for exercising
// the emulator and calibrating the timing model.
package benchmarks

import (
	"github.com/sarchlab/rvsim/insts"
)

// Benchmark is a word program with expected final register values.
type Benchmark struct {
	// Name identifies the benchmark.
	Name string
	// Description says what the benchmark measures.
	Description string
	// Program holds the instruction words, loaded at word index 0.
	Program []uint32
	// ExpectedRegs maps register index to the value it must hold after
	// the program halts.
	ExpectedRegs map[uint8]uint32
}

// GetMicrobenchmarks returns the standard set of microbenchmarks.
func GetMicrobenchmarks() []Benchmark {
	return []Benchmark{
		arithmeticSequential(),
		dependencyChain(),
		upperImmediates(),
		jumpChain(),
	}
}

// arithmeticSequential tests ALU throughput with independent operations.
func arithmeticSequential() Benchmark {
	program := make([]uint32, 0, 20)
	for i := 0; i < 4; i++ {
		program = append(program,
			insts.ADDI(1, 1, 1),
			insts.ADDI(2, 2, 1),
			insts.ADDI(3, 3, 1),
			insts.ADDI(4, 4, 1),
			insts.ADDI(5, 5, 1),
		)
	}
	return Benchmark{
		Name:        "arithmetic_sequential",
		Description: "20 independent ADDI operations - measures ALU throughput",
		Program:     program,
		ExpectedRegs: map[uint8]uint32{
			1: 4, 2: 4, 3: 4, 4: 4, 5: 4,
		},
	}
}

// dependencyChain tests serialized operations where each depends on the
// previous result.
func dependencyChain() Benchmark {
	program := []uint32{insts.ADDI(1, 0, 1)}
	for i := 0; i < 15; i++ {
		program = append(program, insts.ADD(1, 1, 1)) // x1 *= 2
	}
	return Benchmark{
		Name:        "dependency_chain",
		Description: "16 serially dependent operations - measures result forwarding",
		Program:     program,
		ExpectedRegs: map[uint8]uint32{
			1: 1 << 15,
		},
	}
}

// upperImmediates exercises LUI/AUIPC address-style computation.
func upperImmediates() Benchmark {
	return Benchmark{
		Name:        "upper_immediates",
		Description: "LUI/AUIPC pairs followed by register adds",
		Program: []uint32{
			insts.LUI(1, int32(1)<<12),
			insts.AUIPC(2, int32(2)<<12),
			insts.ADD(3, 1, 2),
			insts.SUB(4, 3, 1),
		},
		ExpectedRegs: map[uint8]uint32{
			1: 0x1000,
			2: 0x2000 + 2, // AUIPC linked against the post-fetch PC
			3: 0x3002,
			4: 0x2002,
		},
	}
}

// jumpChain hops forward through memory via JAL, linking each hop.
func jumpChain() Benchmark {
	return Benchmark{
		Name:        "jump_chain",
		Description: "forward JAL hops - measures fetch redirect cost",
		Program: []uint32{
			insts.JAL(1, 2), // 0 -> 3
			insts.NOP(),     // skipped
			insts.NOP(),     // skipped
			insts.JAL(2, 2), // 3 -> 6
			insts.NOP(),     // skipped
			insts.NOP(),     // skipped
			insts.ADDI(3, 2, 1),
		},
		ExpectedRegs: map[uint8]uint32{
			1: 1,
			2: 4,
			3: 5,
		},
	}
}
