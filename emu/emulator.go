package emu

import (
	"fmt"

	"github.com/sarchlab/rvsim/insts"
)

// UnknownInstHook is an optional diagnostic callback invoked whenever the
// emulator executes an instruction word it does not recognize. The word is
// still treated as a no-op; the hook only observes.
type UnknownInstHook func(pc uint32, word uint32)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if the program counter left the valid memory range,
	// either before the fetch or as a result of this instruction.
	Halted bool

	// Err is set if an error occurred during execution.
	Err error
}

// Emulator executes RV32I instructions functionally.
//
// The machine has exactly two states: RUNNING while the program counter is
// a valid word index into memory, and HALTED once it is not. There is no
// halt instruction; execution stops when the counter runs past the end of
// memory.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder

	// Execution units
	alu        *ALU
	branchUnit *BranchUnit

	// Diagnostics
	unknownHook UnknownInstHook

	// Execution state
	memSize          int
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithMemorySize sets the memory capacity in 32-bit words.
// The default is DefaultMemSize (1024 words).
func WithMemorySize(words int) EmulatorOption {
	return func(e *Emulator) {
		e.memSize = words
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// WithUnknownInstHook installs a diagnostic hook for unrecognized
// instruction words. Default behavior (silent no-op) is unchanged.
func WithUnknownInstHook(hook UnknownInstHook) EmulatorOption {
	return func(e *Emulator) {
		e.unknownHook = hook
	}
}

// NewEmulator creates a new RV32I emulator. All registers and the program
// counter start at zero.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regFile: &RegFile{},
		decoder: insts.NewDecoder(),
		memSize: DefaultMemSize,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.memory = NewMemorySized(e.memSize)
	e.alu = NewALU(e.regFile)
	e.branchUnit = NewBranchUnit(e.regFile)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// Halted reports whether the program counter has left the valid memory
// range.
func (e *Emulator) Halted() bool {
	return !e.memory.Contains(e.regFile.PC)
}

// LoadProgram copies the program words into memory starting at word index
// 0 and leaves the program counter at 0. A program larger than the memory
// capacity is rejected rather than silently overrunning.
func (e *Emulator) LoadProgram(program []uint32) error {
	if uint32(len(program)) > e.memory.Size() {
		return fmt.Errorf("program of %d words exceeds memory capacity of %d words",
			len(program), e.memory.Size())
	}
	for i, word := range program {
		e.memory.WriteWord(uint32(i), word)
	}
	return nil
}

// Reset resets the emulator to its initial state, preserving the
// configured memory capacity.
func (e *Emulator) Reset() {
	e.regFile.Reset()
	e.memory.Reset()
	e.instructionCount = 0
}

// Step executes a single instruction: fetch the word at PC, advance PC,
// decode, execute. Returns a StepResult indicating whether execution
// should continue.
func (e *Emulator) Step() StepResult {
	if e.Halted() {
		return StepResult{Halted: true}
	}

	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{
			Err: fmt.Errorf("max instructions reached at PC=%d", e.regFile.PC),
		}
	}

	// 1. Fetch: read the word at PC and advance to the next word.
	word := e.memory.ReadWord(e.regFile.PC)
	e.regFile.PC++

	// 2. Decode
	inst := e.decoder.Decode(word)

	// 3. Execute
	e.execute(inst, word)

	e.instructionCount++

	return StepResult{Halted: e.Halted()}
}

// Run executes instructions until the machine halts. Returns an error only
// if the configured instruction limit is hit first.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Err != nil {
			return result.Err
		}
		if result.Halted {
			return nil
		}
	}
}

// execute applies one decoded instruction. PC has already been advanced by
// the fetch, so e.regFile.PC is the word index of the next sequential
// instruction: the link value for jumps and the base for AUIPC.
//
// Anything unrecognized (an unknown opcode, or an unsupported funct3 or
// funct7 within a recognized one) executes as a no-op.
func (e *Emulator) execute(inst *insts.Instruction, word uint32) {
	switch inst.Op {
	case insts.OpLUI:
		e.alu.LUI(inst.Rd, inst.Imm)
	case insts.OpAUIPC:
		e.alu.AUIPC(inst.Rd, e.regFile.PC, inst.Imm)
	case insts.OpJAL:
		e.regFile.PC = e.branchUnit.JAL(inst.Rd, e.regFile.PC, inst.Imm)
	case insts.OpJALR:
		e.regFile.PC = e.branchUnit.JALR(inst.Rd, inst.Rs1, e.regFile.PC, inst.Imm)
	case insts.OpALUImm:
		if inst.Funct3 != insts.Funct3AddSub {
			e.reportUnknown(word)
			return
		}
		e.alu.ADDI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpALUReg:
		switch {
		case inst.Funct3 != insts.Funct3AddSub:
			e.reportUnknown(word)
		case inst.Funct7 == insts.Funct7Add:
			e.alu.ADD(inst.Rd, inst.Rs1, inst.Rs2)
		case inst.Funct7 == insts.Funct7Sub:
			e.alu.SUB(inst.Rd, inst.Rs1, inst.Rs2)
		default:
			e.reportUnknown(word)
		}
	default:
		e.reportUnknown(word)
	}
}

// reportUnknown invokes the diagnostic hook, if any, for an instruction
// word that executed as a no-op.
func (e *Emulator) reportUnknown(word uint32) {
	if e.unknownHook != nil {
		// PC was already advanced; report the fetch address.
		e.unknownHook(e.regFile.PC-1, word)
	}
}
