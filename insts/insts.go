// Package insts provides RV32I instruction definitions, decoding, and encoding.
//
// This package implements decoding of RV32I machine code into structured
// instruction representations. It supports:
//   - Upper-immediate instructions: LUI, AUIPC
//   - Jump instructions: JAL, JALR
//   - ALU instructions: ADDI (register-immediate), ADD/SUB (register-register)
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x00500113) // ADDI x2, x0, 5
//	fmt.Printf("Op: %v, Rd: %d, Rs1: %d, Imm: %d\n", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
package insts

// Op represents an RV32I opcode class.
type Op uint8

// RV32I opcode classes.
const (
	OpUnknown Op = iota
	OpLUI
	OpAUIPC
	OpJAL
	OpJALR
	OpALUImm
	OpALUReg
)

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown  Format = iota
	FormatRegImm          // I-type: register-immediate (ADDI, JALR)
	FormatRegReg          // R-type: register-register (ADD, SUB)
	FormatUpperImm        // U-type: upper immediate (LUI, AUIPC)
	FormatJump            // J-type: jump (JAL)
)

// Opcode field values (bits [6:0] of the instruction word).
const (
	OpcodeLUI    uint32 = 0b0110111
	OpcodeAUIPC  uint32 = 0b0010111
	OpcodeJAL    uint32 = 0b1101111
	OpcodeJALR   uint32 = 0b1100111
	OpcodeALUImm uint32 = 0b0010011
	OpcodeALUReg uint32 = 0b0110011
)

// Funct3 codes for the ALU opcode classes. Only ADD/SUB is executed by the
// current core; the remaining codes are decoded but behave as no-ops.
const (
	Funct3AddSub uint32 = 0b000
	Funct3SLL    uint32 = 0b001
	Funct3SLT    uint32 = 0b010
	Funct3SLTU   uint32 = 0b011
	Funct3XOR    uint32 = 0b100
	Funct3SRLSRA uint32 = 0b101
	Funct3OR     uint32 = 0b110
	Funct3AND    uint32 = 0b111
)

// Funct7 codes distinguishing ADD from SUB in the register-register class.
const (
	Funct7Add uint32 = 0b0000000
	Funct7Sub uint32 = 0b0100000
)

// Instruction represents a decoded RV32I instruction.
//
// The positional fields (Rd, Funct3, Rs1, Rs2, Funct7) are extracted from
// every word regardless of opcode validity. Op and Format tag which fields
// are meaningful; Imm is already shaped for the instruction's format.
type Instruction struct {
	Op     Op     // Operation class
	Format Format // Encoding format

	Rd     uint8  // Destination register (bits [11:7])
	Funct3 uint32 // Function code (bits [14:12])
	Rs1    uint8  // First source register (bits [19:15])
	Rs2    uint8  // Second source register (bits [24:20])
	Funct7 uint32 // Function-extension code (bits [31:25])

	// Imm is the immediate operand, sign-extended or positioned according
	// to Format. Zero for unknown opcodes.
	Imm int32
}
