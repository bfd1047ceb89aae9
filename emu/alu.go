package emu

// ALU implements RV32I arithmetic operations. All arithmetic is unsigned
// 32-bit with wraparound; there is no overflow signal.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADDI performs addition with immediate: rd = rs1 + imm.
// There is no separate subtract-immediate; callers pass a negative imm.
func (a *ALU) ADDI(rd, rs1 uint8, imm int32) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)+uint32(imm))
}

// ADD performs register addition: rd = rs1 + rs2.
func (a *ALU) ADD(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)+a.regFile.ReadReg(rs2))
}

// SUB performs register subtraction: rd = rs1 - rs2.
func (a *ALU) SUB(rd, rs1, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs1)-a.regFile.ReadReg(rs2))
}

// LUI loads an upper immediate: rd = imm. The immediate already occupies
// bits [31:12]; no shift is applied here.
func (a *ALU) LUI(rd uint8, imm int32) {
	a.regFile.WriteReg(rd, uint32(imm))
}

// AUIPC adds an upper immediate to the program counter: rd = pc + imm.
// pc is the post-fetch program counter, passed in by the caller.
func (a *ALU) AUIPC(rd uint8, pc uint32, imm int32) {
	a.regFile.WriteReg(rd, pc+uint32(imm))
}
