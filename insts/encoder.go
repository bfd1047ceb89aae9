package insts

// Encoding helpers used by tests, benchmarks, and program construction.
// Each builds a 32-bit instruction word from its fields. Register indices
// are masked to 5 bits and immediates to their field widths, so callers
// cannot produce a word that decodes to out-of-range fields.

// EncodeR encodes an R-type instruction (register-register ALU).
func EncodeR(opcode uint32, rd uint8, funct3 uint32, rs1, rs2 uint8, funct7 uint32) uint32 {
	return ((funct7 & 0x7F) << 25) |
		(uint32(rs2&0x1F) << 20) |
		(uint32(rs1&0x1F) << 15) |
		((funct3 & 0x7) << 12) |
		(uint32(rd&0x1F) << 7) |
		(opcode & 0x7F)
}

// EncodeI encodes an I-type instruction (register-immediate ALU, JALR).
// The low 12 bits of imm are stored; the decoder sign-extends them.
func EncodeI(opcode uint32, rd uint8, funct3 uint32, rs1 uint8, imm int32) uint32 {
	return (uint32(imm&0xFFF) << 20) |
		(uint32(rs1&0x1F) << 15) |
		((funct3 & 0x7) << 12) |
		(uint32(rd&0x1F) << 7) |
		(opcode & 0x7F)
}

// EncodeU encodes a U-type instruction (LUI, AUIPC). The immediate's low
// 12 bits are discarded; bits [31:12] are stored in place.
func EncodeU(opcode uint32, rd uint8, imm int32) uint32 {
	return (uint32(imm) & 0xFFFFF000) |
		(uint32(rd&0x1F) << 7) |
		(opcode & 0x7F)
}

// EncodeJ encodes a J-type instruction (JAL). The immediate is a signed
// even offset; bit 0 is discarded.
func EncodeJ(opcode uint32, rd uint8, imm int32) uint32 {
	immU := uint32(imm)
	return (((immU >> 20) & 0x1) << 31) |
		(((immU >> 1) & 0x3FF) << 21) |
		(((immU >> 11) & 0x1) << 20) |
		(((immU >> 12) & 0xFF) << 12) |
		(uint32(rd&0x1F) << 7) |
		(opcode & 0x7F)
}

// ADDI builds an ADDI instruction word: rd = rs1 + imm.
func ADDI(rd, rs1 uint8, imm int32) uint32 {
	return EncodeI(OpcodeALUImm, rd, Funct3AddSub, rs1, imm)
}

// ADD builds an ADD instruction word: rd = rs1 + rs2.
func ADD(rd, rs1, rs2 uint8) uint32 {
	return EncodeR(OpcodeALUReg, rd, Funct3AddSub, rs1, rs2, Funct7Add)
}

// SUB builds a SUB instruction word: rd = rs1 - rs2.
func SUB(rd, rs1, rs2 uint8) uint32 {
	return EncodeR(OpcodeALUReg, rd, Funct3AddSub, rs1, rs2, Funct7Sub)
}

// LUI builds an LUI instruction word: rd = imm[31:12] << 12.
func LUI(rd uint8, imm int32) uint32 {
	return EncodeU(OpcodeLUI, rd, imm)
}

// AUIPC builds an AUIPC instruction word: rd = pc + imm[31:12]<<12.
func AUIPC(rd uint8, imm int32) uint32 {
	return EncodeU(OpcodeAUIPC, rd, imm)
}

// JAL builds a JAL instruction word: rd = pc, pc += imm.
func JAL(rd uint8, imm int32) uint32 {
	return EncodeJ(OpcodeJAL, rd, imm)
}

// JALR builds a JALR instruction word: rd = pc, pc = (rs1 + imm) &^ 1.
func JALR(rd, rs1 uint8, imm int32) uint32 {
	return EncodeI(OpcodeJALR, rd, Funct3AddSub, rs1, imm)
}

// NOP builds the canonical no-op, ADDI x0, x0, 0 (0x00000013).
func NOP() uint32 {
	return ADDI(0, 0, 0)
}
