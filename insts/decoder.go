package insts

// Decoder decodes RV32I machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new RV32I instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit RV32I instruction word.
//
// Decode is total: every input produces an Instruction. Words whose opcode
// is not one of the six supported classes come back with Op = OpUnknown,
// Format = FormatUnknown, and Imm = 0, but with all positional fields
// still extracted.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{
		Op:     OpUnknown,
		Format: FormatUnknown,
		Rd:     uint8((word >> 7) & 0x1F),
		Funct3: (word >> 12) & 0x7,
		Rs1:    uint8((word >> 15) & 0x1F),
		Rs2:    uint8((word >> 20) & 0x1F),
		Funct7: (word >> 25) & 0x7F,
	}

	switch word & 0x7F {
	case OpcodeLUI:
		inst.Op = OpLUI
		inst.Format = FormatUpperImm
		inst.Imm = immU(word)
	case OpcodeAUIPC:
		inst.Op = OpAUIPC
		inst.Format = FormatUpperImm
		inst.Imm = immU(word)
	case OpcodeJAL:
		inst.Op = OpJAL
		inst.Format = FormatJump
		inst.Imm = immJ(word)
	case OpcodeJALR:
		inst.Op = OpJALR
		inst.Format = FormatRegImm
		inst.Imm = immI(word)
	case OpcodeALUImm:
		inst.Op = OpALUImm
		inst.Format = FormatRegImm
		inst.Imm = immI(word)
	case OpcodeALUReg:
		inst.Op = OpALUReg
		inst.Format = FormatRegReg
	}

	return inst
}

// immI extracts the I-type immediate: bits [31:20], sign-extended.
func immI(word uint32) int32 {
	return int32(word) >> 20
}

// immU extracts the U-type immediate: bits [31:12], left in place.
func immU(word uint32) int32 {
	return int32(word & 0xFFFFF000)
}

// immJ assembles the J-type immediate from its four bit groups:
// imm[20|10:1|11|19:12]. Bit 0 is always zero; bit 31 of the word
// sign-extends through bits [31:21] of the result.
func immJ(word uint32) int32 {
	imm := ((word >> 12) & 0xFF) << 12 // imm[19:12]
	imm |= ((word >> 20) & 0x1) << 11  // imm[11]
	imm |= ((word >> 21) & 0x3FF) << 1 // imm[10:1]

	// imm[20], sign-extended through bit 31
	return int32(imm) | ((int32(word) >> 31) << 20)
}
