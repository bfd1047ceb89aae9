package emu

// BranchUnit implements the RV32I jump operations. The program counter it
// receives is always the post-fetch value (the word index of the next
// sequential instruction), and the value it returns becomes the next fetch
// position.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// JAL performs jump-and-link: rd = pc, then returns pc + offset.
func (b *BranchUnit) JAL(rd uint8, pc uint32, offset int32) uint32 {
	b.regFile.WriteReg(rd, pc)
	return pc + uint32(offset)
}

// JALR performs jump-and-link-register: rd = pc, then returns
// (rs1 + offset) with bit 0 forced to zero.
func (b *BranchUnit) JALR(rd, rs1 uint8, pc uint32, offset int32) uint32 {
	// Read the target base first in case rd == rs1.
	target := (b.regFile.ReadReg(rs1) + uint32(offset)) &^ 1
	b.regFile.WriteReg(rd, pc)
	return target
}
