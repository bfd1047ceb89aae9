// Package emu provides functional RV32I emulation.
package emu

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

// RegFile represents the RV32I register file.
// It contains 32 general-purpose registers (x0-x31) and the program
// counter. The program counter is a word index into memory, not a byte
// address.
//
// x0 is an ordinary writable register in this machine. Real RV32I
// hardwires x0 to zero; this core intentionally does not.
type RegFile struct {
	// X holds general-purpose registers x0-x31.
	X [NumRegs]uint32

	// PC is the program counter (word index).
	PC uint32
}

// ReadReg reads a register value.
func (r *RegFile) ReadReg(reg uint8) uint32 {
	return r.X[reg&0x1F]
}

// WriteReg writes a value to a register. All 32 registers are writable,
// including x0.
func (r *RegFile) WriteReg(reg uint8, value uint32) {
	r.X[reg&0x1F] = value
}

// Reset clears all registers and the program counter.
func (r *RegFile) Reset() {
	*r = RegFile{}
}
