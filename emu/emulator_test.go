package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
)

var _ = Describe("Emulator", func() {
	var e *emu.Emulator

	BeforeEach(func() {
		e = emu.NewEmulator()
	})

	Describe("NewEmulator", func() {
		It("should create an emulator with initialized components", func() {
			Expect(e).NotTo(BeNil())
			Expect(e.RegFile()).NotTo(BeNil())
			Expect(e.Memory()).NotTo(BeNil())
		})

		It("should start with all registers and the PC at zero", func() {
			for i := uint8(0); i < emu.NumRegs; i++ {
				Expect(e.RegFile().ReadReg(i)).To(Equal(uint32(0)))
			}
			Expect(e.RegFile().PC).To(Equal(uint32(0)))
		})

		It("should default to 1024 words of memory", func() {
			Expect(e.Memory().Size()).To(Equal(uint32(1024)))
		})

		It("should honor WithMemorySize", func() {
			small := emu.NewEmulator(emu.WithMemorySize(4))
			Expect(small.Memory().Size()).To(Equal(uint32(4)))
		})
	})

	Describe("LoadProgram", func() {
		It("should place program words at memory indices [0, N) unchanged", func() {
			program := []uint32{0x00000013, 0x00500113, 0x00600193, 0x003101B3}

			Expect(e.LoadProgram(program)).To(Succeed())

			for i, word := range program {
				Expect(e.Memory().ReadWord(uint32(i))).To(Equal(word))
			}
		})

		It("should not modify memory beyond the program", func() {
			Expect(e.LoadProgram([]uint32{0x00500113})).To(Succeed())

			for addr := uint32(1); addr < e.Memory().Size(); addr++ {
				Expect(e.Memory().ReadWord(addr)).To(Equal(uint32(0)))
			}
		})

		It("should reject a program larger than memory", func() {
			small := emu.NewEmulator(emu.WithMemorySize(2))

			err := small.LoadProgram([]uint32{1, 2, 3})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Step", func() {
		It("should execute a NOP without touching registers", func() {
			// Scenario: 0x00000013 is ADDI x0, x0, 0.
			Expect(e.LoadProgram([]uint32{0x00000013})).To(Succeed())

			result := e.Step()

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(e.RegFile().PC).To(Equal(uint32(1)))
			for i := uint8(0); i < emu.NumRegs; i++ {
				Expect(e.RegFile().ReadReg(i)).To(Equal(uint32(0)))
			}
		})

		It("should execute ADDI", func() {
			// ADDI x2, x0, 5
			Expect(e.LoadProgram([]uint32{0x00500113})).To(Succeed())

			e.Step()

			Expect(e.RegFile().ReadReg(2)).To(Equal(uint32(5)))
		})

		It("should report halted once the PC leaves memory", func() {
			small := emu.NewEmulator(emu.WithMemorySize(1))
			Expect(small.LoadProgram([]uint32{insts.NOP()})).To(Succeed())

			result := small.Step()

			Expect(result.Halted).To(BeTrue())
			Expect(small.Step().Halted).To(BeTrue())
		})
	})

	Describe("Run", func() {
		It("should compute 5 + 6 = 11 through ADDI and ADD", func() {
			program := []uint32{
				0x00000013, // NOP
				0x00500113, // ADDI x2, x0, 5
				0x00600193, // ADDI x3, x0, 6
				0x003101B3, // ADD  x3, x2, x3
			}
			small := emu.NewEmulator(emu.WithMemorySize(4))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(2)).To(Equal(uint32(5)))
			Expect(small.RegFile().ReadReg(3)).To(Equal(uint32(11)))
			Expect(small.InstructionCount()).To(Equal(uint64(4)))
		})

		It("should execute SUB with wraparound", func() {
			program := []uint32{
				insts.ADDI(1, 0, 3),
				insts.ADDI(2, 0, 5),
				insts.SUB(4, 1, 2), // x4 = 3 - 5
			}
			small := emu.NewEmulator(emu.WithMemorySize(3))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(4)).To(Equal(uint32(0xFFFFFFFE)))
		})

		It("should execute LUI and AUIPC", func() {
			program := []uint32{
				insts.NOP(),
				insts.LUI(5, int32(0x12345)<<12),
				insts.AUIPC(6, int32(1)<<12),
			}
			small := emu.NewEmulator(emu.WithMemorySize(3))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(5)).To(Equal(uint32(0x12345000)))
			// AUIPC was fetched at word 2, so rd = (2+1) + 0x1000.
			Expect(small.RegFile().ReadReg(6)).To(Equal(uint32(3 + 0x1000)))
		})

		It("should treat x0 as an ordinary writable register", func() {
			program := []uint32{
				insts.ADDI(0, 0, 7), // writes x0
				insts.ADD(1, 0, 0),  // x1 = x0 + x0
			}
			small := emu.NewEmulator(emu.WithMemorySize(2))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(0)).To(Equal(uint32(7)))
			Expect(small.RegFile().ReadReg(1)).To(Equal(uint32(14)))
		})

		It("should halt exactly after the last word of a full program", func() {
			program := []uint32{
				insts.ADDI(1, 0, 1),
				insts.ADDI(2, 1, 1),
				insts.ADDI(3, 2, 1),
				insts.ADDI(4, 3, 1),
			}
			small := emu.NewEmulator(emu.WithMemorySize(4))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.Halted()).To(BeTrue())
			Expect(small.InstructionCount()).To(Equal(uint64(4)))
			Expect(small.RegFile().ReadReg(1)).To(Equal(uint32(1)))
			Expect(small.RegFile().ReadReg(2)).To(Equal(uint32(2)))
			Expect(small.RegFile().ReadReg(3)).To(Equal(uint32(3)))
			Expect(small.RegFile().ReadReg(4)).To(Equal(uint32(4)))
		})

		It("should stop when the instruction limit is reached", func() {
			// Word 1 jumps back to word 0, so the loop never terminates
			// on its own.
			looping := emu.NewEmulator(
				emu.WithMemorySize(8),
				emu.WithMaxInstructions(100),
			)
			Expect(looping.LoadProgram([]uint32{insts.NOP(), insts.JAL(0, -2)})).To(Succeed())

			err := looping.Run()

			Expect(err).To(HaveOccurred())
			Expect(looping.InstructionCount()).To(Equal(uint64(100)))
		})
	})

	Describe("Jumps", func() {
		It("should link and redirect on JAL", func() {
			// JAL at word 1 with offset +4: x1 = 2, next fetch = 6.
			program := []uint32{
				insts.NOP(),
				insts.JAL(1, 4),
				insts.ADDI(2, 0, 1), // skipped
				insts.ADDI(3, 0, 1), // skipped
				insts.ADDI(4, 0, 1), // skipped
				insts.ADDI(5, 0, 1), // skipped
				insts.ADDI(6, 0, 9), // landed here
			}
			small := emu.NewEmulator(emu.WithMemorySize(7))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(1)).To(Equal(uint32(2)))
			Expect(small.RegFile().ReadReg(2)).To(Equal(uint32(0)))
			Expect(small.RegFile().ReadReg(6)).To(Equal(uint32(9)))
		})

		It("should jump through a register on JALR, clearing bit 0", func() {
			program := []uint32{
				insts.ADDI(5, 0, 5),  // x5 = 5 (odd target)
				insts.JALR(1, 5, 0),  // pc = 5 &^ 1 = 4, x1 = 2
				insts.ADDI(2, 0, 1),  // skipped
				insts.ADDI(3, 0, 1),  // skipped
				insts.ADDI(4, 0, 42), // landed here
			}
			small := emu.NewEmulator(emu.WithMemorySize(5))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(1)).To(Equal(uint32(2)))
			Expect(small.RegFile().ReadReg(3)).To(Equal(uint32(0)))
			Expect(small.RegFile().ReadReg(4)).To(Equal(uint32(42)))
		})

		It("should halt when a jump leaves memory", func() {
			small := emu.NewEmulator(emu.WithMemorySize(4))
			Expect(small.LoadProgram([]uint32{insts.JAL(1, 100)})).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.Halted()).To(BeTrue())
			Expect(small.InstructionCount()).To(Equal(uint64(1)))
			Expect(small.RegFile().ReadReg(1)).To(Equal(uint32(1)))
		})
	})

	Describe("Unsupported encodings", func() {
		It("should execute unknown opcodes as no-ops", func() {
			program := []uint32{
				0x00002083, // LW x1, 0(x0) - loads are not implemented
				insts.ADDI(2, 0, 3),
			}
			small := emu.NewEmulator(emu.WithMemorySize(2))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(1)).To(Equal(uint32(0)))
			Expect(small.RegFile().ReadReg(2)).To(Equal(uint32(3)))
		})

		It("should execute unsupported funct3 codes as no-ops", func() {
			program := []uint32{
				insts.ADDI(1, 0, 1),
				insts.EncodeI(insts.OpcodeALUImm, 2, insts.Funct3XOR, 1, 1), // XORI: no-op here
				insts.EncodeR(insts.OpcodeALUReg, 3, insts.Funct3AND, 1, 1, 0), // AND: no-op here
			}
			small := emu.NewEmulator(emu.WithMemorySize(3))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(2)).To(Equal(uint32(0)))
			Expect(small.RegFile().ReadReg(3)).To(Equal(uint32(0)))
		})

		It("should execute an unsupported funct7 as a no-op", func() {
			program := []uint32{
				insts.ADDI(1, 0, 1),
				insts.EncodeR(insts.OpcodeALUReg, 2, insts.Funct3AddSub, 1, 1, 0b1111111),
			}
			small := emu.NewEmulator(emu.WithMemorySize(2))
			Expect(small.LoadProgram(program)).To(Succeed())

			Expect(small.Run()).To(Succeed())

			Expect(small.RegFile().ReadReg(2)).To(Equal(uint32(0)))
		})

		It("should report unknown words through the diagnostic hook", func() {
			type report struct{ pc, word uint32 }
			var seen []report

			hooked := emu.NewEmulator(
				emu.WithMemorySize(2),
				emu.WithUnknownInstHook(func(pc, word uint32) {
					seen = append(seen, report{pc, word})
				}),
			)
			Expect(hooked.LoadProgram([]uint32{0x00002083, insts.NOP()})).To(Succeed())

			Expect(hooked.Run()).To(Succeed())

			Expect(seen).To(HaveLen(1))
			Expect(seen[0].pc).To(Equal(uint32(0)))
			Expect(seen[0].word).To(Equal(uint32(0x00002083)))
		})
	})

	Describe("Reset and determinism", func() {
		It("should yield identical register state across fresh runs", func() {
			program := []uint32{
				insts.ADDI(2, 0, 5),
				insts.ADDI(3, 0, 6),
				insts.ADD(3, 2, 3),
				insts.JAL(1, -2),
				insts.ADDI(4, 3, 1),
			}

			run := func() [emu.NumRegs]uint32 {
				m := emu.NewEmulator(
					emu.WithMemorySize(5),
					emu.WithMaxInstructions(1000),
				)
				Expect(m.LoadProgram(program)).To(Succeed())
				_ = m.Run()
				return m.RegFile().X
			}

			Expect(run()).To(Equal(run()))
		})

		It("should clear all state on Reset", func() {
			Expect(e.LoadProgram([]uint32{insts.ADDI(2, 0, 5)})).To(Succeed())
			e.Step()

			e.Reset()

			Expect(e.RegFile().ReadReg(2)).To(Equal(uint32(0)))
			Expect(e.RegFile().PC).To(Equal(uint32(0)))
			Expect(e.Memory().ReadWord(0)).To(Equal(uint32(0)))
			Expect(e.InstructionCount()).To(Equal(uint64(0)))
		})
	})
})
