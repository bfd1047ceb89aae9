// Package core provides a fast, non-pipelined timing model for the RV32I
// machine. Each instruction is fetched through the instruction cache and
// charged its table latency; architectural effects are delegated to the
// emu execution units so functional and timing simulation cannot drift
// apart.
//
// The reported CPI reflects latency-weighted instruction mix plus fetch
// latency. There is no hazard or pipeline modeling.
package core

import (
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
	"github.com/sarchlab/rvsim/timing/cache"
	"github.com/sarchlab/rvsim/timing/latency"
)

// Stats holds performance statistics for the core.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Instructions is the number of instructions retired.
	Instructions uint64
	// FetchHits is the number of instruction-cache hits.
	FetchHits uint64
	// FetchMisses is the number of instruction-cache misses.
	FetchMisses uint64
}

// CPI returns cycles per instruction, or 0 before anything retired.
func (s Stats) CPI() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Instructions)
}

// Core is the timing model. It shares the register file and memory with
// the functional side and owns the fetch path.
type Core struct {
	regFile    *emu.RegFile
	memory     *emu.Memory
	decoder    *insts.Decoder
	alu        *emu.ALU
	branchUnit *emu.BranchUnit

	icache       *cache.Cache
	latencyTable *latency.Table

	stats           Stats
	maxInstructions uint64 // 0 means no limit
	limitReached    bool
}

// CoreOption configures the timing core.
type CoreOption func(*Core)

// WithMaxInstructions sets the maximum number of instructions to retire.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) CoreOption {
	return func(c *Core) {
		c.maxInstructions = max
	}
}

// WithICacheConfig overrides the instruction cache configuration.
func WithICacheConfig(config cache.Config) CoreOption {
	return func(c *Core) {
		c.icache = cache.New(config, cache.NewMemoryBacking(c.memory))
	}
}

// WithLatencyTable overrides the instruction latency table.
func WithLatencyTable(table *latency.Table) CoreOption {
	return func(c *Core) {
		c.latencyTable = table
	}
}

// WithTimingConfig applies a full timing configuration: the execution
// latencies through the latency table, and the fetch hit/miss latencies
// through the instruction cache.
func WithTimingConfig(config *latency.TimingConfig) CoreOption {
	return func(c *Core) {
		c.latencyTable = latency.NewTableWithConfig(config)

		icacheConfig := cache.DefaultICacheConfig()
		icacheConfig.HitLatency = config.FetchHitLatency
		icacheConfig.MissLatency = config.FetchMissLatency
		c.icache = cache.New(icacheConfig, cache.NewMemoryBacking(c.memory))
	}
}

// NewCore creates a timing core over the given register file and memory.
func NewCore(regFile *emu.RegFile, memory *emu.Memory, opts ...CoreOption) *Core {
	c := &Core{
		regFile:      regFile,
		memory:       memory,
		decoder:      insts.NewDecoder(),
		alu:          emu.NewALU(regFile),
		branchUnit:   emu.NewBranchUnit(regFile),
		icache:       cache.New(cache.DefaultICacheConfig(), cache.NewMemoryBacking(memory)),
		latencyTable: latency.NewTable(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Halted reports whether the program counter has left the valid memory
// range or the instruction limit was hit.
func (c *Core) Halted() bool {
	return c.limitReached || !c.memory.Contains(c.regFile.PC)
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	return c.stats
}

// ICacheStats returns the instruction cache statistics.
func (c *Core) ICacheStats() cache.Statistics {
	return c.icache.Stats()
}

// Step fetches, decodes, and executes one instruction, charging its fetch
// and execution latency.
func (c *Core) Step() {
	if c.Halted() {
		return
	}

	if c.maxInstructions > 0 && c.stats.Instructions >= c.maxInstructions {
		c.limitReached = true
		return
	}

	// Fetch through the instruction cache.
	fetch := c.icache.Read(c.regFile.PC)
	if fetch.Hit {
		c.stats.FetchHits++
	} else {
		c.stats.FetchMisses++
	}
	c.regFile.PC++

	inst := c.decoder.Decode(fetch.Word)

	c.stats.Cycles += fetch.Latency + c.latencyTable.GetLatency(inst)
	c.stats.Instructions++

	c.execute(inst)
}

// Run steps the core until it halts.
func (c *Core) Run() {
	for !c.Halted() {
		c.Step()
	}
}

// Reset clears timing state. Architectural state belongs to the caller.
func (c *Core) Reset() {
	c.icache.Reset()
	c.stats = Stats{}
	c.limitReached = false
}

// execute applies the architectural effect of one decoded instruction,
// mirroring the functional emulator's dispatch.
func (c *Core) execute(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpLUI:
		c.alu.LUI(inst.Rd, inst.Imm)
	case insts.OpAUIPC:
		c.alu.AUIPC(inst.Rd, c.regFile.PC, inst.Imm)
	case insts.OpJAL:
		c.regFile.PC = c.branchUnit.JAL(inst.Rd, c.regFile.PC, inst.Imm)
	case insts.OpJALR:
		c.regFile.PC = c.branchUnit.JALR(inst.Rd, inst.Rs1, c.regFile.PC, inst.Imm)
	case insts.OpALUImm:
		if inst.Funct3 == insts.Funct3AddSub {
			c.alu.ADDI(inst.Rd, inst.Rs1, inst.Imm)
		}
	case insts.OpALUReg:
		if inst.Funct3 == insts.Funct3AddSub {
			switch inst.Funct7 {
			case insts.Funct7Add:
				c.alu.ADD(inst.Rd, inst.Rs1, inst.Rs2)
			case insts.Funct7Sub:
				c.alu.SUB(inst.Rd, inst.Rs1, inst.Rs2)
			}
		}
	}
}
