// Package latency provides instruction timing models for the RV32I core.
//
// The default values model a simple in-order scalar core and can be
// overridden via TimingConfig.
package latency

import (
	"github.com/sarchlab/rvsim/insts"
)

// Table provides instruction latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with default timing values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a new latency table with custom timing
// configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// GetLatency returns the execution latency in cycles for the given
// instruction. Unknown instructions retire in one cycle, matching their
// no-op execution.
func (t *Table) GetLatency(inst *insts.Instruction) uint64 {
	if inst == nil {
		return 1
	}

	switch inst.Op {
	case insts.OpALUImm, insts.OpALUReg:
		return t.config.ALULatency

	case insts.OpLUI:
		return t.config.ALULatency

	case insts.OpAUIPC:
		return t.config.ALULatency

	case insts.OpJAL, insts.OpJALR:
		return t.config.JumpLatency

	default:
		return 1
	}
}
