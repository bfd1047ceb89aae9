package cache

import (
	"github.com/sarchlab/rvsim/emu"
)

// MemoryBacking wraps emu.Memory as a BackingStore. Reads past the end of
// memory return zero words, so a fetch near the boundary never panics.
type MemoryBacking struct {
	memory *emu.Memory
}

// NewMemoryBacking creates a new MemoryBacking adapter.
func NewMemoryBacking(memory *emu.Memory) *MemoryBacking {
	return &MemoryBacking{memory: memory}
}

// ReadBlock fetches blockSize words starting at addr.
func (m *MemoryBacking) ReadBlock(addr uint32, blockSize int) []uint32 {
	words := make([]uint32, blockSize)
	for i := range words {
		a := addr + uint32(i)
		if m.memory.Contains(a) {
			words[i] = m.memory.ReadWord(a)
		}
	}
	return words
}
