package emu

// DefaultMemSize is the default memory capacity in 32-bit words.
const DefaultMemSize = 1024

// Memory is a flat, word-addressed memory region. Each address is an index
// of a 32-bit word; there is no byte addressing in this machine.
type Memory struct {
	words []uint32
}

// NewMemory creates a memory with the default capacity.
func NewMemory() *Memory {
	return NewMemorySized(DefaultMemSize)
}

// NewMemorySized creates a memory holding size 32-bit words.
func NewMemorySized(size int) *Memory {
	return &Memory{words: make([]uint32, size)}
}

// Size returns the memory capacity in words.
func (m *Memory) Size() uint32 {
	return uint32(len(m.words))
}

// ReadWord returns the word at the given word index.
func (m *Memory) ReadWord(addr uint32) uint32 {
	return m.words[addr]
}

// WriteWord stores a word at the given word index.
func (m *Memory) WriteWord(addr uint32, value uint32) {
	m.words[addr] = value
}

// Contains reports whether addr is a valid word index.
func (m *Memory) Contains(addr uint32) bool {
	return addr < uint32(len(m.words))
}

// Reset zeroes all words.
func (m *Memory) Reset() {
	for i := range m.words {
		m.words[i] = 0
	}
}
