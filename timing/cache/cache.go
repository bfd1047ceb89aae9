// Package cache provides instruction-cache modeling using Akita cache
// components.
//
// The cache is read-only: the RV32I core has no store instructions, so
// there is no dirty state and no writeback path. Addresses and block sizes
// are in 32-bit words, matching the machine's word-addressed memory.
package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Config holds cache configuration parameters. All sizes are in words.
type Config struct {
	// Size is the total capacity in words.
	Size int
	// Associativity is the number of ways.
	Associativity int
	// BlockSize is the cache line size in words.
	BlockSize int
	// HitLatency in cycles.
	HitLatency uint64
	// MissLatency in cycles (includes the memory access).
	MissLatency uint64
}

// DefaultICacheConfig returns the default instruction cache configuration:
// 256 words (1KB), 2-way, 4-word lines.
func DefaultICacheConfig() Config {
	return Config{
		Size:          256,
		Associativity: 2,
		BlockSize:     4,
		HitLatency:    1,
		MissLatency:   10,
	}
}

// AccessResult contains the result of a cache access.
type AccessResult struct {
	// Hit indicates whether the access was a cache hit.
	Hit bool
	// Latency is the number of cycles this access takes.
	Latency uint64
	// Word is the instruction word read.
	Word uint32
	// Evicted is true if a block was replaced to serve this access.
	Evicted bool
	// EvictedAddr is the word address of the evicted block.
	EvictedAddr uint32
}

// Statistics holds cache performance statistics.
type Statistics struct {
	Reads     uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// BackingStore is the next level in the memory hierarchy.
type BackingStore interface {
	// ReadBlock fetches blockSize words starting at the block-aligned
	// word address.
	ReadBlock(addr uint32, blockSize int) []uint32
}

// Cache models an instruction cache using Akita's cache directory for
// tag and replacement state.
type Cache struct {
	config Config

	// Akita cache directory for tag/LRU management
	directory *akitacache.DirectoryImpl

	// Word storage, indexed by (setID * associativity + wayID)
	dataStore [][]uint32

	stats   Statistics
	backing BackingStore
}

// New creates a new cache with the given configuration.
func New(config Config, backing BackingStore) *Cache {
	numSets := config.Size / (config.Associativity * config.BlockSize)
	totalBlocks := numSets * config.Associativity

	dataStore := make([][]uint32, totalBlocks)
	for i := range dataStore {
		dataStore[i] = make([]uint32, config.BlockSize)
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
		dataStore: dataStore,
		backing:   backing,
	}
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// ResetStats clears cache statistics.
func (c *Cache) ResetStats() {
	c.stats = Statistics{}
}

// blockIndex computes the index into dataStore for a block.
func (c *Cache) blockIndex(block *akitacache.Block) int {
	return block.SetID*c.config.Associativity + block.WayID
}

// Read fetches the instruction word at the given word address.
func (c *Cache) Read(addr uint32) AccessResult {
	c.stats.Reads++

	blockAddr := (uint64(addr) / uint64(c.config.BlockSize)) * uint64(c.config.BlockSize)

	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)

		offset := uint64(addr) % uint64(c.config.BlockSize)
		return AccessResult{
			Hit:     true,
			Latency: c.config.HitLatency,
			Word:    c.dataStore[c.blockIndex(block)][offset],
		}
	}

	c.stats.Misses++
	return c.handleMiss(addr, blockAddr)
}

// handleMiss fetches the missing block from the backing store.
func (c *Cache) handleMiss(addr uint32, blockAddr uint64) AccessResult {
	result := AccessResult{
		Hit:     false,
		Latency: c.config.MissLatency,
	}

	victim := c.directory.FindVictim(blockAddr)
	if victim == nil {
		// Should not happen with a properly sized directory; serve the
		// word straight from backing without caching it.
		if c.backing != nil {
			words := c.backing.ReadBlock(uint32(blockAddr), c.config.BlockSize)
			result.Word = words[uint64(addr)-blockAddr]
		}
		return result
	}

	victimData := c.dataStore[c.blockIndex(victim)]

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedAddr = uint32(victim.Tag)
	}

	if c.backing != nil {
		copy(victimData, c.backing.ReadBlock(uint32(blockAddr), c.config.BlockSize))
	} else {
		for i := range victimData {
			victimData[i] = 0
		}
	}

	// Tag stores the block-aligned word address.
	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = false

	result.Word = victimData[uint64(addr)-blockAddr]
	c.directory.Visit(victim)

	return result
}

// Invalidate marks the cache line holding addr as invalid.
func (c *Cache) Invalidate(addr uint32) {
	blockAddr := (uint64(addr) / uint64(c.config.BlockSize)) * uint64(c.config.BlockSize)
	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		block.IsValid = false
	}
}

// Reset invalidates all cache lines and clears statistics.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}
