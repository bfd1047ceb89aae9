package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds latency values for different instruction types.
type TimingConfig struct {
	// ALULatency is the execution latency for ALU operations
	// (ADDI, ADD, SUB, LUI, AUIPC). Default: 1 cycle.
	ALULatency uint64 `json:"alu_latency"`

	// JumpLatency is the execution latency for JAL and JALR, covering
	// the fetch redirect. Default: 2 cycles.
	JumpLatency uint64 `json:"jump_latency"`

	// FetchHitLatency is the instruction-cache hit latency.
	// Default: 1 cycle.
	FetchHitLatency uint64 `json:"fetch_hit_latency"`

	// FetchMissLatency is the instruction-cache miss latency.
	// Default: 10 cycles.
	FetchMissLatency uint64 `json:"fetch_miss_latency"`
}

// DefaultTimingConfig returns the default timing values.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		ALULatency:       1,
		JumpLatency:      2,
		FetchHitLatency:  1,
		FetchMissLatency: 10,
	}
}

// LoadTimingConfig reads a timing configuration from a JSON file.
// Fields missing from the file keep their default values.
func LoadTimingConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}
