// Package loader provides program-file loading for the RV32I emulator.
//
// Two formats are supported. Binary files hold raw little-endian 32-bit
// instruction words. Hex files are text with one word per line, written in
// hexadecimal with an optional 0x prefix; blank lines and '#' comments are
// ignored. Load picks the format by file extension (.hex and .txt are
// text; everything else is binary).
package loader

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Program represents a loaded word program ready for execution.
type Program struct {
	// Words holds the instruction words in fetch order. Word 0 is loaded
	// at memory index 0 and execution starts there.
	Words []uint32
}

// Load reads a program file, choosing the format by extension.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open program file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hex", ".txt":
		return LoadHex(f)
	default:
		return LoadBinary(f)
	}
}

// LoadBinary reads raw little-endian 32-bit words from r.
func LoadBinary(r io.Reader) (*Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("program size %d is not a multiple of 4 bytes", len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return &Program{Words: words}, nil
}

// LoadHex reads hexadecimal instruction words from r, one per line.
func LoadHex(r io.Reader) (*Program, error) {
	prog := &Program{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = strings.TrimPrefix(strings.ToLower(line), "0x")
		word, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid instruction word %q: %w", lineNo, line, err)
		}
		prog.Words = append(prog.Words, uint32(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	return prog, nil
}
