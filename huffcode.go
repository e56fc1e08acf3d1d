// Package huffcode builds a static prefix (Huffman) code table for a fixed
// five-symbol alphabet from observed symbol frequencies, and packs the
// resulting codewords into uniform 4-bit fields.
//
// The construction is deterministic: ties between equal weights are broken
// by the smallest symbol id contained in a subtree, which forms a strict
// total order with the weight. Building a table is a pure function of the
// frequency vector; nothing survives a call.
package huffcode

import (
	"github.com/indigo-web/huffcode/internal/bitpack"
)

// Symbol is an alphabet symbol id. The alphabet is fixed: ids 0 through 4
// correspond to symbols a through e.
type Symbol uint8

const (
	// AlphabetSize is the number of symbols in the fixed alphabet.
	AlphabetSize = 5
	// MaxFrequency is the largest legal frequency value (5-bit fields in
	// the legacy frequency word).
	MaxFrequency = 31

	freqFieldBits = 5
	codeFieldBits = 4
)

// Frequencies holds one frequency per symbol, in symbol id order. Build
// accepts any values; the legal range [0, MaxFrequency] is enforced by
// Codec at the boundary.
type Frequencies [AlphabetSize]uint8

// UnpackFrequencies extracts five frequencies from the legacy 25-bit word,
// where symbol a occupies the most significant 5-bit field and symbol e
// the least significant. Bits above the low 25 are ignored.
func UnpackFrequencies(word uint32) (f Frequencies) {
	copy(f[:], bitpack.Split(word, freqFieldBits, AlphabetSize))

	return f
}

// Code is a single symbol's codeword. Bits holds the root-to-leaf path,
// most significant (root-level) decision first, in the low Len bits; all
// higher bits are zero. The 4-bit zero-left-padded field used by the
// packed representation is therefore Bits itself.
//
// Bits alone is ambiguous: codewords of different lengths may pad to the
// same 4-bit pattern, so Len must always accompany it.
type Code struct {
	Len  uint8
	Bits uint8
}

// Table maps every symbol id to its codeword. A Table is only ever
// produced whole; all five entries are valid.
type Table [AlphabetSize]Code

// Build computes the code table for the given frequencies. It is total:
// any frequency values produce a valid prefix code, including the
// all-zero vector, whose shape is decided purely by symbol id order.
func Build(f Frequencies) Table {
	nodes, root := buildTree(f)

	return assignCodes(&nodes, root)
}

// Pack concatenates the five 4-bit code fields into the legacy 20-bit
// word, symbol a in the most significant field. The word does not carry
// lengths and thus cannot be decoded on its own; it exists solely for
// compatibility with consumers of the legacy layout.
func (t Table) Pack() uint32 {
	fields := make([]uint8, AlphabetSize)
	for i, c := range t {
		fields[i] = c.Bits
	}

	return bitpack.Join(fields, codeFieldBits)
}
