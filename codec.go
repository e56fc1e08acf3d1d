package huffcode

import (
	"fmt"

	"github.com/indigo-web/huffcode/config"
)

// Codec is the validating boundary around Build. It owns no state besides
// its config; concurrent use over different inputs needs no coordination.
type Codec struct {
	cfg *config.Config
}

// New returns a codec driven by the given config. Passing nil uses
// config.Default().
func New(cfg *config.Config) *Codec {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Codec{cfg: cfg}
}

// Table validates the frequency slice against the configured input policy
// and builds the code table. The slice must contain exactly one value per
// symbol, in symbol id order.
func (c *Codec) Table(freqs []uint8) (Table, error) {
	if len(freqs) != AlphabetSize {
		return Table{}, ErrAlphabetSize
	}

	var f Frequencies

	for id, freq := range freqs {
		if freq > MaxFrequency {
			switch c.cfg.Input.OutOfRange {
			case config.Clamp:
				freq = MaxFrequency
			default:
				return Table{}, fmt.Errorf("%w: symbol %d has frequency %d", ErrFrequencyRange, id, freq)
			}
		}

		f[id] = freq
	}

	return Build(f), nil
}

// EncodeWord is the legacy interface: the low 25 bits of word carry the
// five frequencies (symbol a most significant), the result carries the
// five packed 4-bit codes (symbol a most significant). It is total, since
// 5-bit fields cannot leave the legal range. Lengths are not part of the
// legacy word; callers that need to decode must use Table instead.
func (c *Codec) EncodeWord(word uint32) uint32 {
	return Build(UnpackFrequencies(word)).Pack()
}

// Render formats the table for humans using the configured symbol labels,
// one "label len bits" triple per line.
func (c *Codec) Render(t Table) string {
	out := make([]byte, 0, 64)

	for id, code := range t {
		out = append(out, c.cfg.Output.Labels[id], ' ', '0'+code.Len, ' ')
		out = appendBits(out, code)
		out = append(out, '\n')
	}

	return string(out)
}

// appendBits writes the code as its true-length binary string, e.g. a
// length-3 code 0b011 renders as "011".
func appendBits(dst []byte, code Code) []byte {
	for bit := int(code.Len) - 1; bit >= 0; bit-- {
		dst = append(dst, '0'+code.Bits>>bit&1)
	}

	return dst
}
