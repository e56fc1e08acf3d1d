// Package bitpack splits and joins fixed-width bit fields inside a single
// machine word. Fields are addressed most significant first, matching the
// legacy wire layout of both the frequency and the code words.
package bitpack

// Split extracts n fields of the given width from the low n*width bits of
// word, most significant field first. Bits above the low n*width are
// ignored.
func Split(word uint32, width, n int) []uint8 {
	mask := uint32(1)<<width - 1
	fields := make([]uint8, n)

	for i := range fields {
		shift := (n - 1 - i) * width
		fields[i] = uint8(word >> shift & mask)
	}

	return fields
}

// Join packs the fields into a single word, the first field ending up most
// significant. Field values wider than width are truncated to it.
func Join(fields []uint8, width int) (word uint32) {
	mask := uint32(1)<<width - 1

	for _, field := range fields {
		word = word<<width | uint32(field)&mask
	}

	return word
}
