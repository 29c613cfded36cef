package bitio

// Buffer is a dense sequence of bits stored as 64-bit words. It is the
// bit buffer of spec §3: mutable while a Writer is appending to it,
// frozen thereafter and shared read-only by any number of Readers.
//
// Trailing bits of the last word beyond NBits are unspecified; callers
// must not rely on them being zero.
type Buffer struct {
	Words []uint64
	NBits uint64
}

// WordBytes returns the number of bytes actually backing Words, i.e.
// len(Words)*8. This is the figure memory-footprint reporting uses for
// the bit buffer, since the last word is allocated in full even if
// NBits does not use all of it.
func (b *Buffer) WordBytes() int {
	return len(b.Words) * 8
}

func mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

func ensureWord(words []uint64, wordIdx int) []uint64 {
	for wordIdx >= len(words) {
		words = append(words, 0)
	}
	return words
}
