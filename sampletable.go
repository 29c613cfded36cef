package intvec

// SampleTable is an ordered list of bit offsets: entry s records the
// bit position at which element index s*K begins, for the sampling
// period K fixed at build time. Its only job is O(1) seek; the
// implicit sample number (s*K) is recomputed from s and K rather than
// stored, since spec §9 explicitly permits dropping it.
//
// This plays the same role as a FLAC SeekTable's list of SeekPoints
// (see the meta package of this repo's teacher, github.com/mewkiz/flac):
// an ordered list of offsets that lets a reader jump near a target
// element instead of decoding a stream from its start. Unlike a FLAC
// SeekPoint, there is no stored sample number or per-block size field —
// both are derived from K, which the compressed vector never changes
// after Build.
type SampleTable struct {
	Offsets []uint64
}

func (t *SampleTable) append(bitOffset uint64) {
	t.Offsets = append(t.Offsets, bitOffset)
}

// Len returns the number of recorded samples.
func (t *SampleTable) Len() int {
	return len(t.Offsets)
}

// ByteSize returns the number of bytes the sample table occupies.
func (t *SampleTable) ByteSize() int {
	return len(t.Offsets) * 8
}
