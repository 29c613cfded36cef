package codec

import "github.com/mewkiz/intvec/bitio"

// Rice is Golomb–Rice coding with parameter K:
//
//	rice(x) = unary(x >> K) . binary(x & (2^K - 1), K)
//
// Rice accepts the full uint64 domain, including math.MaxUint64: unlike
// Gamma/Delta/ExpGolomb, it never computes x+1 internally. This is the
// same shape as FLAC's partitioned Rice residual coding: an
// unary-coded high part followed by a K-bit binary low part.
type Rice struct {
	K uint
}

var _ Codec = Rice{}

func (c Rice) Write(w bitio.Writer, x uint64) (int, error) {
	high := x >> c.K
	low := x & lowMask(c.K)

	n, err := w.WriteUnary(high)
	if err != nil {
		return n, err
	}
	m, err := w.WriteBits(low, c.K)
	return n + m, err
}

func (c Rice) Read(r bitio.Reader) (uint64, error) {
	high, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	low, err := r.ReadBits(c.K)
	if err != nil {
		return 0, err
	}
	return high<<c.K | low, nil
}

func (c Rice) Len(x uint64) int {
	high := x >> c.K
	return int(high) + 1 + int(c.K)
}
