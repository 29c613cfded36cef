package codec

import (
	"math/bits"

	"github.com/mewkiz/intvec/bitio"
)

// MinimalBinary is truncated binary coding (also called minimal binary
// or Elias's "minimal" code) over the range [0, U): values are coded
// in either floor(log2(U)) or floor(log2(U))+1 bits, with the shorter
// codewords assigned to the first U2 values so that every codeword in
// [0, U) is uniquely decodable without a length prefix.
//
// U must be > 0; X must satisfy 0 <= X < U.
type MinimalBinary struct {
	U uint64
}

var _ Codec = MinimalBinary{}

// split returns k = floor(log2(U)) and u2, the number of values that
// receive the short (k-bit) codeword.
func (c MinimalBinary) split() (k uint, u2 uint64) {
	k = uint(bits.Len64(c.U)) - 1
	u2 = (uint64(1) << (k + 1)) - c.U
	return k, u2
}

func (c MinimalBinary) Write(w bitio.Writer, x uint64) (int, error) {
	if c.U == 0 {
		return 0, ErrInvalidParameter
	}
	if x >= c.U {
		return 0, ErrValueOutOfDomain
	}
	k, u2 := c.split()
	if x < u2 {
		return w.WriteBits(x, k)
	}
	// The long codeword is written as its top k bits and then its last
	// bit, matching Read, which takes the extra bit as the lowest one.
	n, err := w.WriteBits((x+u2)>>1, k)
	if err != nil {
		return n, err
	}
	m, err := w.WriteBits((x+u2)&1, 1)
	return n + m, err
}

func (c MinimalBinary) Read(r bitio.Reader) (uint64, error) {
	k, u2 := c.split()
	v, err := r.ReadBits(k)
	if err != nil {
		return 0, err
	}
	if v < u2 {
		return v, nil
	}
	bit, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	return (v<<1 | bit) - u2, nil
}

func (c MinimalBinary) Len(x uint64) int {
	if c.U == 0 || x >= c.U {
		return -1
	}
	k, u2 := c.split()
	if x < u2 {
		return int(k)
	}
	return int(k) + 1
}

