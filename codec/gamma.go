package codec

import (
	"math"
	"math/bits"

	"github.com/mewkiz/intvec/bitio"
)

// Gamma is the Elias gamma code:
//
//	gamma(x) = unary(e) . binary(x+1 - 2^e, e), where e = floor(log2(x+1))
//
// It accepts any x in [0, math.MaxUint64-1]; math.MaxUint64 itself
// would require encoding x+1 = 0, which Gamma has no representation
// for, so Write rejects it with ErrValueOutOfDomain and Len returns -1.
type Gamma struct{}

var _ Codec = Gamma{}

func (Gamma) Write(w bitio.Writer, x uint64) (int, error) {
	if x == math.MaxUint64 {
		return 0, ErrValueOutOfDomain
	}
	v := x + 1
	e := uint(bits.Len64(v)) - 1

	n, err := w.WriteUnary(uint64(e))
	if err != nil {
		return n, err
	}
	m, err := w.WriteBits(v, e)
	return n + m, err
}

func (Gamma) Read(r bitio.Reader) (uint64, error) {
	e, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	m, err := r.ReadBits(uint(e))
	if err != nil {
		return 0, err
	}
	v := (uint64(1) << e) | m
	return v - 1, nil
}

func (Gamma) Len(x uint64) int {
	if x == math.MaxUint64 {
		return -1
	}
	e := bits.Len64(x + 1) - 1
	return 2*e + 1
}
