package codec

import (
	"math"
	"math/bits"

	"github.com/mewkiz/intvec/bitio"
)

// Delta is the Elias delta code: the exponent e = floor(log2(x+1)) is
// itself Gamma-coded, followed by the e-bit binary remainder.
//
//	delta(x) = gamma(e) . binary(x+1 - 2^e, e)
//
// Like Gamma, it cannot represent math.MaxUint64.
type Delta struct{}

var _ Codec = Delta{}

func (Delta) Write(w bitio.Writer, x uint64) (int, error) {
	if x == math.MaxUint64 {
		return 0, ErrValueOutOfDomain
	}
	v := x + 1
	e := uint64(bits.Len64(v)) - 1

	n, err := (Gamma{}).Write(w, e)
	if err != nil {
		return n, err
	}
	m, err := w.WriteBits(v, uint(e))
	return n + m, err
}

func (Delta) Read(r bitio.Reader) (uint64, error) {
	e, err := (Gamma{}).Read(r)
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

func (Delta) Len(x uint64) int {
	if x == math.MaxUint64 {
		return -1
	}
	e := uint64(bits.Len64(x+1)) - 1
	return (Gamma{}).Len(e) + int(e)
}
