package codec

import (
	"math"
	"math/bits"

	"github.com/mewkiz/intvec/bitio"
)

// Zeta is the Boldi–Vigna zeta code with parameter K >= 1:
//
//	h = floor(log2(x+1) / K)
//	zeta(x) = unary(h) . minimal_binary(x+1 - 2^(h*K), u)
//	  where u = 2^((h+1)*K) - 2^(h*K)
//
// Zeta(1) degenerates to Gamma: u is a power of two, so the minimal
// binary remainder is a plain h-bit binary field, matching Gamma's
// unary-exponent-plus-mantissa shape exactly.
//
// Like Gamma and Delta, Zeta computes x+1 internally and so cannot
// represent math.MaxUint64.
type Zeta struct {
	K uint
}

var _ Codec = Zeta{}

func (c Zeta) block(v uint64) (h uint64, u uint64) {
	msb := uint64(bits.Len64(v)) - 1
	h = msb / uint64(c.K)
	u = (uint64(1) << ((h + 1) * uint64(c.K))) - (uint64(1) << (h * uint64(c.K)))
	return h, u
}

func (c Zeta) Write(w bitio.Writer, x uint64) (int, error) {
	if c.K == 0 {
		return 0, ErrInvalidParameter
	}
	if x == math.MaxUint64 {
		return 0, ErrValueOutOfDomain
	}
	v := x + 1
	h, u := c.block(v)
	left := uint64(1) << (h * uint64(c.K))

	n, err := w.WriteUnary(h)
	if err != nil {
		return n, err
	}
	m, err := (MinimalBinary{U: u}).Write(w, v-left)
	return n + m, err
}

func (c Zeta) Read(r bitio.Reader) (uint64, error) {
	h, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	left := uint64(1) << (h * uint64(c.K))
	u := (uint64(1) << ((h + 1) * uint64(c.K))) - left

	rem, err := (MinimalBinary{U: u}).Read(r)
	if err != nil {
		return 0, err
	}
	v := left + rem
	return v - 1, nil
}

func (c Zeta) Len(x uint64) int {
	if c.K == 0 || x == math.MaxUint64 {
		return -1
	}
	v := x + 1
	h, u := c.block(v)
	left := uint64(1) << (h * uint64(c.K))
	ml := (MinimalBinary{U: u}).Len(v - left)
	if ml < 0 {
		return -1
	}
	return int(h) + 1 + ml
}
