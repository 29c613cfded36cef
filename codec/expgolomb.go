package codec

import "github.com/mewkiz/intvec/bitio"

// ExpGolomb is exponential-Golomb coding with parameter K:
//
//	expgolomb(x) = gamma(x >> K) . binary(x & (2^K - 1), K)
//
// K = 0 degenerates to plain Gamma.
type ExpGolomb struct {
	K uint
}

var _ Codec = ExpGolomb{}

func (c ExpGolomb) Write(w bitio.Writer, x uint64) (int, error) {
	q := x >> c.K
	r := x & lowMask(c.K)

	n, err := (Gamma{}).Write(w, q)
	if err != nil {
		return n, err
	}
	m, err := w.WriteBits(r, c.K)
	return n + m, err
}

func (c ExpGolomb) Read(r bitio.Reader) (uint64, error) {
	q, err := (Gamma{}).Read(r)
	if err != nil {
		return 0, err
	}
	rem, err := r.ReadBits(c.K)
	if err != nil {
		return 0, err
	}
	return q<<c.K | rem, nil
}

func (c ExpGolomb) Len(x uint64) int {
	q := x >> c.K
	gl := (Gamma{}).Len(q)
	if gl < 0 {
		return -1
	}
	return gl + int(c.K)
}

func lowMask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}
