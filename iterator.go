package intvec

import (
	"github.com/mewkiz/intvec/bitio"
	"github.com/mewkiz/intvec/codec"
)

// Iterator yields a Vector's values in index order by a single linear
// pass over the bit buffer; it never consults the sample table. An
// Iterator is finite and single-pass: once exhausted, create a new one
// with Iter to scan again. Its lifetime must not outlive the Vector it
// was created from, since it holds a non-owning reference to the
// vector's bit buffer.
type Iterator struct {
	reader    bitio.Reader
	codec     codec.Codec
	remaining uint64
}

// Iter returns a fresh Iterator positioned before the first element.
func (v *Vector) Iter() *Iterator {
	return &Iterator{
		reader:    v.endian.newReader(v.buf),
		codec:     v.codec,
		remaining: v.n,
	}
}

// Next returns the next value and true, or (0, false) once the
// iterator is exhausted.
func (it *Iterator) Next() (uint64, bool) {
	if it.remaining == 0 {
		return 0, false
	}
	x, err := it.codec.Read(it.reader)
	if err != nil {
		panic("intvec: invariant violation decoding frozen buffer: " + err.Error())
	}
	it.remaining--
	return x, true
}

// Len returns the number of values not yet yielded.
func (it *Iterator) Len() uint64 { return it.remaining }

// IntoSlice materialises the entire vector into a freshly allocated
// slice, equivalent to collecting Iter() until exhaustion.
func (v *Vector) IntoSlice() []uint64 {
	out := make([]uint64, 0, v.n)
	it := v.Iter()
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, x)
	}
	return out
}
