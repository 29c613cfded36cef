package bitio_test

import (
	"testing"

	"github.com/mewkiz/intvec/bitio"
	"github.com/stretchr/testify/require"
)

func TestWriteBitsRoundTripBE(t *testing.T) {
	w := bitio.NewBEWriter()
	values := []struct {
		v uint64
		n uint
	}{
		{0x1, 1}, {0x0, 1}, {0x3, 2}, {0x2A, 6}, {0xFFFFFFFFFFFFFFFF, 64},
		{0x0, 63}, {0x5, 3}, {0x123, 9},
	}
	for _, tc := range values {
		_, err := w.WriteBits(tc.v, tc.n)
		require.NoError(t, err)
	}
	w.Flush()

	r := bitio.NewBEReader(w.Buffer())
	for _, tc := range values {
		got, err := r.ReadBits(tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.v&mask(tc.n), got)
	}
}

func TestWriteBitsRoundTripLE(t *testing.T) {
	w := bitio.NewLEWriter()
	values := []struct {
		v uint64
		n uint
	}{
		{0x1, 1}, {0x0, 1}, {0x3, 2}, {0x2A, 6}, {0xFFFFFFFFFFFFFFFF, 64},
		{0x0, 63}, {0x5, 3}, {0x123, 9},
	}
	for _, tc := range values {
		_, err := w.WriteBits(tc.v, tc.n)
		require.NoError(t, err)
	}
	w.Flush()

	r := bitio.NewLEReader(w.Buffer())
	for _, tc := range values {
		got, err := r.ReadBits(tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.v&mask(tc.n), got)
	}
}

func TestWriteBitsZero(t *testing.T) {
	w := bitio.NewBEWriter()
	n, err := w.WriteBits(0x1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, uint64(0), w.Flush())
}

func TestWriteBitsInvalidCount(t *testing.T) {
	w := bitio.NewBEWriter()
	_, err := w.WriteBits(0, 65)
	require.ErrorIs(t, err, bitio.ErrBitCount)
}

func TestReadPastEndIsShortBuffer(t *testing.T) {
	w := bitio.NewBEWriter()
	_, err := w.WriteBits(0x3, 2)
	require.NoError(t, err)
	w.Flush()

	r := bitio.NewBEReader(w.Buffer())
	_, err = r.ReadBits(3)
	require.ErrorIs(t, err, bitio.ErrShortBuffer)
}

func mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}
