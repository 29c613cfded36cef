package bitio_test

import (
	"testing"

	"github.com/mewkiz/intvec/bitio"
	"github.com/stretchr/testify/require"
)

func TestSeekBE(t *testing.T) {
	w := bitio.NewBEWriter()
	offsets := make([]uint64, 0, 10)
	for i := uint64(0); i < 10; i++ {
		offsets = append(offsets, w.Buffer().NBits)
		_, err := w.WriteBits(i, 4)
		require.NoError(t, err)
	}
	w.Flush()

	r := bitio.NewBEReader(w.Buffer())
	// Read out of order by seeking directly to each sample's offset.
	for i := uint64(9); ; i-- {
		r.SetBitPos(offsets[i])
		require.Equal(t, offsets[i], r.BitPos())
		got, err := r.ReadBits(4)
		require.NoError(t, err)
		require.Equal(t, i, got)
		if i == 0 {
			break
		}
	}
}

func TestSeekLE(t *testing.T) {
	w := bitio.NewLEWriter()
	offsets := make([]uint64, 0, 10)
	for i := uint64(0); i < 10; i++ {
		offsets = append(offsets, w.Buffer().NBits)
		_, err := w.WriteBits(i, 4)
		require.NoError(t, err)
	}
	w.Flush()

	r := bitio.NewLEReader(w.Buffer())
	for i := uint64(9); ; i-- {
		r.SetBitPos(offsets[i])
		got, err := r.ReadBits(4)
		require.NoError(t, err)
		require.Equal(t, i, got)
		if i == 0 {
			break
		}
	}
}
