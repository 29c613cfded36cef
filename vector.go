package intvec

import (
	"github.com/mewkiz/intvec/bitio"
	"github.com/mewkiz/intvec/codec"
	"github.com/mewkiz/pkg/dbg"
	"github.com/pkg/errors"
)

// A Vector is a compressed, random-access container for a sequence of
// uint64 values. It owns a packed bit buffer, a sample table, the
// element count, the sampling period, the codec, and the endianness
// chosen for it at Build time. It is immutable after Build returns.
type Vector struct {
	buf         *bitio.Buffer
	sampleTable *SampleTable
	n           uint64
	k           uint32
	codec       codec.Codec
	endian      Endianness
}

// Build encodes values into a new Vector using codec c and endianness
// e, sampling a bit offset into the sample table every k elements.
//
// Build fails with an error matching ErrInvalidParameter if k is 0, or
// ErrValueOutOfDomain if any value cannot be represented by c. On
// failure no Vector is returned and values is left untouched.
func Build(values []uint64, k uint32, c codec.Codec, e Endianness) (*Vector, error) {
	if k == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "sampling period k must be >= 1")
	}

	var bitHint uint64
	for _, v := range values {
		if l := c.Len(v); l > 0 {
			bitHint += uint64(l)
		}
	}

	w := e.newWriterSize(bitHint)
	st := &SampleTable{}

	period := uint64(k)
	for i, v := range values {
		if uint64(i)%period == 0 {
			dbg.Println("sample point:", "index", i, "bit_offset", w.Buffer().NBits)
			st.append(w.Buffer().NBits)
		}
		if _, err := c.Write(w, v); err != nil {
			return nil, errors.Wrapf(err, "encode value %d at index %d", v, i)
		}
	}
	w.Flush()

	return &Vector{
		buf:         w.Buffer(),
		sampleTable: st,
		n:           uint64(len(values)),
		k:           k,
		codec:       c,
		endian:      e,
	}, nil
}

// FromParts assembles a Vector from its already-frozen constituent
// parts without re-encoding anything. It exists for collaborators like
// package serialize that reconstruct a Vector from a prior Save, not
// for ordinary callers — Build is the contract every other caller
// should use.
func FromParts(buf *bitio.Buffer, sampleTable *SampleTable, n uint64, k uint32, c codec.Codec, e Endianness) *Vector {
	return &Vector{
		buf:         buf,
		sampleTable: sampleTable,
		n:           n,
		k:           k,
		codec:       c,
		endian:      e,
	}
}

// Len returns the number of elements in the vector.
func (v *Vector) Len() uint64 { return v.n }

// IsEmpty reports whether the vector holds zero elements.
func (v *Vector) IsEmpty() bool { return v.n == 0 }

// K returns the sampling period fixed at Build time.
func (v *Vector) K() uint32 { return v.k }

// Codec returns the codec descriptor fixed at Build time.
func (v *Vector) Codec() codec.Codec { return v.codec }

// Endianness returns the endianness fixed at Build time.
func (v *Vector) Endianness() Endianness { return v.endian }

// Buffer returns the vector's underlying bit buffer. It is shared and
// read-only; callers must not mutate it.
func (v *Vector) Buffer() *bitio.Buffer { return v.buf }

// SampleTable returns the vector's sample table. It is shared and
// read-only; callers must not mutate it.
func (v *Vector) SampleTable() *SampleTable { return v.sampleTable }

// Get returns the value at index i, or (0, false) if i is out of
// range. Complexity is one O(1) seek plus O(k) decode operations.
func (v *Vector) Get(i uint64) (uint64, bool) {
	if i >= v.n {
		return 0, false
	}
	s := i / uint64(v.k)
	r := i - s*uint64(v.k)

	reader := v.endian.newReader(v.buf)
	reader.SetBitPos(v.sampleTable.Offsets[s])

	var val uint64
	for j := uint64(0); j <= r; j++ {
		x, err := v.codec.Read(reader)
		if err != nil {
			// The bit buffer is frozen and was produced by a
			// successful Build; a decode failure here means the
			// sample-table invariants of spec §3 were violated, which
			// is a programming error, not a reportable one.
			panic("intvec: invariant violation decoding frozen buffer: " + err.Error())
		}
		val = x
	}
	return val, true
}

// MemReport is a per-field byte-size breakdown of a Vector, for
// diagnostic tooling. It is a read-only query; computing it never
// mutates the vector.
type MemReport struct {
	BitBufferBytes   int
	SampleTableBytes int
	MetadataBytes    int
}

// Total returns the sum of all fields.
func (r MemReport) Total() int {
	return r.BitBufferBytes + r.SampleTableBytes + r.MetadataBytes
}

// MemReport returns the vector's memory footprint broken down by
// owned sub-field.
func (v *Vector) MemReport() MemReport {
	return MemReport{
		BitBufferBytes:   v.buf.WordBytes(),
		SampleTableBytes: v.sampleTable.ByteSize(),
		// n (uint64), k (uint32), and the endianness tag: fixed
		// overhead independent of vector size. The codec value is not
		// counted.
		MetadataBytes: 8 + 4 + 1,
	}
}
