// Package report compares the memory footprint of an intvec.Vector
// against its raw, uncompressed representation and against a couple of
// general-purpose byte-level compressors applied to that same raw
// representation, for reporting how much of the win comes from the
// codec specifically versus from compression in general.
package report

import (
	"encoding/binary"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// byteCodec compresses a byte slice. Both implementations below are
// safe for concurrent use: each pools its underlying compressor or
// encoder rather than holding one per call.
type byteCodec interface {
	name() string
	compress(data []byte) ([]byte, error)
}

var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

type lz4Codec struct{}

func (lz4Codec) name() string { return "lz4" }

func (lz4Codec) compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)
	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic("report: failed to create zstd encoder: " + err.Error())
		}
		return enc
	},
}

type zstdCodec struct{}

func (zstdCodec) name() string { return "zstd" }

func (zstdCodec) compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

// rawBytes packs values little-endian, 8 bytes apiece: the baseline
// every byteCodec and the intvec codec are measured against.
func rawBytes(values []uint64) []byte {
	out := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out
}
