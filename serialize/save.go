package serialize

import (
	"bytes"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/icza/bitio"
	"github.com/mewkiz/intvec"
	"github.com/mewkiz/intvec/codec"
	"github.com/pkg/errors"
)

// encodeCodec returns the tag and single uint64 parameter (0 if the
// codec takes none) describing c, or an error if c is not one of the
// codec types this package knows how to serialize.
func encodeCodec(c codec.Codec) (codecTag, uint64, error) {
	switch v := c.(type) {
	case codec.Gamma:
		return tagGamma, 0, nil
	case codec.Delta:
		return tagDelta, 0, nil
	case codec.ExpGolomb:
		return tagExpGolomb, uint64(v.K), nil
	case codec.Rice:
		return tagRice, uint64(v.K), nil
	case codec.Zeta:
		return tagZeta, uint64(v.K), nil
	case codec.MinimalBinary:
		return tagMinimalBinary, v.U, nil
	case *codec.GammaTable:
		return tagGammaTable, 0, nil
	case *codec.DeltaTable:
		return tagDeltaTable, 0, nil
	case *codec.ZetaTable:
		return tagZetaTable, uint64(v.K()), nil
	default:
		return 0, 0, errors.Errorf("serialize: %T has no wire representation", c)
	}
}

// Save writes v to w in the format documented in package serialize.
// It fails if v's codec is not one this package knows how to tag, or
// if writing to w fails.
func Save(w io.Writer, v *intvec.Vector) error {
	tag, param, err := encodeCodec(v.Codec())
	if err != nil {
		return err
	}

	var body bytes.Buffer
	bw := bitio.NewWriter(&body)

	fields := []struct {
		val uint64
		n   uint8
	}{
		{magic, 64},
		{uint64(formatVersion), 8},
		{uint64(v.Endianness()), 8},
		{uint64(tag), 8},
		{param, 64},
		{v.Len(), 64},
		{uint64(v.K()), 32},
		{uint64(v.SampleTable().Len()), 64},
	}
	for _, f := range fields {
		if err := bw.WriteBits(f.val, f.n); err != nil {
			return errors.Wrap(err, "write header")
		}
	}
	for _, off := range v.SampleTable().Offsets {
		if err := bw.WriteBits(off, 64); err != nil {
			return errors.Wrap(err, "write sample table")
		}
	}

	buf := v.Buffer()
	if err := bw.WriteBits(buf.NBits, 64); err != nil {
		return errors.Wrap(err, "write bit count")
	}
	if err := bw.WriteBits(uint64(len(buf.Words)), 64); err != nil {
		return errors.Wrap(err, "write word count")
	}
	for _, word := range buf.Words {
		if err := bw.WriteBits(word, 64); err != nil {
			return errors.Wrap(err, "write payload")
		}
	}
	if err := bw.Close(); err != nil {
		return errors.Wrap(err, "flush body")
	}

	digest := xxhash.Sum64(body.Bytes())

	if _, err := w.Write(body.Bytes()); err != nil {
		return errors.Wrap(err, "write body")
	}
	var trailer [8]byte
	for i := range trailer {
		trailer[i] = byte(digest >> (56 - 8*i))
	}
	if _, err := w.Write(trailer[:]); err != nil {
		return errors.Wrap(err, "write checksum")
	}
	return nil
}
