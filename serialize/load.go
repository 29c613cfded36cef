package serialize

import (
	"bytes"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/icza/bitio"
	"github.com/mewkiz/intvec"
	ibitio "github.com/mewkiz/intvec/bitio"
	icodec "github.com/mewkiz/intvec/codec"
	"github.com/mewkiz/intvec/internal/bufseekio"
	"github.com/pkg/errors"
)

func decodeCodec(tag codecTag, param uint64) (icodec.Codec, error) {
	switch tag {
	case tagGamma:
		return icodec.Gamma{}, nil
	case tagDelta:
		return icodec.Delta{}, nil
	case tagExpGolomb:
		return icodec.ExpGolomb{K: uint(param)}, nil
	case tagRice:
		return icodec.Rice{K: uint(param)}, nil
	case tagZeta:
		return icodec.Zeta{K: uint(param)}, nil
	case tagMinimalBinary:
		return icodec.MinimalBinary{U: param}, nil
	case tagGammaTable:
		return icodec.NewGammaTable(), nil
	case tagDeltaTable:
		return icodec.NewDeltaTable(), nil
	case tagZetaTable:
		return icodec.NewZetaTable(uint(param)), nil
	default:
		return nil, ErrUnknownCodec
	}
}

// Load reads a Vector previously written by Save from r.
//
// Load reads r to completion before decoding anything, so that a
// truncated or corrupted stream is reported as ErrChecksumMismatch
// rather than a confusing mid-decode failure.
func Load(r io.Reader) (*intvec.Vector, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read stream")
	}
	if len(all) < 8 {
		return nil, ErrBadMagic
	}
	body, trailer := all[:len(all)-8], all[len(all)-8:]

	var wantDigest uint64
	for _, b := range trailer {
		wantDigest = wantDigest<<8 | uint64(b)
	}
	if xxhash.Sum64(body) != wantDigest {
		return nil, ErrChecksumMismatch
	}

	br := bitio.NewReader(bytes.NewReader(body))

	readBits := func(n uint8) (uint64, error) {
		v, err := br.ReadBits(n)
		return v, errors.Wrap(err, "read header")
	}

	gotMagic, err := readBits(64)
	if err != nil {
		return nil, err
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}
	version, err := readBits(8)
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, ErrUnsupportedVersion
	}
	endianVal, err := readBits(8)
	if err != nil {
		return nil, err
	}
	tagVal, err := readBits(8)
	if err != nil {
		return nil, err
	}
	param, err := readBits(64)
	if err != nil {
		return nil, err
	}
	n, err := readBits(64)
	if err != nil {
		return nil, err
	}
	k, err := readBits(32)
	if err != nil {
		return nil, err
	}
	sampleLen, err := readBits(64)
	if err != nil {
		return nil, err
	}

	c, err := decodeCodec(codecTag(tagVal), param)
	if err != nil {
		return nil, err
	}

	st := &intvec.SampleTable{Offsets: make([]uint64, sampleLen)}
	for i := range st.Offsets {
		off, err := readBits(64)
		if err != nil {
			return nil, err
		}
		st.Offsets[i] = off
	}

	nbits, err := readBits(64)
	if err != nil {
		return nil, err
	}
	wordCount, err := readBits(64)
	if err != nil {
		return nil, err
	}
	words := make([]uint64, wordCount)
	for i := range words {
		word, err := readBits(64)
		if err != nil {
			return nil, err
		}
		words[i] = word
	}

	buf := &ibitio.Buffer{Words: words, NBits: nbits}
	return intvec.FromParts(buf, st, n, uint32(k), c, intvec.Endianness(endianVal)), nil
}

// LoadFile opens and loads a Vector previously saved to a file. It
// seeks to the end of the file through a buffered ReadSeeker to size
// the read exactly, then seeks back to the start before handing the
// body to Load.
func LoadFile(path string) (*intvec.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	rs := bufseekio.NewReadSeeker(f)
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrapf(err, "seek %s", path)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek %s", path)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(rs, body); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	v, err := Load(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return v, nil
}
