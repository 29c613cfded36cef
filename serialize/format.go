// Package serialize saves a Vector to a binary stream and reconstructs
// it later, without re-running Build or re-validating each value
// against its codec's domain. The wire format is a thin header (magic,
// version, endianness, codec descriptor, element count, sampling
// period, sample table) followed by the vector's packed bit-buffer
// words, closed off with an xxhash64 digest of everything that came
// before it.
package serialize

import "github.com/pkg/errors"

// magic identifies an intvec stream; it doubles as a quick rejection
// of non-intvec input before any allocation happens.
const magic = uint64(0x696e_7476_6563_3031) // "intvec01" in ASCII

const formatVersion = 1

// codecTag identifies which codec.Codec a stream was written with, so
// Load can reconstruct the right concrete type without a registry.
type codecTag uint8

const (
	tagGamma codecTag = iota
	tagDelta
	tagExpGolomb
	tagRice
	tagZeta
	tagMinimalBinary
	tagGammaTable
	tagDeltaTable
	tagZetaTable
)

// ErrBadMagic is returned by Load when the stream does not begin with
// the intvec magic number.
var ErrBadMagic = errors.New("serialize: not an intvec stream")

// ErrUnsupportedVersion is returned by Load when the stream's format
// version is not the one this package writes.
var ErrUnsupportedVersion = errors.New("serialize: unsupported format version")

// ErrChecksumMismatch is returned by Load when the trailing xxhash64
// digest does not match the stream's contents, meaning the data was
// truncated or corrupted in transit.
var ErrChecksumMismatch = errors.New("serialize: checksum mismatch")

// ErrUnknownCodec is returned by Load when a stream's codec tag is not
// one this version of the package can decode.
var ErrUnknownCodec = errors.New("serialize: unknown codec tag")
