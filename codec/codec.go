// Package codec implements the variable-length integer codes a
// Vector encodes its elements with: Gamma, Delta, ExpGolomb(k),
// Zeta(k), Rice(k), MinimalBinary(u), and table-accelerated Gamma,
// Delta, and Zeta variants.
//
// Every codec exposes the same Codec interface over a bitio.Writer or
// bitio.Reader, so the compressed vector package can hold a codec
// value once at construction and drive it uniformly without knowing
// which code was chosen.
package codec

import (
	"errors"

	"github.com/mewkiz/intvec/bitio"
)

// ErrInvalidParameter is returned when a codec's run-time parameter is
// outside its domain, e.g. Zeta(0) or MinimalBinary(0).
var ErrInvalidParameter = errors.New("codec: parameter out of domain")

// ErrValueOutOfDomain is returned when a value cannot be represented
// by the chosen codec, e.g. MinimalBinary(u) given x >= u, or a value
// that would overflow a codec's internal x+1 computation.
var ErrValueOutOfDomain = errors.New("codec: value out of domain")

// Codec is a pure, stateless value selecting one variable-length
// integer code, with any run-time parameter bound as a struct field.
type Codec interface {
	// Write encodes x into w and returns the number of bits written.
	Write(w bitio.Writer, x uint64) (int, error)

	// Read decodes one codeword from r.
	Read(r bitio.Reader) (uint64, error)

	// Len returns the bit length Write(x) would emit, without writing
	// anything. It must equal the length Write actually writes. Len
	// returns -1 as a hint that x is outside this codec's domain;
	// Write's returned error remains the authoritative domain check,
	// since Len is only consulted to pre-size a buffer before a build
	// pass that will call Write regardless.
	Len(x uint64) int
}
