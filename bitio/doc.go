// Package bitio implements a random-access, dual-endian bit writer and
// reader over an in-memory word buffer.
//
// A Writer appends a specified number of low-order bits from a 64-bit
// word, or a unary run, to a growable []uint64 buffer. A Reader peeks
// and consumes bits from a cursor positioned anywhere in a frozen
// Buffer; SetBitPos/BitPos give O(1) seeking, which is what lets a
// caller jump straight to a sample point instead of decoding a stream
// from its start.
//
// Two endianness variants are provided, BE and LE, which differ only
// in how a multi-bit token is laid into the underlying words:
//
//   - BE: the most-significant unused bit of the current word is
//     written/read first.
//   - LE: the least-significant unused bit of the current word is
//     written/read first.
//
// Both variants produce the same bit length for the same sequence of
// WriteBits/WriteUnary calls; only the bit order within each word
// differs. Pick one endianness and use it consistently for both the
// writer that built a Buffer and the reader that reads it back.
package bitio
