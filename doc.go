/*
Links:
	https://www.dsi.unimi.it/~vigna/papers.php (Boldi, Vigna — Elias–Fano/ζ codes)
	https://en.wikipedia.org/wiki/Elias_gamma_coding
	https://en.wikipedia.org/wiki/Elias_delta_coding
	https://en.wikipedia.org/wiki/Golomb_coding
	https://en.wikipedia.org/wiki/Truncated_binary_encoding
*/

// Package intvec provides a compressed, random-access container for
// sequences of unsigned 64-bit integers.
//
// A sequence is encoded once into a packed bit-stream using a chosen
// variable-length integer code (package codec), and a small sparse
// sample table is built alongside it so that any individual element
// can be recovered in bounded time without decoding the whole prefix.
// The container is immutable after Build: values are materialised
// lazily, either one at a time via Get or in order via Iter.
package intvec
