package bitio_test

import (
	"testing"

	"github.com/mewkiz/intvec/bitio"
)

func TestUnaryBE(t *testing.T) {
	w := bitio.NewBEWriter()
	var want uint64
	for ; want < 1000; want++ {
		if _, err := w.WriteUnary(want); err != nil {
			t.Fatalf("error writing unary: %v", err)
		}
	}
	w.Flush()

	r := bitio.NewBEReader(w.Buffer())
	for want = 0; want < 1000; want++ {
		got, err := r.ReadUnary()
		if err != nil {
			t.Fatalf("error reading unary: %v", err)
		}
		if got != want {
			t.Fatalf("unary mismatch at %d: got %d, want %d", want, got, want)
		}
	}
}

func TestUnaryLE(t *testing.T) {
	w := bitio.NewLEWriter()
	var want uint64
	for ; want < 1000; want++ {
		if _, err := w.WriteUnary(want); err != nil {
			t.Fatalf("error writing unary: %v", err)
		}
	}
	w.Flush()

	r := bitio.NewLEReader(w.Buffer())
	for want = 0; want < 1000; want++ {
		got, err := r.ReadUnary()
		if err != nil {
			t.Fatalf("error reading unary: %v", err)
		}
		if got != want {
			t.Fatalf("unary mismatch at %d: got %d, want %d", want, got, want)
		}
	}
}
