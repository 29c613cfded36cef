package intvec_test

import (
	"reflect"
	"testing"

	"github.com/mewkiz/intvec"
	"github.com/mewkiz/intvec/codec"
)

// golden seeds the test suite with the concrete scenarios of spec §8.
var golden = []struct {
	name   string
	values []uint64
	k      uint32
	codec  codec.Codec
	endian intvec.Endianness
}{
	{"small gamma BE", []uint64{1, 3, 6, 8, 13, 3}, 2, codec.Gamma{}, intvec.BigEndian},
	{"small delta BE", []uint64{1, 5, 3, 1991, 42}, 2, codec.Delta{}, intvec.BigEndian},
	{"small gamma LE", []uint64{10, 20, 30, 40, 50}, 2, codec.Gamma{}, intvec.LittleEndian},
	{"rice param BE", []uint64{1, 3, 6, 8, 13, 3}, 2, codec.Rice{K: 3}, intvec.BigEndian},
	{"gamma table LE", []uint64{1, 3, 6, 8, 13, 3, 1991, 42, 0, 7}, 3, codec.NewGammaTable(), intvec.LittleEndian},
}

func TestGoldenScenarios(t *testing.T) {
	for _, g := range golden {
		t.Run(g.name, func(t *testing.T) {
			vec, err := intvec.Build(g.values, g.k, g.codec, g.endian)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if got, want := vec.Len(), uint64(len(g.values)); got != want {
				t.Fatalf("Len() = %d, want %d", got, want)
			}
			if got := vec.IntoSlice(); !reflect.DeepEqual(got, g.values) {
				t.Fatalf("IntoSlice() = %v, want %v", got, g.values)
			}
			for i, want := range g.values {
				got, ok := vec.Get(uint64(i))
				if !ok {
					t.Fatalf("Get(%d): missing", i)
				}
				if got != want {
					t.Fatalf("Get(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

// Scenario 1: get(3) = 8 explicitly.
func TestScenarioGammaBEGetIndex3(t *testing.T) {
	vec, err := intvec.Build([]uint64{1, 3, 6, 8, 13, 3}, 2, codec.Gamma{}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := vec.Get(3); got != 8 {
		t.Fatalf("Get(3) = %d, want 8", got)
	}
}

// Scenario 2: get(3) = 1991 explicitly.
func TestScenarioDeltaBEGetIndex3(t *testing.T) {
	vec, err := intvec.Build([]uint64{1, 5, 3, 1991, 42}, 2, codec.Delta{}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := vec.Get(3); got != 1991 {
		t.Fatalf("Get(3) = %d, want 1991", got)
	}
}

// Scenario 3: get(2) = 30 explicitly.
func TestScenarioGammaLEGetIndex2(t *testing.T) {
	vec, err := intvec.Build([]uint64{10, 20, 30, 40, 50}, 2, codec.Gamma{}, intvec.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := vec.Get(2); got != 30 {
		t.Fatalf("Get(2) = %d, want 30", got)
	}
}

// Scenario 4: get(5) = 3 explicitly.
func TestScenarioRiceGetIndex5(t *testing.T) {
	vec, err := intvec.Build([]uint64{1, 3, 6, 8, 13, 3}, 2, codec.Rice{K: 3}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := vec.Get(5); got != 3 {
		t.Fatalf("Get(5) = %d, want 3", got)
	}
}

// Scenario 5: uniform MinimalBinary(10000), k=32, |V|=10000.
func TestScenarioMinimalBinaryUniform(t *testing.T) {
	const u = 10000
	values := make([]uint64, u)
	seed := uint64(2463534242)
	for i := range values {
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		values[i] = seed % u
	}

	vec, err := intvec.Build(values, 32, codec.MinimalBinary{U: u}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	if got := vec.IntoSlice(); !reflect.DeepEqual(got, values) {
		t.Fatalf("IntoSlice() did not reproduce the input")
	}
	if max := 8 * len(values); vec.MemReport().BitBufferBytes >= max {
		t.Fatalf("bit buffer size %d bytes, want < %d bytes", vec.MemReport().BitBufferBytes, max)
	}
}

// Scenario 6: empty vector and out-of-bounds access.
func TestScenarioEmptyAndOutOfBounds(t *testing.T) {
	empty, err := intvec.Build(nil, 1, codec.Gamma{}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	if _, ok := empty.Get(0); ok {
		t.Fatalf("Get(0) on empty vector should report absent")
	}
	if it := empty.Iter(); it.Len() != 0 {
		t.Fatalf("Iter().Len() = %d, want 0", it.Len())
	}
	if _, ok := empty.Iter().Next(); ok {
		t.Fatalf("Iter().Next() on empty vector should report absent")
	}

	single, err := intvec.Build([]uint64{7}, 1, codec.Gamma{}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := single.Get(1); ok {
		t.Fatalf("Get(1) on single-element vector should report absent")
	}
}

func TestBuildRejectsZeroSamplingPeriod(t *testing.T) {
	if _, err := intvec.Build([]uint64{1, 2, 3}, 0, codec.Gamma{}, intvec.BigEndian); err == nil {
		t.Fatal("expected an error for k = 0")
	}
}

func TestBuildRejectsValueOutOfDomain(t *testing.T) {
	if _, err := intvec.Build([]uint64{0, 5}, 1, codec.MinimalBinary{U: 5}, intvec.BigEndian); err == nil {
		t.Fatal("expected an error for a value outside MinimalBinary's domain")
	}
}

// Sample-table invariants of spec §3.
func TestSampleTableInvariants(t *testing.T) {
	values := make([]uint64, 97)
	for i := range values {
		values[i] = uint64(i * 3)
	}
	const k = 10
	vec, err := intvec.Build(values, k, codec.Gamma{}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}

	st := vec.SampleTable()
	wantLen := (len(values) + k - 1) / k
	if st.Len() != wantLen {
		t.Fatalf("sample table len = %d, want %d", st.Len(), wantLen)
	}
	if st.Offsets[0] != 0 {
		t.Fatalf("sample table[0].bit_offset = %d, want 0", st.Offsets[0])
	}
	for i := 1; i < st.Len(); i++ {
		if st.Offsets[i] <= st.Offsets[i-1] {
			t.Fatalf("sample table offsets not strictly increasing at %d", i)
		}
	}
}

// Endianness independence: the same values/k/codec decode identically
// under BE and LE, even though the underlying bit buffers differ.
func TestEndiannessIndependence(t *testing.T) {
	values := []uint64{0, 1, 2, 100, 1000, 7, 7, 7, 999999}
	be, err := intvec.Build(values, 3, codec.Delta{}, intvec.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	le, err := intvec.Build(values, 3, codec.Delta{}, intvec.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(be.IntoSlice(), le.IntoSlice()) {
		t.Fatalf("BE and LE vectors decoded to different sequences")
	}
	if !reflect.DeepEqual(be.IntoSlice(), values) {
		t.Fatalf("BE vector did not reproduce input")
	}
}

// Sampling period independence: the decoded sequence does not depend
// on k.
func TestSamplingPeriodIndependence(t *testing.T) {
	values := []uint64{5, 4, 3, 2, 1, 0, 10, 20, 30, 40, 50, 60, 70}
	var want []uint64
	for _, k := range []uint32{1, 2, 3, 4, 7, 100} {
		vec, err := intvec.Build(values, k, codec.Gamma{}, intvec.BigEndian)
		if err != nil {
			t.Fatal(err)
		}
		got := vec.IntoSlice()
		if want == nil {
			want = got
		} else if !reflect.DeepEqual(got, want) {
			t.Fatalf("k=%d: decoded sequence differs from k=1's", k)
		}
	}
}
