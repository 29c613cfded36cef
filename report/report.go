package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mewkiz/intvec"
	"github.com/pkg/errors"
)

// Entry is one row of a ComparisonReport: the byte size achieved by a
// single representation of the same sequence of values.
type Entry struct {
	Name  string
	Bytes int
}

// ComparisonReport breaks down how a Vector's footprint compares to
// its raw (8 bytes/value) encoding and to general-purpose byte-level
// compressors applied to that same raw encoding.
type ComparisonReport struct {
	Vector  intvec.MemReport
	Entries []Entry
}

// RawBytes returns the size of the uncompressed, 8-bytes-per-value
// baseline representation.
func (r ComparisonReport) RawBytes() int {
	for _, e := range r.Entries {
		if e.Name == "raw" {
			return e.Bytes
		}
	}
	return 0
}

// VectorRatio returns the Vector's total footprint as a fraction of
// the raw baseline. Values below 1.0 indicate the Vector is smaller.
func (r ComparisonReport) VectorRatio() float64 {
	raw := r.RawBytes()
	if raw == 0 {
		return 0
	}
	return float64(r.Vector.Total()) / float64(raw)
}

var codecs = []byteCodec{lz4Codec{}, zstdCodec{}}

// Compare measures v's memory footprint against raw, the same
// sequence of values before encoding, plus lz4 and zstd applied to
// raw's 8-bytes-per-value packing.
//
// Compare fails only if one of the byte-level compressors errors;
// this can only happen as a result of an allocation failure deep
// inside the compressor, since the input is always well-formed.
func Compare(v *intvec.Vector, raw []uint64) (ComparisonReport, error) {
	packed := rawBytes(raw)

	entries := []Entry{{Name: "raw", Bytes: len(packed)}}
	for _, c := range codecs {
		compressed, err := c.compress(packed)
		if err != nil {
			return ComparisonReport{}, errors.Wrapf(err, "compress with %s", c.name())
		}
		entries = append(entries, Entry{Name: c.name(), Bytes: len(compressed)})
	}

	return ComparisonReport{
		Vector:  v.MemReport(),
		Entries: entries,
	}, nil
}

// WriteCSV writes the report as a CSV table of representation name
// against byte size, with a final row for the Vector's total
// footprint.
func (r ComparisonReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"representation", "bytes"}); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, e := range r.Entries {
		row := []string{e.Name, strconv.Itoa(e.Bytes)}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write row %q", e.Name)
		}
	}
	row := []string{"intvec", strconv.Itoa(r.Vector.Total())}
	if err := cw.Write(row); err != nil {
		return errors.Wrap(err, "write intvec row")
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush")
}
