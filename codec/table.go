package codec

import "github.com/mewkiz/intvec/bitio"

// tableBits is the width of the peek window used by the table-
// accelerated decoders below. It is a compile-time constant in the
// upstream Rust crate this spec distils from (parameterised per
// instantiation); Go has no const generic integer parameters, so this
// repo fixes one width shared by all three table variants and falls
// back to the plain bit-by-bit decoder for any codeword that does not
// fit in it.
const tableBits = 12

const tableSize = 1 << tableBits

// tableEntry is a precomputed decode result for one tableBits-wide bit
// prefix: either the value and bit length of a codeword that fits
// entirely within the peeked window, or overflow, meaning the
// codeword is longer than tableBits and must be decoded the slow way.
type tableEntry struct {
	value    uint64
	bits     uint8
	overflow bool
}

// endianTables holds one precomputed table per bit-order convention a
// Reader can use. BEReader and LEReader disagree on which physical
// bits a multi-bit ReadBits peek returns first, so a table built by
// probing one of them cannot be reused for the other: the two halves
// below are built independently and tableRead picks the one matching
// the Reader it was actually handed.
type endianTables struct {
	be *[tableSize]tableEntry
	le *[tableSize]tableEntry
}

// buildEndianTables probes decode against every possible tableBits-
// wide bit prefix, once for each endianness, by feeding it through a
// throwaway Buffer and running the ordinary (non-table) decode
// function against it; an ErrShortBuffer means the codeword needs more
// than tableBits bits, so that entry is marked as overflow. This keeps
// the three table variants a pure speed layer over their plain
// counterparts: there is exactly one place (Gamma.Read/Delta.Read/
// Zeta.Read) that defines decode semantics, and the tables can never
// drift from it.
func buildEndianTables(decode func(r bitio.Reader) (uint64, error)) endianTables {
	return endianTables{
		be: buildTable(decode, func(buf *bitio.Buffer) bitio.Reader { return bitio.NewBEReader(buf) },
			func(prefix int) uint64 { return uint64(prefix) << (64 - tableBits) }),
		le: buildTable(decode, func(buf *bitio.Buffer) bitio.Reader { return bitio.NewLEReader(buf) },
			func(prefix int) uint64 { return uint64(prefix) }),
	}
}

func buildTable(decode func(r bitio.Reader) (uint64, error), newReader func(*bitio.Buffer) bitio.Reader, packPrefix func(prefix int) uint64) *[tableSize]tableEntry {
	var table [tableSize]tableEntry
	for prefix := 0; prefix < tableSize; prefix++ {
		buf := &bitio.Buffer{
			Words: []uint64{packPrefix(prefix)},
			NBits: tableBits,
		}
		r := newReader(buf)
		v, err := decode(r)
		if err != nil {
			table[prefix] = tableEntry{overflow: true}
			continue
		}
		table[prefix] = tableEntry{value: v, bits: uint8(r.BitPos())}
	}
	return &table
}

// tableRead selects the table matching r's bit-order convention and
// falls back to slow (no table, no drift risk) for any Reader
// implementation neither table was built for.
func tableRead(r bitio.Reader, tables endianTables, slow func(r bitio.Reader) (uint64, error)) (uint64, error) {
	var table *[tableSize]tableEntry
	switch r.(type) {
	case *bitio.BEReader:
		table = tables.be
	case *bitio.LEReader:
		table = tables.le
	default:
		return slow(r)
	}

	save := r.BitPos()
	peek, err := r.ReadBits(tableBits)
	if err != nil {
		r.SetBitPos(save)
		return slow(r)
	}
	e := table[peek]
	if e.overflow {
		r.SetBitPos(save)
		return slow(r)
	}
	r.SetBitPos(save + uint64(e.bits))
	return e.value, nil
}

// GammaTable is a table-accelerated Gamma decoder: semantically
// identical to Gamma, but short codewords are resolved with a single
// table lookup instead of an unary scan followed by a bit read. It
// works correctly under both BigEndian and LittleEndian Vectors.
type GammaTable struct {
	tables endianTables
}

// NewGammaTable precomputes the decode tables and returns a
// ready-to-use GammaTable.
func NewGammaTable() *GammaTable {
	return &GammaTable{tables: buildEndianTables((Gamma{}).Read)}
}

var _ Codec = (*GammaTable)(nil)

func (c *GammaTable) Write(w bitio.Writer, x uint64) (int, error) { return (Gamma{}).Write(w, x) }
func (c *GammaTable) Len(x uint64) int                            { return (Gamma{}).Len(x) }
func (c *GammaTable) Read(r bitio.Reader) (uint64, error) {
	return tableRead(r, c.tables, (Gamma{}).Read)
}

// DeltaTable is a table-accelerated Delta decoder. It works correctly
// under both BigEndian and LittleEndian Vectors.
type DeltaTable struct {
	tables endianTables
}

// NewDeltaTable precomputes the decode tables and returns a
// ready-to-use DeltaTable.
func NewDeltaTable() *DeltaTable {
	return &DeltaTable{tables: buildEndianTables((Delta{}).Read)}
}

var _ Codec = (*DeltaTable)(nil)

func (c *DeltaTable) Write(w bitio.Writer, x uint64) (int, error) { return (Delta{}).Write(w, x) }
func (c *DeltaTable) Len(x uint64) int                            { return (Delta{}).Len(x) }
func (c *DeltaTable) Read(r bitio.Reader) (uint64, error) {
	return tableRead(r, c.tables, (Delta{}).Read)
}

// ZetaTable is a table-accelerated Zeta decoder, parameterised by K at
// construction the same way Zeta itself is. It works correctly under
// both BigEndian and LittleEndian Vectors.
type ZetaTable struct {
	k      uint
	tables endianTables
}

// NewZetaTable precomputes the decode tables for Zeta(k) and returns a
// ready-to-use ZetaTable.
func NewZetaTable(k uint) *ZetaTable {
	return &ZetaTable{k: k, tables: buildEndianTables((Zeta{K: k}).Read)}
}

var _ Codec = (*ZetaTable)(nil)

func (c *ZetaTable) Write(w bitio.Writer, x uint64) (int, error) {
	return (Zeta{K: c.k}).Write(w, x)
}
func (c *ZetaTable) Len(x uint64) int { return (Zeta{K: c.k}).Len(x) }
func (c *ZetaTable) Read(r bitio.Reader) (uint64, error) {
	return tableRead(r, c.tables, (Zeta{K: c.k}).Read)
}

// K returns the zeta parameter this table was built for.
func (c *ZetaTable) K() uint { return c.k }
