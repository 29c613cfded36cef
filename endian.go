package intvec

import "github.com/mewkiz/intvec/bitio"

// Endianness selects which of bitio's two bit-layout conventions a
// Vector's bit buffer uses. It does not change which values a codec
// can represent or how many bits it needs — only the physical bit
// order within each 64-bit word.
type Endianness uint8

const (
	// BigEndian: the most-significant unused bit of the current word
	// is written/read first.
	BigEndian Endianness = iota
	// LittleEndian: the least-significant unused bit of the current
	// word is written/read first.
	LittleEndian
)

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "Endianness(?)"
	}
}

func (e Endianness) newWriterSize(bitHint uint64) bitio.Writer {
	switch e {
	case LittleEndian:
		return bitio.NewLEWriterSize(bitHint)
	default:
		return bitio.NewBEWriterSize(bitHint)
	}
}

func (e Endianness) newReader(buf *bitio.Buffer) bitio.Reader {
	switch e {
	case LittleEndian:
		return bitio.NewLEReader(buf)
	default:
		return bitio.NewBEReader(buf)
	}
}
