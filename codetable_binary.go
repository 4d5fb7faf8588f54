package huffman

import (
	"bytes"
	"encoding"

	"github.com/icza/bitio"
)

// Binary layout of a CodeTable, most significant bit first:
//
//     count   9 bits           number of entries, 0 .. 256
//     repeated count times, in ascending symbol order:
//       symbol  8 bits
//       size    6 bits         code length minus 1
//       code    size+1 bits
//     zero bits up to the next byte boundary
//
const (
	countBits  = 9
	symbolBits = 8
	sizeBits   = 6
)

// MarshalBinary renders the table in its compact binary form.
func (ct CodeTable) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	if err := w.WriteBits(uint64(ct.len), countBits); err != nil {
		return nil, err
	}
	for _, symbol := range ct.Symbols() {
		hc := ct.codes[symbol]
		if err := w.WriteBits(uint64(symbol), symbolBits); err != nil {
			return nil, err
		}
		if err := w.WriteBits(uint64(hc.Size-1), sizeBits); err != nil {
			return nil, err
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary parses the output of MarshalBinary.  The data must hold
// exactly one table; trailing bytes are an error.
func (ct *CodeTable) UnmarshalBinary(data []byte) error {
	br := bytes.NewReader(data)
	r := bitio.NewReader(br)

	count, err := r.ReadBits(countBits)
	if err != nil {
		return truncatedf("code table header: %v", err)
	}
	if count > NumSymbols {
		return corruptf("code table claims %d entries, max %d", count, NumSymbols)
	}

	var out CodeTable
	for i := uint64(0); i < count; i++ {
		symbol, err := r.ReadBits(symbolBits)
		if err != nil {
			return truncatedf("code table entry %d: %v", i, err)
		}
		sizeMinusOne, err := r.ReadBits(sizeBits)
		if err != nil {
			return truncatedf("code table entry %d: %v", i, err)
		}
		size := byte(sizeMinusOne) + 1
		bits, err := r.ReadBits(size)
		if err != nil {
			return truncatedf("code table entry %d: %v", i, err)
		}
		if err := out.add(Symbol(symbol), MakeCode(size, bits)); err != nil {
			return err
		}
	}

	if n := br.Len(); n != 0 {
		return corruptf("%d trailing bytes after code table", n)
	}
	if err := out.checkPrefixFree(); err != nil {
		return err
	}

	*ct = out
	return nil
}

var (
	_ encoding.BinaryMarshaler   = CodeTable{}
	_ encoding.BinaryUnmarshaler = (*CodeTable)(nil)
	_ encoding.TextMarshaler     = CodeTable{}
	_ encoding.TextUnmarshaler   = (*CodeTable)(nil)
)
