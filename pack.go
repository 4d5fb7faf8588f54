package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Pack encodes data with the codes in ct and returns the concatenated bits,
// most significant bit first within each byte.  The last byte is padded on
// the right with zero bits.
//
// If a byte of data has no code in ct, Pack returns an *UnknownSymbolError
// (which matches ErrUnknownSymbol) and no output.
//
func Pack(data []byte, ct *CodeTable) ([]byte, error) {
	var codes *[NumSymbols]Code
	if ct != nil {
		codes = &ct.codes
	} else {
		codes = new([NumSymbols]Code)
	}

	// Check every symbol before emitting anything, and size the output
	// exactly while we're at it.
	var numBits uint64
	for i, b := range data {
		size := codes[b].Size
		if size == 0 {
			return nil, &UnknownSymbolError{Symbol: Symbol(b), Offset: i}
		}
		numBits += uint64(size)
	}

	p := bitPacker{out: make([]byte, 0, PackedSize(numBits))}
	for _, b := range data {
		p.writeCode(codes[b])
	}
	p.flush()

	assert.Assertf(uint64(len(p.out)) == PackedSize(numBits), "packed %d bytes, expected %d", len(p.out), PackedSize(numBits))
	return p.out, nil
}

// PackedSize returns the number of bytes needed to hold numBits bits.
func PackedSize(numBits uint64) uint64 {
	return (numBits + 7) / 8
}

// bitPacker accumulates bits in acc until a whole byte is available.
// Between calls, acc holds fewer than 8 pending bits; while a code is being
// written it never holds more than 15.
type bitPacker struct {
	out []byte
	acc uint16
	n   byte
}

func (p *bitPacker) writeCode(hc Code) {
	size := hc.Size
	for size != 0 {
		k := size
		if k > 8 {
			k = 8
		}
		size -= k

		chunk := uint16(hc.Bits>>size) & (uint16(1)<<k - 1)
		p.acc = (p.acc << k) | chunk
		p.n += k

		if p.n >= 8 {
			p.n -= 8
			p.out = append(p.out, byte(p.acc>>p.n))
			p.acc &= uint16(1)<<p.n - 1
		}
	}
}

func (p *bitPacker) flush() {
	if p.n != 0 {
		p.out = append(p.out, byte(p.acc<<(8-p.n)))
		p.acc = 0
		p.n = 0
	}
}
