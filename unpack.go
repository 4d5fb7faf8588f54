package huffman

// Unpack decodes exactly length symbols from packed by walking t one bit at
// a time.  Bits left over in the final byte are padding and are ignored.
//
// Errors match ErrTruncatedStream if packed runs out of bits early, or
// ErrCorruptStream if a bit leads to a missing branch of t, if t is nil
// while length is not zero, or if whole bytes remain after the last symbol.
// No partial output is returned on error.
//
func Unpack(packed []byte, t *Tree, length uint64) ([]byte, error) {
	return unpack(packed, t, length, false)
}

func unpack(packed []byte, t *Tree, length uint64, strictPadding bool) ([]byte, error) {
	if length == 0 {
		if len(packed) != 0 {
			return nil, corruptf("%d bytes of payload for an empty input", len(packed))
		}
		return []byte{}, nil
	}

	if t == nil || len(t.nodes) == 0 {
		return nil, corruptf("no tree to decode %d symbols with", length)
	}
	if t.nodes[t.root].Leaf {
		return nil, corruptf("tree root is a leaf")
	}

	// Every symbol costs at least one bit.
	if available := uint64(len(packed)) * 8; length > available {
		return nil, truncatedf("%d symbols cannot fit in %d bits", length, available)
	}

	u := bitUnpacker{data: packed}
	out := make([]byte, 0, length)
	for uint64(len(out)) < length {
		id := t.root
		for {
			bit, ok := u.readBit()
			if !ok {
				return nil, truncatedf("stream ended at bit %d while decoding symbol %d of %d", u.offset(), len(out), length)
			}

			id = t.nodes[id].Child(bit)
			if id == NoNode {
				return nil, corruptf("no branch for bit %d at bit offset %d", bit, u.offset()-1)
			}

			if node := t.nodes[id]; node.Leaf {
				out = append(out, byte(node.Symbol))
				break
			}
		}
	}

	if n := len(packed) - u.pos; n != 0 {
		return nil, corruptf("%d trailing bytes after symbol %d", n, length)
	}
	if strictPadding && u.pending() != 0 {
		return nil, corruptf("non-zero padding bits in final byte")
	}
	return out, nil
}

// bitUnpacker yields the bits of data, most significant bit first.
type bitUnpacker struct {
	data []byte
	pos  int
	acc  byte
	n    byte
}

func (u *bitUnpacker) readBit() (uint, bool) {
	if u.n == 0 {
		if u.pos >= len(u.data) {
			return 0, false
		}
		u.acc = u.data[u.pos]
		u.pos++
		u.n = 8
	}
	u.n--
	return uint(u.acc>>u.n) & 1, true
}

// offset returns the number of bits consumed so far.
func (u *bitUnpacker) offset() uint64 {
	return uint64(u.pos)*8 - uint64(u.n)
}

// pending returns the unread bits of the current byte.
func (u *bitUnpacker) pending() byte {
	return u.acc & (byte(1)<<u.n - 1)
}
