package huffman

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Sizes returns the code length of every symbol, 0 for symbols without a
// code.  Together with CanonicalCodeTable this is the most compact way to
// transmit a canonical code.
func (ct *CodeTable) Sizes() []byte {
	out := make([]byte, NumSymbols)
	for i := range ct.codes {
		out[i] = ct.codes[i].Size
	}
	return out
}

// Canonical returns the canonical code with the same code lengths as ct.
// Compression ratio is unchanged, but the codes no longer depend on how
// ties were broken while building the tree.  The lengths of a prefix-free
// code always satisfy CanonicalCodeTable, and every CodeTable is prefix-free.
func (ct *CodeTable) Canonical() CodeTable {
	out, err := CanonicalCodeTable(ct.Sizes())
	assert.Assertf(err == nil, "code lengths of a prefix-free code were rejected: %v", err)
	return out
}

// CanonicalCodeTable builds the canonical code for the given code lengths,
// one per symbol starting from 0, per the algorithm in RFC 1951 Section
// 3.2.2.  Symbols with a length of 0 get no code.
//
// Lengths that cannot form a prefix-free code are rejected with an
// ErrCorruptStream error.  Incomplete codes, such as a single 1-bit code,
// are permitted.
//
func CanonicalCodeTable(sizes []byte) (CodeTable, error) {
	if len(sizes) > NumSymbols {
		return CodeTable{}, corruptf("%d code lengths for a %d-symbol alphabet", len(sizes), NumSymbols)
	}

	// Step 1: sort the symbols by (size, symbol) ascending.

	sorted := make(bySize, 0, len(sizes))
	for i, size := range sizes {
		if size == 0 {
			continue
		}
		if size > MaxCodeSize {
			return CodeTable{}, corruptf("symbol %d has a %d-bit code, max %d", i, size, MaxCodeSize)
		}
		sorted = append(sorted, symbolAndSize{Symbol(i), size})
	}
	sorted.Sort()

	var ct CodeTable
	if len(sorted) == 0 {
		return ct, nil
	}

	// Step 2: assign the codes sequentially.  Once nextCode reaches
	// 1<<lastSize the code space is full, and any further symbol would
	// collide.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	full := false
	for _, item := range sorted {
		if full {
			return CodeTable{}, corruptf("code lengths are over-subscribed at symbol %d", item.symbol)
		}
		nextCode <<= (item.size - lastSize)
		lastSize = item.size
		ct.set(item.symbol, MakeCode(item.size, nextCode))
		nextCode++
		if lastSize < MaxCodeSize {
			full = (nextCode>>lastSize != 0)
		} else {
			full = (nextCode == 0)
		}
	}
	return ct, nil
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
