package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable records how many times each Symbol occurs in an input.
//
// The zero value is an empty table.  Tables are values: copying one yields
// an independent snapshot.
type FrequencyTable struct {
	counts [NumSymbols]uint64
	len    int
	total  uint64
}

// CountFrequencies counts the occurrences of each byte value in data.
func CountFrequencies(data []byte) FrequencyTable {
	var fc FrequencyCounter
	fc.Add(data)
	return fc.Table()
}

// Get returns the number of occurrences of symbol.
func (ft FrequencyTable) Get(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (ft FrequencyTable) Len() int {
	return ft.len
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// IsEmpty returns true iff no symbols were counted.
func (ft FrequencyTable) IsEmpty() bool {
	return ft.len == 0
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.len)
	for i := 0; i < NumSymbols; i++ {
		if ft.counts[i] != 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.len)
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tGet(%d) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the table.
func (ft FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d symbols over %d bytes)", ft.len, ft.total)
}

var _ fmt.Stringer = FrequencyTable{}

// FrequencyCounter accumulates a FrequencyTable from input supplied in
// pieces.  It implements io.Writer, so a source can be copied into it with
// io.Copy.
type FrequencyCounter struct {
	table FrequencyTable
}

// Add counts every byte of data.
func (fc *FrequencyCounter) Add(data []byte) {
	ft := &fc.table
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.len++
		}
		ft.counts[b]++
	}
	ft.total += uint64(len(data))
}

// Write fulfills io.Writer.  It never fails.
func (fc *FrequencyCounter) Write(p []byte) (int, error) {
	fc.Add(p)
	return len(p), nil
}

// Table returns a snapshot of the counts so far.
func (fc *FrequencyCounter) Table() FrequencyTable {
	return fc.table
}

// Reset discards all counts.
func (fc *FrequencyCounter) Reset() {
	*fc = FrequencyCounter{}
}

var _ io.Writer = (*FrequencyCounter)(nil)
