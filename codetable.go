package huffman

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  Symbols without a code have a
// zero-sized Code.
//
// A CodeTable produced by (*Tree).Codes is prefix-free by construction.
// NewCodeTable and the Unmarshal methods check that property and reject
// tables that lack it, so every CodeTable can be turned back into a Tree.
//
type CodeTable struct {
	codes   [NumSymbols]Code
	len     int
	minSize byte
	maxSize byte
}

// NewCodeTable builds a CodeTable from an explicit symbol-to-code mapping,
// such as one read back from storage.  Every code must be between 1 and
// MaxCodeSize bits long, and no code may be a prefix of another.
func NewCodeTable(codes map[Symbol]Code) (CodeTable, error) {
	var ct CodeTable
	for symbol, hc := range codes {
		if err := checkCode(symbol, hc); err != nil {
			return CodeTable{}, err
		}
		ct.set(symbol, hc)
	}
	if err := ct.checkPrefixFree(); err != nil {
		return CodeTable{}, err
	}
	return ct, nil
}

// Lookup returns the code for symbol, if it has one.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.len
}

// IsEmpty returns true iff no symbol has a code.
func (ct *CodeTable) IsEmpty() bool {
	return ct.len == 0
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Symbols returns the symbols with a code, in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.len)
	for i := 0; i < NumSymbols; i++ {
		if ct.codes[i].Size != 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// EncodedBits returns the exact number of bits that Pack will produce for an
// input with the given frequencies.  It fails with an *UnknownSymbolError
// (Offset -1) if the input contains a symbol with no code.
func (ct *CodeTable) EncodedBits(ft FrequencyTable) (uint64, error) {
	var total uint64
	for _, symbol := range ft.Symbols() {
		hc := ct.codes[symbol]
		if hc.Size == 0 {
			return 0, &UnknownSymbolError{Symbol: symbol, Offset: -1}
		}
		total += uint64(hc.Size) * ft.Get(symbol)
	}
	return total, nil
}

// Equal returns true iff both tables assign the same codes.
func (ct *CodeTable) Equal(other *CodeTable) bool {
	return ct.codes == other.codes
}

// Tree rebuilds a decoding tree from the table by inserting each symbol
// along the path spelled out by its code.  It returns nil for an empty
// table, and an ErrCorruptStream error if the codes are not prefix-free.
func (ct *CodeTable) Tree() (*Tree, error) {
	if ct.len == 0 {
		return nil, nil
	}

	t := &Tree{nodes: make([]TreeNode, 0, 2*ct.len)}
	t.root = t.addInternal(NoNode, NoNode)

	for _, symbol := range ct.Symbols() {
		hc := ct.codes[symbol]
		id := t.root
		for i := byte(0); i < hc.Size; i++ {
			if t.nodes[id].Leaf {
				return nil, corruptf("code %v for symbol %d extends the code of symbol %d", hc, symbol, t.nodes[id].Symbol)
			}

			bit := hc.Bit(i)
			last := (i == hc.Size-1)
			child := t.nodes[id].Child(bit)
			switch {
			case child != NoNode && last:
				return nil, corruptf("code %v for symbol %d is a prefix of another code", hc, symbol)
			case child == NoNode && last:
				child = t.addLeaf(symbol, 0)
				t.setChild(id, bit, child)
			case child == NoNode:
				child = t.addInternal(NoNode, NoNode)
				t.setChild(id, bit, child)
			}
			id = child
		}
	}

	return t, nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %v\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the table.
func (ct *CodeTable) String() string {
	if ct.len == 0 {
		return "(empty Huffman code table)"
	}
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", ct.len, ct.minSize, ct.maxSize)
}

// GoString returns a Go expression that rebuilds this table.
func (ct *CodeTable) GoString() string {
	var buf strings.Builder
	buf.WriteString("NewCodeTable(map[Symbol]Code{")
	for i, symbol := range ct.Symbols() {
		if i > 0 {
			buf.WriteByte(',')
		}
		hc := ct.codes[symbol]
		fmt.Fprintf(&buf, "%d:MakeCode(%d,0b%s)", symbol, hc.Size, hc.Digits())
	}
	buf.WriteString("})")
	return buf.String()
}

// MarshalText renders the table as a listing with one "<symbol> <code>" line
// per symbol, in ascending symbol order.  The symbol is written in decimal so
// that whitespace and control bytes cannot be confused with the delimiter.
func (ct CodeTable) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, symbol := range ct.Symbols() {
		buf.WriteString(strconv.FormatUint(uint64(symbol), 10))
		buf.WriteByte(' ')
		buf.WriteString(ct.codes[symbol].Digits())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// UnmarshalText parses a listing written by MarshalText.  Lines may appear in
// any order; blank lines and lines starting with '#' are ignored.
func (ct *CodeTable) UnmarshalText(text []byte) error {
	var out CodeTable
	scanner := bufio.NewScanner(bytes.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return corruptf("code table line %d: expected 2 fields, got %d", lineNum, len(fields))
		}

		u64, err := strconv.ParseUint(fields[0], 10, 8)
		if err != nil {
			return corruptf("code table line %d: invalid symbol %q", lineNum, fields[0])
		}

		hc, err := ParseCode(fields[1])
		if err != nil {
			return corruptf("code table line %d: %v", lineNum, err)
		}

		if err := out.add(Symbol(u64), hc); err != nil {
			return fmt.Errorf("code table line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := out.checkPrefixFree(); err != nil {
		return err
	}

	*ct = out
	return nil
}

type codeTableEntry struct {
	Symbol Symbol `json:"symbol"`
	Code   string `json:"code"`
}

// MarshalJSON renders the table as an array of {"symbol":N,"code":"0101"}
// objects in ascending symbol order.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	list := make([]codeTableEntry, 0, ct.len)
	for _, symbol := range ct.Symbols() {
		list = append(list, codeTableEntry{Symbol: symbol, Code: ct.codes[symbol].Digits()})
	}
	return json.Marshal(list)
}

// UnmarshalJSON parses the output of MarshalJSON.
func (ct *CodeTable) UnmarshalJSON(raw []byte) error {
	var list []codeTableEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return err
	}

	var out CodeTable
	for _, entry := range list {
		hc, err := ParseCode(entry.Code)
		if err != nil {
			return corruptf("symbol %d: %v", entry.Symbol, err)
		}
		if err := out.add(entry.Symbol, hc); err != nil {
			return err
		}
	}
	if err := out.checkPrefixFree(); err != nil {
		return err
	}

	*ct = out
	return nil
}

var (
	_ json.Marshaler   = CodeTable{}
	_ json.Unmarshaler = (*CodeTable)(nil)
	_ fmt.Stringer     = (*CodeTable)(nil)
	_ fmt.GoStringer   = (*CodeTable)(nil)
)

// checkPrefixFree returns an ErrCorruptStream error if some code is a prefix
// of another.
func (ct *CodeTable) checkPrefixFree() error {
	_, err := ct.Tree()
	return err
}

func checkCode(symbol Symbol, hc Code) error {
	if hc.Size == 0 {
		return corruptf("symbol %d has an empty code", symbol)
	}
	if hc.Size > MaxCodeSize {
		return corruptf("symbol %d has a %d-bit code, max %d", symbol, hc.Size, MaxCodeSize)
	}
	if hc.Size < MaxCodeSize && hc.Bits>>hc.Size != 0 {
		return corruptf("symbol %d has stray bits above its %d-bit code", symbol, hc.Size)
	}
	return nil
}

// add is set for untrusted input: duplicates and malformed codes are errors.
func (ct *CodeTable) add(symbol Symbol, hc Code) error {
	if err := checkCode(symbol, hc); err != nil {
		return err
	}
	if ct.codes[symbol].Size != 0 {
		return corruptf("duplicate entry for symbol %d", symbol)
	}
	ct.set(symbol, hc)
	return nil
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	assert.Assertf(ct.codes[symbol].Size == 0, "symbol %d already has a code", symbol)
	ct.codes[symbol] = hc
	ct.len++
	if ct.len == 1 || ct.minSize > hc.Size {
		ct.minSize = hc.Size
	}
	if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
}
