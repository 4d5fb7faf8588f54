package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCodeTable_Canonical(t *testing.T) {
	ct := BuildTree(makeTestFrequencies()).Codes()
	canon := ct.Canonical()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(0) = \"1110\"\n",
		"\tLookup(1) = \"1111\"\n",
		"\tLookup(2) = \"100\"\n",
		"\tLookup(3) = \"101\"\n",
		"\tLookup(4) = \"110\"\n",
		"\tLookup(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = canon.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := canon.Sizes()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestCanonicalCodeTable(t *testing.T) {
	ct, err := CanonicalCodeTable([]byte{4, 4, 3, 3, 3, 1})
	if err != nil {
		t.Fatalf("CanonicalCodeTable failed: %v", err)
	}

	expectString := "(Huffman code table with 6 symbols, with coded lengths of 1 .. 4 bits)"
	if actualString := ct.String(); expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}

	if _, err := ct.Tree(); err != nil {
		t.Errorf("canonical code is not prefix-free: %v", err)
	}
}

func TestCanonicalCodeTable_Degenerate(t *testing.T) {
	type testRow struct {
		name  string
		sizes []byte
		ok    bool
	}

	testData := [...]testRow{
		{name: "empty", sizes: nil, ok: true},
		{name: "single", sizes: []byte{0, 1}, ok: true},
		{name: "incomplete", sizes: []byte{1, 2}, ok: true},
		{name: "oversubscribed", sizes: []byte{1, 1, 1}, ok: false},
		{name: "oversubscribed-deep", sizes: []byte{1, 2, 2, 3}, ok: false},
		{name: "too-long", sizes: []byte{65, 1}, ok: false},
		{name: "too-many", sizes: make([]byte, NumSymbols+1), ok: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := CanonicalCodeTable(row.sizes)
			if row.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !row.ok && !errors.Is(err, ErrCorruptStream) {
				t.Errorf("expected ErrCorruptStream, got %v", err)
			}
		})
	}
}
