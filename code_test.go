package huffman

import (
	"strings"
	"testing"
)

func TestParseCode(t *testing.T) {
	type testRow struct {
		input string
		size  byte
		bits  uint64
	}

	testData := [...]testRow{
		{input: "0", size: 1, bits: 0x0},
		{input: "1", size: 1, bits: 0x1},
		{input: "0110", size: 4, bits: 0x6},
		{input: "000101", size: 6, bits: 0x5},
		{input: strings.Repeat("1", 64), size: 64, bits: ^uint64(0)},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			expect := MakeCode(row.size, row.bits)
			if hc != expect {
				t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, hc)
			}
			if actual := hc.Digits(); actual != row.input {
				t.Errorf("wrong digits:\n\texpect: %s\n\tactual: %s", row.input, actual)
			}
		})
	}
}

func TestParseCode_Invalid(t *testing.T) {
	for _, input := range []string{"", "012", "1 0", strings.Repeat("0", 65)} {
		if _, err := ParseCode(input); err == nil {
			t.Errorf("ParseCode(%q) succeeded, expected an error", input)
		}
	}
}

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{hc: Code{}, expect: `""`},
		{hc: MakeCode(1, 0), expect: `"0"`},
		{hc: MakeCode(4, 0x3), expect: `"0011"`},
		{hc: MakeCode(3, 0x5), expect: `"101"`},
	}
	for _, row := range testData {
		if actual := row.hc.String(); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "0110", prefix: "0", expect: true},
		{code: "0110", prefix: "011", expect: true},
		{code: "0110", prefix: "0110", expect: true},
		{code: "0110", prefix: "1", expect: false},
		{code: "0110", prefix: "0111", expect: false},
		{code: "01", prefix: "011", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestCode_Bit(t *testing.T) {
	hc, _ := ParseCode("10011")
	var buf strings.Builder
	for i := byte(0); i < hc.Size; i++ {
		buf.WriteByte(byte('0' + hc.Bit(i)))
	}
	if actual := buf.String(); actual != "10011" {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", "10011", actual)
	}
}
