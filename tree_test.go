package huffman

import (
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyTable {
	var fc FrequencyCounter
	for symbol, count := range []int{5, 9, 12, 13, 16, 45} {
		for i := 0; i < count; i++ {
			fc.Add([]byte{byte(symbol)})
		}
	}
	return fc.Table()
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = #10\n",
		"\tNode(#0) = Leaf{symbol: 0, weight: 5}\n",
		"\tNode(#1) = Leaf{symbol: 1, weight: 9}\n",
		"\tNode(#2) = Leaf{symbol: 2, weight: 12}\n",
		"\tNode(#3) = Leaf{symbol: 3, weight: 13}\n",
		"\tNode(#4) = Leaf{symbol: 4, weight: 16}\n",
		"\tNode(#5) = Leaf{symbol: 5, weight: 45}\n",
		"\tNode(#6) = Internal{weight: 14, left: #0, right: #1}\n",
		"\tNode(#7) = Internal{weight: 25, left: #2, right: #3}\n",
		"\tNode(#8) = Internal{weight: 30, left: #6, right: #4}\n",
		"\tNode(#9) = Internal{weight: 55, left: #7, right: #8}\n",
		"\tNode(#10) = Internal{weight: 100, left: #5, right: #9}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if expect, actual := uint64(100), tree.Weight(); expect != actual {
		t.Errorf("expected weight %d, got %d", expect, actual)
	}

	expectString := "(Huffman tree with 6 symbols and 11 nodes)"
	if actualString := tree.String(); expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestBuildTree_Ties(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte("aaaaaaaaaabbbbbbbbbbcccccccccc")))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = #4\n",
		"\tNode(#0) = Leaf{symbol: 97, weight: 10}\n",
		"\tNode(#1) = Leaf{symbol: 98, weight: 10}\n",
		"\tNode(#2) = Leaf{symbol: 99, weight: 10}\n",
		"\tNode(#3) = Internal{weight: 20, left: #0, right: #1}\n",
		"\tNode(#4) = Internal{weight: 30, left: #2, right: #3}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte(strings.Repeat("A", 300))))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = #1\n",
		"\tNode(#0) = Leaf{symbol: 65, weight: 300}\n",
		"\tNode(#1) = Internal{weight: 300, left: #0, right: nil}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	root := tree.Node(tree.Root())
	if root.Leaf {
		t.Errorf("root is a leaf")
	}
	if leaf := tree.Node(root.Child(0)); !leaf.Leaf || leaf.Symbol != 'A' {
		t.Errorf("wrong left child: %v", leaf)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	if tree := BuildTree(FrequencyTable{}); tree != nil {
		t.Errorf("expected nil tree, got %v", tree)
	}
}

func TestBuildTree_AllSymbols(t *testing.T) {
	data := make([]byte, 0, 3*NumSymbols)
	for i := 0; i < NumSymbols; i++ {
		data = append(data, byte(i))
		if i%3 == 0 {
			data = append(data, byte(i), byte(i))
		}
	}

	tree := BuildTree(CountFrequencies(data))
	if expect, actual := NumSymbols, tree.NumLeaves(); expect != actual {
		t.Errorf("expected %d leaves, got %d", expect, actual)
	}
	if expect, actual := 2*NumSymbols-1, tree.NumNodes(); expect != actual {
		t.Errorf("expected %d nodes, got %d", expect, actual)
	}
	if expect, actual := uint64(len(data)), tree.Weight(); expect != actual {
		t.Errorf("expected weight %d, got %d", expect, actual)
	}
}

func TestTree_ZeroValue(t *testing.T) {
	var tree Tree
	if expect, actual := uint64(0), tree.Weight(); expect != actual {
		t.Errorf("expected weight %d, got %d", expect, actual)
	}
	if ct := tree.Codes(); !ct.IsEmpty() {
		t.Errorf("expected empty table, got %v", &ct)
	}
}
