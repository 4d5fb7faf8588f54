package huffman

// Symbol represents one byte value of the input alphabet.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxCodeSize is the longest code, in bits, that a CodeTable can hold.
//
// A Huffman tree of depth 64 needs a total weight of at least Fib(66), which
// is far beyond any in-memory input, so trees built by BuildTree never come
// close.  Persisted tables with longer codes are rejected as corrupt.
//
const MaxCodeSize = 64
