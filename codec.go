package huffman

import (
	"fmt"
)

// Logger receives trace messages from a Codec.  *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger traces per-call statistics to logger.
func WithLogger(logger Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// WithStrictPadding makes decoding reject a final byte whose padding bits are
// not all zero.
func WithStrictPadding(strict bool) Option {
	return func(c *Codec) {
		c.strictPadding = strict
	}
}

// WithCanonicalCodes makes Compress emit the canonical code for the
// computed code lengths instead of the codes read off the tree.
func WithCanonicalCodes(canonical bool) Option {
	return func(c *Codec) {
		c.canonical = canonical
	}
}

// Codec runs the full compress and decompress pipelines.  A Codec holds no
// per-call state and is safe for concurrent use.
type Codec struct {
	logger        Logger
	strictPadding bool
	canonical     bool
}

// NewCodec creates a Codec with the given options.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// Compress calls Compress on a Codec with default options.
func Compress(data []byte) (*Encoded, error) {
	return defaultCodec.Compress(data)
}

// Decompress calls Decompress on a Codec with default options.
func Decompress(ct *CodeTable, packed []byte, length uint64) ([]byte, error) {
	return defaultCodec.Decompress(ct, packed, length)
}

// DecompressTree calls DecompressTree on a Codec with default options.
func DecompressTree(t *Tree, packed []byte, length uint64) ([]byte, error) {
	return defaultCodec.DecompressTree(t, packed, length)
}

// Compress counts the symbols of data, builds a code for them, and packs
// data with it.  Empty input yields an empty code table and payload without
// building a tree.
func (c *Codec) Compress(data []byte) (*Encoded, error) {
	if len(data) == 0 {
		c.tracef("compress: empty input")
		return &Encoded{Packed: []byte{}}, nil
	}

	ft := CountFrequencies(data)
	t := BuildTree(ft)
	ct := t.Codes()
	if c.canonical {
		ct = ct.Canonical()
	}

	packed, err := Pack(data, &ct)
	if err != nil {
		return nil, err
	}

	e := &Encoded{Codes: ct, Packed: packed, Length: uint64(len(data))}
	c.tracef("compress: %v, %v, %v", ft, &e.Codes, e)
	return e, nil
}

// Decompress rebuilds a tree from ct and decodes length symbols from packed.
func (c *Codec) Decompress(ct *CodeTable, packed []byte, length uint64) ([]byte, error) {
	var t *Tree
	if ct != nil {
		var err error
		t, err = ct.Tree()
		if err != nil {
			return nil, err
		}
	}
	return c.DecompressTree(t, packed, length)
}

// DecompressTree decodes length symbols from packed using t.
func (c *Codec) DecompressTree(t *Tree, packed []byte, length uint64) ([]byte, error) {
	out, err := unpack(packed, t, length, c.strictPadding)
	if err != nil {
		c.tracef("decompress: %d bytes: %v", len(packed), err)
		return nil, err
	}
	c.tracef("decompress: %d bytes -> %d bytes", len(packed), len(out))
	return out, nil
}

func (c *Codec) tracef(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// Encoded holds everything needed to reverse a Compress call.
type Encoded struct {
	// Codes maps each symbol of the original input to its code.
	Codes CodeTable

	// Packed holds the concatenated codes.
	Packed []byte

	// Length is the number of bytes in the original input.  Decoding
	// stops after this many symbols, which discards the padding bits at
	// the end of Packed.
	Length uint64
}

// Decompress reverses the Compress call that produced e.
func (e *Encoded) Decompress() ([]byte, error) {
	return Decompress(&e.Codes, e.Packed, e.Length)
}

// String returns a brief description of e.
func (e *Encoded) String() string {
	return fmt.Sprintf("(encoded stream: %d bytes -> %d bytes using %d symbols)", e.Length, len(e.Packed), e.Codes.Len())
}

var _ fmt.Stringer = (*Encoded)(nil)
