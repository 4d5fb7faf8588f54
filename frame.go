package huffman

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"io"
)

// Frame layout:
//
//     uvarint   original length
//     uvarint   size of the binary code table
//     bytes     code table (see CodeTable.MarshalBinary)
//     bytes     packed payload, to the end of the frame
//

// MarshalBinary renders e as a single self-describing frame.
func (e *Encoded) MarshalBinary() ([]byte, error) {
	table, err := e.Codes.MarshalBinary()
	if err != nil {
		return nil, err
	}

	var scratch [binary.MaxVarintLen64]byte
	var buf bytes.Buffer
	buf.Grow(2*binary.MaxVarintLen64 + len(table) + len(e.Packed))
	buf.Write(scratch[:binary.PutUvarint(scratch[:], e.Length)])
	buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(table)))])
	buf.Write(table)
	buf.Write(e.Packed)
	return buf.Bytes(), nil
}

// UnmarshalBinary parses a frame written by MarshalBinary.  The payload is
// copied, so data may be reused afterward.
func (e *Encoded) UnmarshalBinary(data []byte) error {
	length, n := binary.Uvarint(data)
	if n <= 0 {
		return frameError("original length", n)
	}
	data = data[n:]

	tableSize, n := binary.Uvarint(data)
	if n <= 0 {
		return frameError("code table size", n)
	}
	data = data[n:]

	if tableSize > uint64(len(data)) {
		return truncatedf("code table needs %d bytes, have %d", tableSize, len(data))
	}

	var out Encoded
	if err := out.Codes.UnmarshalBinary(data[:tableSize]); err != nil {
		return err
	}
	out.Packed = append([]byte{}, data[tableSize:]...)
	out.Length = length

	*e = out
	return nil
}

// WriteTo writes e as a frame to w.
func (e *Encoded) WriteTo(w io.Writer) (int64, error) {
	raw, err := e.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	return int64(n), err
}

// ReadEncoded reads a whole frame from r.
func ReadEncoded(r io.Reader) (*Encoded, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	e := new(Encoded)
	if err := e.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return e, nil
}

func frameError(field string, n int) error {
	if n == 0 {
		return truncatedf("frame ends inside the %s", field)
	}
	return corruptf("frame %s overflows 64 bits", field)
}

var (
	_ encoding.BinaryMarshaler   = (*Encoded)(nil)
	_ encoding.BinaryUnmarshaler = (*Encoded)(nil)
	_ io.WriterTo                = (*Encoded)(nil)
)
