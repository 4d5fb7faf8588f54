// Package huffman implements a static Huffman compressor for byte streams.
//
// The pipeline is: count byte frequencies (CountFrequencies), build an
// optimal prefix tree (BuildTree), assign one bit string per byte value
// ((*Tree).Codes), and pack the concatenated codes into bytes (Pack).
// Decoding walks the tree one bit at a time (Unpack), stopping after the
// original number of symbols so that padding bits in the final byte are
// ignored.
//
// Compress and Decompress wrap the whole pipeline.  Encoded bundles the
// three artifacts a caller must persist: the code table, the packed bytes,
// and the original length.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
