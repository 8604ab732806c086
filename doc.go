// Package huffpack implements a lossless byte-oriented compressor based on
// static Huffman coding.
//
// A compressed container stores the byte frequencies of the original input
// rather than the Huffman tree itself.  Both Compress and Decompress build
// the tree from those frequencies with the same deterministic algorithm, so
// the codes used to decode are exactly the codes used to encode.
//
// Container layout:
//
//     offset 0   1 byte    number of padding bits in the last payload byte (0..7)
//     offset 1   4 bytes   header length N, little-endian
//     offset 5   N bytes   frequency table: (symbol u8, count u32le) pairs,
//                          ascending by symbol
//     offset 5+N           bitstream, most significant bit first
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
