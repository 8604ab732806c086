package huffpack

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// paddingOffset is the position of the padding count in a container.
	paddingOffset = 0

	// prefixSize is the size of the fixed fields that precede the
	// frequency table: the padding count and the header length.
	prefixSize = 5
)

// Header holds the fixed part of a container: everything but the bitstream.
type Header struct {
	// Padding is the number of low-order filler bits in the last byte of
	// the bitstream, 0..7.
	Padding byte

	// Frequencies is the table from which both sides build the tree.
	Frequencies FrequencyTable
}

// ReadHeader parses the header at the start of a container and returns it
// along with the bitstream that follows.
func ReadHeader(data []byte) (Header, []byte, error) {
	if len(data) < prefixSize {
		return Header{}, nil, fmt.Errorf("container is %d bytes, need at least %d: %w", len(data), prefixSize, ErrCorruptHeader)
	}

	padding := data[paddingOffset]
	if padding > 7 {
		return Header{}, nil, fmt.Errorf("padding %d out of range [0, 7]: %w", padding, ErrCorruptHeader)
	}

	tableLen := uint64(binary.LittleEndian.Uint32(data[1:prefixSize]))
	if tableLen > uint64(len(data)-prefixSize) {
		return Header{}, nil, fmt.Errorf("header length %d exceeds the %d bytes after the prefix: %w", tableLen, len(data)-prefixSize, ErrCorruptHeader)
	}

	var freq FrequencyTable
	if err := freq.UnmarshalBinary(data[prefixSize : prefixSize+tableLen]); err != nil {
		return Header{}, nil, err
	}

	payload := data[prefixSize+tableLen:]
	if len(payload) == 0 && padding != 0 {
		return Header{}, nil, fmt.Errorf("padding %d with an empty bitstream: %w", padding, ErrCorruptHeader)
	}

	return Header{Padding: padding, Frequencies: freq}, payload, nil
}

// WriteContainer writes a complete container whose bitstream is already
// known.
func WriteContainer(w io.Writer, hdr Header, payload []byte) error {
	table, err := hdr.Frequencies.MarshalBinary()
	if err != nil {
		return err
	}
	if err := writePrefix(w, hdr.Padding, table); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Compress returns the container for data.  Empty input is rejected with
// ErrEmptyInput.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := CompressTo(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressTo writes the container for data to w.
//
// The padding count is only known once the whole bitstream has been
// produced.  If w is an io.WriteSeeker that can report its position, the
// bitstream is written straight through and the padding byte is patched
// afterwards, leaving w positioned at the end of the container.  Otherwise,
// as for pipes, the bitstream is encoded into memory first and nothing is
// written to w until it is complete.
//
func CompressTo(w io.Writer, data []byte) error {
	freq, err := CountFrequencies(data)
	if err != nil {
		return err
	}

	var e Encoder
	if err := e.Init(freq); err != nil {
		return err
	}

	if ws, ok := w.(io.WriteSeeker); ok {
		if start, err := ws.Seek(0, io.SeekCurrent); err == nil {
			return compressSeekable(ws, start, data, e)
		}
	}

	payload, padding, err := EncodeBits(data, e.Codes())
	if err != nil {
		return err
	}
	return WriteContainer(w, Header{Padding: padding, Frequencies: freq}, payload)
}

func compressSeekable(ws io.WriteSeeker, start int64, data []byte, e Encoder) error {
	table, err := e.Frequencies().MarshalBinary()
	if err != nil {
		return err
	}

	bufw := bufio.NewWriter(ws)
	if err := writePrefix(bufw, 0, table); err != nil {
		return err
	}

	bw := NewBitWriter(bufw)
	if err := bw.WriteBytes(data, e.Codes()); err != nil {
		return err
	}
	padding, err := bw.Close()
	if err != nil {
		return err
	}
	if err := bufw.Flush(); err != nil {
		return err
	}

	end, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := ws.Seek(start+paddingOffset, io.SeekStart); err != nil {
		return err
	}
	if _, err := ws.Write([]byte{padding}); err != nil {
		return err
	}
	_, err = ws.Seek(end, io.SeekStart)
	return err
}

// Decompress returns the original bytes of a container.
func Decompress(data []byte) ([]byte, error) {
	hdr, payload, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	var d Decoder
	if err := d.Init(hdr.Frequencies); err != nil {
		return nil, err
	}

	out, err := DecodeBits(payload, d.Table(), hdr.Padding)
	if err != nil {
		return nil, err
	}

	expect := hdr.Frequencies.Total()
	if actual := uint64(len(out)); actual < expect {
		return nil, fmt.Errorf("decoded %d bytes, header promises %d: %w", actual, expect, ErrTruncatedStream)
	} else if actual > expect {
		return nil, fmt.Errorf("bitstream holds %d symbols, header counts %d: %w", actual, expect, ErrCorruptHeader)
	}
	return out, nil
}

func writePrefix(w io.Writer, padding byte, table []byte) error {
	var prefix [prefixSize]byte
	prefix[paddingOffset] = padding
	binary.LittleEndian.PutUint32(prefix[1:], uint32(len(table)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err := w.Write(table)
	return err
}
