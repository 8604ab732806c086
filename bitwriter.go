package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitWriter packs variable-length codes into bytes, most significant bit
// first.
type BitWriter struct {
	w     *bitio.Writer
	nbits uint64
}

// NewBitWriter returns a BitWriter that writes packed bytes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteCode appends the bits of hc to the stream.
func (bw *BitWriter) WriteCode(hc Code) error {
	if err := bw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	bw.nbits += uint64(hc.Size)
	return nil
}

// BitsWritten returns the number of code bits written so far, not counting
// padding.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.nbits
}

// Close pads the final byte with zero bits, flushes it, and returns the
// number of padding bits.  The padding is 0 if the stream was already
// byte-aligned, including when no bits were written at all.
func (bw *BitWriter) Close() (padding byte, err error) {
	skipped, err := bw.w.Align()
	if err != nil {
		return 0, err
	}
	assert.Assertf(uint64(skipped) == (8-bw.nbits%8)%8, "aligned %d bits after %d code bits", skipped, bw.nbits)
	if err := bw.w.Close(); err != nil {
		return 0, err
	}
	return byte(skipped), nil
}

// WriteBytes appends the code of every byte of data.  A byte without a code
// is reported as ErrMissingCode.
func (bw *BitWriter) WriteBytes(data []byte, codes *CodeTable) error {
	for offset, ch := range data {
		hc, found := codes.Lookup(Symbol(ch))
		if !found {
			return fmt.Errorf("byte %d at offset %d: %w", ch, offset, ErrMissingCode)
		}
		if err := bw.WriteCode(hc); err != nil {
			return err
		}
	}
	return nil
}

// EncodeBits replaces every byte of data with its code and packs the result.
// It returns the packed bytes and the number of padding bits at the end of
// the last byte.
func EncodeBits(data []byte, codes *CodeTable) (payload []byte, padding byte, err error) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := bw.WriteBytes(data, codes); err != nil {
		return nil, 0, err
	}
	padding, err = bw.Close()
	if err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), padding, nil
}
