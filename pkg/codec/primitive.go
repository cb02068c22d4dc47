package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Reader reads little-endian save fields from a stream.
// Every read either consumes the full field width or fails.
type Reader struct {
	r   io.Reader
	buf [4]byte
	off int64
}

// NewReader wraps r. Callers reading from a file should pass a buffered reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

func (r *Reader) fill(b []byte) error {
	n, err := io.ReadFull(r.r, b)
	r.off += int64(n)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: need %d bytes at offset %d, got %d", ErrTruncatedInput, len(b), r.off-int64(n), n)
	}
	return fmt.Errorf("read at offset %d: %w", r.off, err)
}

// ReadU8 reads 1 unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.fill(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadU16 reads 2 bytes as little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.fill(r.buf[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}

// ReadI32 reads 4 bytes as little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	if err := r.fill(r.buf[:4]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.buf[:4])), nil
}

// ReadChar reads a single-byte character.
func (r *Reader) ReadChar() (byte, error) {
	return r.ReadU8()
}

// ReadBool reads 1 byte; any nonzero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadU8()
	return b != 0, err
}

// ReadBytes reads exactly n bytes into a new slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := r.fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadRemaining reads everything left in the stream.
func (r *Reader) ReadRemaining() ([]byte, error) {
	b, err := io.ReadAll(r.r)
	r.off += int64(len(b))
	if err != nil {
		return nil, fmt.Errorf("read at offset %d: %w", r.off, err)
	}
	return b, nil
}

// Writer builds a save file body in memory. All multi-byte writes are little-endian.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 256)}
}

// WriteU8 writes 1 byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU16 writes 2 bytes little-endian.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteI32 writes 4 bytes little-endian.
func (w *Writer) WriteI32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

func (w *Writer) WriteChar(v byte) {
	w.buf = append(w.buf, v)
}

// WriteBool writes 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
		return
	}
	w.buf = append(w.buf, 0)
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the encoded buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}
