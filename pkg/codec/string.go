package codec

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// MaxStringLen is the largest byte length a 1-byte length prefix can describe.
const MaxStringLen = math.MaxUint8

// ReadString reads a string stored as a 1-byte length followed by that many UTF-8 bytes.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU8()
	if err != nil {
		return "", fmt.Errorf("string length: %w", err)
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", fmt.Errorf("string body: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: % x", ErrInvalidEncoding, b)
	}
	return string(b), nil
}

// WriteString writes s with a 1-byte length prefix. Strings longer than
// MaxStringLen bytes are rejected, never truncated.
func (w *Writer) WriteString(s string) error {
	if err := checkString(s); err != nil {
		return err
	}
	w.buf = append(w.buf, byte(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

func checkString(s string) error {
	if len(s) > MaxStringLen {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	if !utf8.ValidString(s) {
		return ErrInvalidEncoding
	}
	return nil
}
