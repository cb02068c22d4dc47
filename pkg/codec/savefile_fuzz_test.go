//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"errors"
	"testing"
)

// FuzzDecode checks that arbitrary input either fails with a typed error or
// decodes into a value that re-encodes stably.
func FuzzDecode(f *testing.F) {
	f.Add(buildFixture("Wanderer").data)
	f.Add(buildFixture("").data)
	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte{0x07}, 120))

	f.Fuzz(func(t *testing.T, data []byte) {
		save, tail, err := Unmarshal(data)
		if err != nil {
			if !errors.Is(err, ErrTruncatedInput) && !errors.Is(err, ErrInvalidEncoding) {
				t.Fatalf("untyped decode error: %v", err)
			}
			if save != nil || tail != nil {
				t.Fatalf("partial value returned with error %v", err)
			}
			return
		}

		first, err := Marshal(save, tail)
		if err != nil {
			t.Fatalf("Marshal failed for decoded save: %v", err)
		}
		if len(first) != len(data) {
			t.Fatalf("length changed: got %d, want %d", len(first), len(data))
		}

		again, againTail, err := Unmarshal(first)
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		second, err := Marshal(again, againTail)
		if err != nil {
			t.Fatalf("second Marshal failed: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("encoding not stable:\n first=%x\nsecond=%x", first, second)
		}
	})
}

// FuzzString_RoundTrip checks the length-prefixed string codec.
func FuzzString_RoundTrip(f *testing.F) {
	f.Add("")
	f.Add("Wanderer")
	f.Add("名前")

	f.Fuzz(func(t *testing.T, s string) {
		w := NewWriter()
		err := w.WriteString(s)
		if len(s) > MaxStringLen {
			if !errors.Is(err, ErrStringTooLong) {
				t.Fatalf("expected ErrStringTooLong for %d bytes, got %v", len(s), err)
			}
			return
		}
		if err != nil {
			if errors.Is(err, ErrInvalidEncoding) {
				t.Skip("not UTF-8")
			}
			t.Fatalf("WriteString failed: %v", err)
		}

		got, err := NewReader(bytes.NewReader(w.Bytes())).ReadString()
		if err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}
		if got != s {
			t.Errorf("got %q, want %q", got, s)
		}
	})
}
