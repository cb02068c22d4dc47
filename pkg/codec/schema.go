package codec

import "fmt"

// FieldKind is the on-disk representation of a fixed record field.
type FieldKind uint8

const (
	KindI32 FieldKind = iota
	KindU8
	KindChar
	KindBool
)

// Size returns the field width in bytes.
func (k FieldKind) Size() int {
	if k == KindI32 {
		return 4
	}
	return 1
}

func (k FieldKind) String() string {
	switch k {
	case KindI32:
		return "i32"
	case KindU8:
		return "u8"
	case KindChar:
		return "char"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("FieldKind(%d)", uint8(k))
	}
}

// Field describes one field of a fixed record of type T.
type Field[T any] struct {
	Name   string
	Kind   FieldKind
	decode func(*Reader, *T) error
	encode func(*Writer, *T)
	value  func(*T) any
}

// Value returns the field's current value in rec.
func (f Field[T]) Value(rec *T) any {
	return f.value(rec)
}

func int32Field[T any](name string, at func(*T) *int32) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindI32,
		decode: func(r *Reader, rec *T) (err error) {
			*at(rec), err = r.ReadI32()
			return err
		},
		encode: func(w *Writer, rec *T) { w.WriteI32(*at(rec)) },
		value:  func(rec *T) any { return *at(rec) },
	}
}

func byteField[T any, V ~uint8](name string, at func(*T) *V) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindU8,
		decode: func(r *Reader, rec *T) error {
			v, err := r.ReadU8()
			*at(rec) = V(v)
			return err
		},
		encode: func(w *Writer, rec *T) { w.WriteU8(uint8(*at(rec))) },
		value:  func(rec *T) any { return *at(rec) },
	}
}

func charField[T any](name string, at func(*T) *byte) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindChar,
		decode: func(r *Reader, rec *T) (err error) {
			*at(rec), err = r.ReadChar()
			return err
		},
		encode: func(w *Writer, rec *T) { w.WriteChar(*at(rec)) },
		value:  func(rec *T) any { return *at(rec) },
	}
}

func boolField[T any](name string, at func(*T) *bool) Field[T] {
	return Field[T]{
		Name: name,
		Kind: KindBool,
		decode: func(r *Reader, rec *T) (err error) {
			*at(rec), err = r.ReadBool()
			return err
		},
		encode: func(w *Writer, rec *T) { w.WriteBool(*at(rec)) },
		value:  func(rec *T) any { return *at(rec) },
	}
}

// Schema is the ordered field list of a fixed record. The order is the
// on-disk order.
type Schema[T any] struct {
	Name   string
	Fields []Field[T]
}

// Size returns the encoded record size in bytes.
func (s Schema[T]) Size() int {
	n := 0
	for _, f := range s.Fields {
		n += f.Kind.Size()
	}
	return n
}

// Decode reads every field in declared order. The first failure aborts the record.
func (s Schema[T]) Decode(r *Reader) (T, error) {
	var rec T
	for _, f := range s.Fields {
		if err := f.decode(r, &rec); err != nil {
			var zero T
			return zero, fmt.Errorf("%s.%s: %w", s.Name, f.Name, err)
		}
	}
	return rec, nil
}

// Encode writes every field in declared order.
func (s Schema[T]) Encode(w *Writer, rec *T) {
	for _, f := range s.Fields {
		f.encode(w, rec)
	}
}
