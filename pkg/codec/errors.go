package codec

import "errors"

var (
	// ErrTruncatedInput is returned when the input ends before a fixed-width
	// field or a declared string length is satisfied.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidEncoding is returned when string bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

	// ErrStringTooLong is returned when a string does not fit a 1-byte length prefix.
	ErrStringTooLong = errors.New("string exceeds 255 bytes")

	// ErrInvalidValue is returned by setters when an edit is outside the field's domain.
	ErrInvalidValue = errors.New("invalid value")
)

// IsInputError reports whether err means the save file itself could not be
// decoded. Rejected edits wrap ErrInvalidValue and never count as input errors,
// even when the edited string is not valid UTF-8.
func IsInputError(err error) bool {
	if errors.Is(err, ErrInvalidValue) {
		return false
	}
	return errors.Is(err, ErrTruncatedInput) || errors.Is(err, ErrInvalidEncoding)
}

// IsEditError reports whether err was caused by an edited value that cannot be stored.
func IsEditError(err error) bool {
	return errors.Is(err, ErrStringTooLong) || errors.Is(err, ErrInvalidValue)
}
