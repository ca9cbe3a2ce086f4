package baseconv

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a digit string has zero length.
	ErrEmptyInput = errors.New("baseconv: string is empty")

	// ErrOverflow is returned when the value represented by a digit string
	// exceeds the uint64 limit.
	ErrOverflow = errors.New("baseconv: value represented by string exceeds uint64 limit")

	// ErrZeroMultiple is returned by ZeroPadding when the padding multiple
	// is not a positive number.
	ErrZeroMultiple = errors.New("baseconv: padding multiple is zero")

	// ErrInvalidBase is returned when a Base is none of Binary, Octal,
	// Decimal or Hexadecimal.
	ErrInvalidBase = errors.New("baseconv: unsupported base")
)

// InvalidCharacterError reports the first character of a digit string that
// does not belong to the alphabet of the stated base. Validation stops at the
// first offender; later bad characters are not collected.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("baseconv: invalid character %q in string", e.Char)
}
