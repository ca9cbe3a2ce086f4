package baseconv

import "strconv"

const maxUint64 = 1<<64 - 1

// Base identifies one of the four supported positional bases. The value of
// each constant is the radix itself.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Valid reports whether b is one of the four supported bases.
func (b Base) Valid() bool {
	return b == Binary || b == Octal || b == Decimal || b == Hexadecimal
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "Base(" + strconv.Itoa(int(b)) + ")"
	}
}

// digitVal returns the numeric value of ch in base b. Hexadecimal accepts
// upper and lower case letters interchangeably.
func digitVal(b Base, ch byte) (uint64, bool) {
	switch b {
	case Binary:
		if ch == '0' || ch == '1' {
			return uint64(ch - '0'), true
		}
	case Octal:
		if ch >= '0' && ch <= '7' {
			return uint64(ch - '0'), true
		}
	case Decimal:
		if ch >= '0' && ch <= '9' {
			return uint64(ch - '0'), true
		}
	case Hexadecimal:
		switch {
		case ch >= '0' && ch <= '9':
			return uint64(ch - '0'), true
		case ch >= 'A' && ch <= 'F':
			return uint64(ch-'A') + 10, true
		case ch >= 'a' && ch <= 'f':
			return uint64(ch-'a') + 10, true
		}
	}
	return 0, false
}

// validate rejects empty strings, then scans left to right and fails on the
// first character outside b's alphabet.
func validate(s string, b Base) error {
	if len(s) == 0 {
		return ErrEmptyInput
	}
	for i := 0; i < len(s); i++ {
		if _, ok := digitVal(b, s[i]); !ok {
			return &InvalidCharacterError{Char: s[i]}
		}
	}
	return nil
}

// Convert translates a digit string from one base into another. Converting a
// base to itself validates the string and trims leading zeros.
//
// Hexadecimal output uses uppercase digits; use DecimalToHexadecimal directly
// for lowercase.
func Convert(s string, from, to Base) (string, error) {
	if !from.Valid() || !to.Valid() {
		return "", ErrInvalidBase
	}

	if from == to {
		if err := validate(s, from); err != nil {
			return "", err
		}
		return TrimLeadingZeros(s), nil
	}

	switch from {
	case Binary:
		switch to {
		case Octal:
			return BinaryToOctal(s)
		case Decimal:
			return BinaryToDecimal(s)
		case Hexadecimal:
			return BinaryToHexadecimal(s)
		}
	case Octal:
		switch to {
		case Binary:
			return OctalToBinary(s)
		case Decimal:
			return OctalToDecimal(s)
		case Hexadecimal:
			return OctalToHexadecimal(s)
		}
	case Decimal:
		switch to {
		case Binary:
			return DecimalToBinary(s)
		case Octal:
			return DecimalToOctal(s)
		case Hexadecimal:
			return DecimalToHexadecimal(s, true)
		}
	case Hexadecimal:
		switch to {
		case Binary:
			return HexadecimalToBinary(s)
		case Octal:
			return HexadecimalToOctal(s)
		case Decimal:
			return HexadecimalToDecimal(s)
		}
	}

	panic("baseconv: unreachable base pair") // all valid pairs handled above
}
