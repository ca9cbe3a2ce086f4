package baseconv

import "strings"

// HexadecimalToBinary converts a hexadecimal digit string to binary by
// expanding each digit into its 4-bit group. Upper and lower case letters are
// accepted interchangeably.
func HexadecimalToBinary(s string) (string, error) {
	if err := validate(s, Hexadecimal); err != nil {
		return "", err
	}

	t := TrimLeadingZeros(s)
	var out strings.Builder
	out.Grow(len(t) * 4)
	for i := 0; i < len(t); i++ {
		d, _ := digitVal(Hexadecimal, t[i]) // validated above
		out.WriteString(hexBits[d])
	}
	return TrimLeadingZeros(out.String()), nil
}

// HexadecimalToOctal converts a hexadecimal digit string to octal, routing
// through the binary representation. The first failing stage's error is
// returned unchanged.
func HexadecimalToOctal(s string) (string, error) {
	b, err := HexadecimalToBinary(s)
	if err != nil {
		return "", err
	}
	return BinaryToOctal(b)
}

// HexadecimalToDecimal converts a hexadecimal digit string to decimal. Values
// beyond the uint64 range fail with ErrOverflow.
func HexadecimalToDecimal(s string) (string, error) {
	v, err := toUint64(s, Hexadecimal)
	if err != nil {
		return "", err
	}
	return FormatUint64(v, Decimal, true), nil
}
