package baseconv

import "strings"

// OctalToBinary converts an octal digit string to binary by expanding each
// digit into its 3-bit group.
func OctalToBinary(s string) (string, error) {
	if err := validate(s, Octal); err != nil {
		return "", err
	}

	t := TrimLeadingZeros(s)
	var out strings.Builder
	out.Grow(len(t) * 3)
	for i := 0; i < len(t); i++ {
		out.WriteString(octalBits[t[i]-'0'])
	}
	return TrimLeadingZeros(out.String()), nil
}

// OctalToDecimal converts an octal digit string to decimal. Values beyond the
// uint64 range fail with ErrOverflow.
func OctalToDecimal(s string) (string, error) {
	v, err := toUint64(s, Octal)
	if err != nil {
		return "", err
	}
	return FormatUint64(v, Decimal, true), nil
}

// OctalToHexadecimal converts an octal digit string to uppercase hexadecimal,
// routing through the binary representation. The first failing stage's error
// is returned unchanged.
func OctalToHexadecimal(s string) (string, error) {
	b, err := OctalToBinary(s)
	if err != nil {
		return "", err
	}
	return BinaryToHexadecimal(b)
}
