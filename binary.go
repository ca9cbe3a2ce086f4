package baseconv

// BinaryToOctal converts a binary digit string to octal by remapping 3-bit
// groups. Leading zeros are trimmed from input and output.
func BinaryToOctal(s string) (string, error) {
	if err := validate(s, Binary); err != nil {
		return "", err
	}
	return mapGroups(s, 3, octalGroups)
}

// BinaryToDecimal converts a binary digit string to decimal. Values beyond
// the uint64 range fail with ErrOverflow.
func BinaryToDecimal(s string) (string, error) {
	v, err := toUint64(s, Binary)
	if err != nil {
		return "", err
	}
	return FormatUint64(v, Decimal, true), nil
}

// BinaryToHexadecimal converts a binary digit string to uppercase hexadecimal
// by remapping 4-bit groups. Leading zeros are trimmed from input and output.
func BinaryToHexadecimal(s string) (string, error) {
	if err := validate(s, Binary); err != nil {
		return "", err
	}
	return mapGroups(s, 4, hexGroups)
}
