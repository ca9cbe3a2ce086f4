package baseconv

// DecimalToBinary converts a decimal digit string to binary by repeated
// division of the parsed value.
func DecimalToBinary(s string) (string, error) {
	v, err := toUint64(s, Decimal)
	if err != nil {
		return "", err
	}
	return FormatUint64(v, Binary, true), nil
}

// DecimalToOctal converts a decimal digit string to octal by repeated
// division of the parsed value.
func DecimalToOctal(s string) (string, error) {
	v, err := toUint64(s, Decimal)
	if err != nil {
		return "", err
	}
	return FormatUint64(v, Octal, true), nil
}

// DecimalToHexadecimal converts a decimal digit string to hexadecimal.
// Letter digits are uppercase when uppercase is true, lowercase otherwise.
func DecimalToHexadecimal(s string, uppercase bool) (string, error) {
	v, err := toUint64(s, Decimal)
	if err != nil {
		return "", err
	}
	return FormatUint64(v, Hexadecimal, uppercase), nil
}
