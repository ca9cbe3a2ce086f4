package baseconv

import "strings"

// TrimLeadingZeros strips every leading '0' from s. A string that is all
// zeros collapses to "0" rather than the empty string. Idempotent.
func TrimLeadingZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	if i == len(s) {
		return "0"
	}
	return s[i:]
}

// ZeroPadding left-pads s with '0' characters until its length is a multiple
// of multiple. Strings already a multiple of the width are returned unchanged.
func ZeroPadding(s string, multiple int) (string, error) {
	if len(s) == 0 {
		return "", ErrEmptyInput
	}
	if multiple <= 0 {
		return "", ErrZeroMultiple
	}
	rem := len(s) % multiple
	if rem == 0 {
		return s, nil
	}
	return strings.Repeat("0", multiple-rem) + s, nil
}

// mapGroups trims s, pads it to a multiple of width, then maps each
// consecutive width-sized group through groups from the most significant end.
// The result is trimmed again because padding can introduce a leading zero
// digit in the output.
func mapGroups(s string, width int, groups map[string]byte) (string, error) {
	padded, err := ZeroPadding(TrimLeadingZeros(s), width)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(padded) / width)
	for i := 0; i < len(padded); i += width {
		out.WriteByte(groups[padded[i:i+width]])
	}
	return TrimLeadingZeros(out.String()), nil
}
