package baseconv

// Digit alphabets for rendering. Indexing by digit value works for every
// supported base because the alphabets nest.
const (
	upperHexDigits = "0123456789ABCDEF"
	lowerHexDigits = "0123456789abcdef"
)

// Bit-group tables. octalBits[d] is the 3-bit group for octal digit value d,
// hexBits[d] the 4-bit group for hex digit value d.
var (
	octalBits = [8]string{
		"000", "001", "010", "011", "100", "101", "110", "111",
	}
	hexBits = [16]string{
		"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111",
		"1000", "1001", "1010", "1011", "1100", "1101", "1110", "1111",
	}

	// Inverses of the above, keyed by the group string and yielding the
	// output digit character. Built once at init, never mutated after.
	octalGroups = make(map[string]byte, len(octalBits))
	hexGroups   = make(map[string]byte, len(hexBits))
)

func init() {
	for i, bits := range octalBits {
		octalGroups[bits] = '0' + byte(i)
	}
	for i, bits := range hexBits {
		hexGroups[bits] = upperHexDigits[i]
	}
}
