package baseconv

// accumulate folds one digit into acc in the given base. The bound check runs
// strictly before the multiply-add so wraparound can never mask an overflow.
func accumulate(acc uint64, base Base, digit uint64) (uint64, error) {
	if acc > (maxUint64-digit)/uint64(base) {
		return 0, ErrOverflow
	}
	return acc*uint64(base) + digit, nil
}

// ParseUint64 parses a digit string in the given base into a uint64. It fails
// with ErrEmptyInput on "", with InvalidCharacterError on the first character
// outside the base's alphabet, and with ErrOverflow if the value exceeds the
// uint64 range. Leading zeros are accepted.
func ParseUint64(s string, base Base) (uint64, error) {
	if !base.Valid() {
		return 0, ErrInvalidBase
	}
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}

	var acc uint64
	for i := 0; i < len(s); i++ {
		d, ok := digitVal(base, s[i])
		if !ok {
			return 0, &InvalidCharacterError{Char: s[i]}
		}
		var err error
		if acc, err = accumulate(acc, base, d); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// FormatUint64 renders v as a digit string in the given base, with no sign or
// prefix. Hexadecimal letter case follows uppercase; the flag has no effect on
// the other bases. Formatting zero yields "0", never the empty string.
//
// FormatUint64 panics if base is unsupported, matching strconv.FormatUint.
func FormatUint64(v uint64, base Base, uppercase bool) string {
	if !base.Valid() {
		panic("baseconv: FormatUint64 called with unsupported base")
	}

	digits := upperHexDigits
	if !uppercase {
		digits = lowerHexDigits
	}

	// 64 bytes covers the longest case, maxUint64 in binary.
	var buf [64]byte
	i := len(buf)
	for {
		i--
		buf[i] = digits[v%uint64(base)]
		v /= uint64(base)
		if v == 0 {
			break
		}
	}
	return string(buf[i:])
}

// toUint64 is the shared front half of every converter that routes through
// the accumulator: empty check, trim, then strict parse.
func toUint64(s string, base Base) (uint64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	return ParseUint64(TrimLeadingZeros(s), base)
}
