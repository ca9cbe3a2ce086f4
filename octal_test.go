package baseconv

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestOctalToBinary(t *testing.T) {
	for idx, tc := range []struct {
		in, out string
	}{
		{"0", "0"},
		{"000", "0"},
		{"1", "1"},
		{"7", "111"},
		{"10", "1000"},
		{"17", "1111"},
		{"32", "11010"},
		{"0032", "11010"},
		{"1777777777777777777777", strings.Repeat("1", 64)},
	} {
		t.Run(fmt.Sprintf("%d/%s=%s", idx, tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := OctalToBinary(tc.in)
			tt.MustAssert(err == nil, "unexpected error: %v", err)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestOctalToDecimal(t *testing.T) {
	for idx, tc := range []struct {
		in, out string
	}{
		{"0", "0"},
		{"7", "7"},
		{"10", "8"},
		{"17", "15"},
		{"20", "16"},
		{"1777777777777777777777", "18446744073709551615"},
	} {
		t.Run(fmt.Sprintf("%d/%s=%s", idx, tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := OctalToDecimal(tc.in)
			tt.MustAssert(err == nil, "unexpected error: %v", err)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestOctalToDecimalOverflow(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := OctalToDecimal("2000000000000000000000")
	tt.MustAssert(errors.Is(err, ErrOverflow), "found: %v", err)
}

func TestOctalToHexadecimal(t *testing.T) {
	for idx, tc := range []struct {
		in, out string
	}{
		{"0", "0"},
		{"17", "F"},
		{"20", "10"},
		{"32", "1A"},
		{"1777777777777777777777", "FFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s=%s", idx, tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := OctalToHexadecimal(tc.in)
			tt.MustAssert(err == nil, "unexpected error: %v", err)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestOctalConvertErrors(t *testing.T) {
	for idx, fn := range []func(string) (string, error){
		OctalToBinary, OctalToDecimal, OctalToHexadecimal,
	} {
		t.Run(fmt.Sprintf("%d/empty", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := fn("")
			tt.MustAssert(errors.Is(err, ErrEmptyInput), "found: %v", err)
		})

		t.Run(fmt.Sprintf("%d/invalid", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := fn("812")
			var ice *InvalidCharacterError
			tt.MustAssert(errors.As(err, &ice), "found: %v", err)
			tt.MustEqual(byte('8'), ice.Char)
		})
	}
}
