/*
Package baseconv converts unsigned integer digit strings between binary,
octal, decimal and hexadecimal representations.

Inputs and outputs are plain big-endian digit strings with no sign, radix
prefix or whitespace. Values are bounded by the uint64 range; anything larger
fails with ErrOverflow rather than wrapping.

Simple example:

	out, err := baseconv.DecimalToHexadecimal("255", true)
	if err != nil {
		// ...
	}
	fmt.Println(out)
	// Output: FF

One function exists per ordered base pair:

	BinaryToOctal(s string) (string, error)
	BinaryToDecimal(s string) (string, error)
	BinaryToHexadecimal(s string) (string, error)
	OctalToBinary(s string) (string, error)
	OctalToDecimal(s string) (string, error)
	OctalToHexadecimal(s string) (string, error)
	DecimalToBinary(s string) (string, error)
	DecimalToOctal(s string) (string, error)
	DecimalToHexadecimal(s string, uppercase bool) (string, error)
	HexadecimalToBinary(s string) (string, error)
	HexadecimalToOctal(s string) (string, error)
	HexadecimalToDecimal(s string) (string, error)

Convert routes between any two bases by name, and ParseUint64/FormatUint64
expose the numeric endpoints directly.

All functions are pure and stateless; the package is safe for concurrent use
without synchronisation.
*/
package baseconv
