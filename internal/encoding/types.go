package encoding

// Bytes that introduce or close a token.
// Byte strings have no marker: they start with the first digit of their length.
const (
	IntegerValue byte = 'i'
	ListValue    byte = 'l'
	DictValue    byte = 'd'

	// End closes integers, lists and dictionaries.
	End byte = 'e'

	// LengthSeparator separates the length of a byte string from its content.
	LengthSeparator byte = ':'

	Minus byte = '-'
)

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
