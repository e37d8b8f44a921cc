/*
Package bencode implements decoding and encoding of bencode, the serialization
format used by BitTorrent metadata files and messages.

Bencode knows four kinds of values: integers, byte strings, lists and dictionaries.
They are represented by the Value interface and its four implementations:
IntegerValue, ByteStringValue, *ListValue and *DictValue.

	v, err := bencode.DecodeStrict([]byte("d3:agei25e4:name4:Johne"))
	if err != nil {
		return err
	}
	name, _ := bencode.AsDict(v).Get("name")
	fmt.Println(bencode.AsByteString(name)) // John

Decoding

Decode parses one value at the start of a buffer and returns it along with the number
of bytes it consumed. In lenient mode, dictionary keys may appear in any order and
trailing bytes are left to the caller. Strict mode requires keys in strictly ascending
order and rejects trailing bytes. Every failure is reported as a *DecodeError holding
the kind of the failure and the offset at which it was detected.

Decoded values never reference the input buffer.

Encoding

Encode always produces the canonical form of a value: dictionary keys in ascending
byte-wise order and integers without redundant zeros. Encoding cannot fail.
*/
package bencode
