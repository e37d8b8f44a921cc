package bencode

// Equal reports whether a and b represent the same value: same integer,
// same bytes, lists with equal values in the same order, or dictionaries
// with the same keys mapped to equal values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}

	switch x := a.(type) {
	case IntegerValue:
		y, ok := b.(IntegerValue)
		return ok && x.Equal(y)
	case ByteStringValue:
		y, ok := b.(ByteStringValue)
		return ok && x == y
	case *ListValue:
		y, ok := b.(*ListValue)
		if !ok || len(x.values) != len(y.values) {
			return false
		}
		for i := range x.values {
			if !Equal(x.values[i], y.values[i]) {
				return false
			}
		}
		return true
	case *DictValue:
		y, ok := b.(*DictValue)
		if !ok || len(x.entries) != len(y.entries) {
			return false
		}
		// entries are sorted on both sides
		for i := range x.entries {
			if x.entries[i].Key != y.entries[i].Key || !Equal(x.entries[i].Value, y.entries[i].Value) {
				return false
			}
		}
		return true
	}

	return false
}
