// Package nanoid generates short, URL-safe, collision-resistant random
// identifiers from a configurable alphabet, using unbiased rejection
// sampling over a cryptographically secure random source.
//
// A NanoID does not guarantee global uniqueness; it is a random string
// whose collision probability follows the usual birthday bound for the
// chosen alphabet and size. The defaults (21 symbols from a 64-symbol
// alphabet) give a keyspace comparable to UUID v4.
package nanoid

// NanoID is an immutable sequence of bytes, normally the UTF-8 encoding
// of a generated identifier. Arbitrary byte sequences can be wrapped via
// FromBytes, so a NanoID is not guaranteed to hold generator output or
// even valid UTF-8.
//
// NanoID values are comparable: two NanoIDs are equal under == exactly
// when their byte sequences are identical, and they hash consistently
// with that equality, so NanoIDs can be used as map keys. The zero value
// is the empty identifier.
type NanoID struct {
	b string
}

// FromBytes returns a NanoID wrapping a copy of the given byte sequence
// verbatim. It never fails and does not validate alphabet membership,
// length, or UTF-8 well-formedness. Later changes to b do not affect the
// returned NanoID.
func FromBytes(b []byte) NanoID {
	return NanoID{b: string(b)}
}

// FromString returns a NanoID wrapping the UTF-8 encoding of s. It is
// the inverse of String.
func FromString(s string) NanoID {
	return NanoID{b: s}
}

// Bytes returns a copy of the identifier's bytes. Mutating the returned
// slice does not affect the NanoID.
func (id NanoID) Bytes() []byte {
	return []byte(id.b)
}

// Size returns the length of the identifier in bytes, not in symbols.
// The two differ when the identifier holds multi-byte UTF-8 symbols;
// for the pure-ASCII default alphabet they coincide.
func (id NanoID) Size() int {
	return len(id.b)
}

// String returns the identifier's bytes as a string. Go strings carry
// arbitrary bytes, so identifiers built from non-UTF-8 input round-trip
// losslessly; invalid sequences surface as replacement characters only
// when the caller iterates the result rune by rune.
func (id NanoID) String() string {
	return id.b
}
