package tinyid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	// Size is the number of random bytes carried by an ID.
	Size = 8

	// EncodedLen is the length of the canonical string form:
	// ceil(Size*8 / log2(58)).
	EncodedLen = 11

	// Alphabet lists the encoding digits in value order. It is the Bitcoin
	// base58 alphabet: letters and digits without 0, O, I and l.
	Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// ID is a compact identifier. The zero value is Nil.
type ID [Size]byte

// Nil is the all-zero ID. It encodes to EncodedLen copies of Alphabet[0].
var Nil ID

var alphabetIndex = func() [256]int8 {
	var index [256]int8
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		index[Alphabet[i]] = int8(i)
	}
	return index
}()

// Parse decodes the canonical string form of an ID. The input must be exactly
// EncodedLen characters from Alphabet and denote a value that fits in Size
// bytes; anything else yields an error matching ErrInvalidFormat.
func Parse(s string) (ID, error) {
	if len(s) != EncodedLen {
		return Nil, newParseError(s, fmt.Sprintf("length is %d, want %d", len(s), EncodedLen))
	}
	for i := 0; i < len(s); i++ {
		if alphabetIndex[s[i]] < 0 {
			return Nil, newParseError(s, fmt.Sprintf("character %q at position %d is not in the alphabet", s[i], i))
		}
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return Nil, newParseError(s, err.Error())
	}
	// leading alphabet zeros decode to leading zero bytes
	raw = bytes.TrimLeft(raw, "\x00")
	if len(raw) > Size {
		return Nil, newParseError(s, "value overflows 64 bits")
	}
	var id ID
	copy(id[Size-len(raw):], raw)
	return id, nil
}

// MustParse is like Parse but panics on invalid input. It is meant for
// constants in tests and fixtures, never for user input.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Decode is an alias of Parse.
func Decode(s string) (ID, error) { return Parse(s) }

// Encode returns the canonical string form of id.
func Encode(id ID) string { return id.String() }

// FromBytes copies a Size byte slice into an ID.
func FromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidFormat, len(b), Size)
	}
	copy(id[:], b)
	return id, nil
}

// FromUint64 builds an ID from the big-endian bytes of n.
func FromUint64(n uint64) ID {
	var id ID
	binary.BigEndian.PutUint64(id[:], n)
	return id
}

// String returns the fixed-width base58 form of id.
func (id ID) String() string {
	s := base58.Encode(id[:])
	if len(s) < EncodedLen {
		s = strings.Repeat(Alphabet[:1], EncodedLen-len(s)) + s
	}
	return s
}

// Bytes returns a copy of the raw payload.
func (id ID) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, id[:])
	return out
}

// Uint64 returns the payload interpreted as a big-endian integer.
func (id ID) Uint64() uint64 {
	return binary.BigEndian.Uint64(id[:])
}

// IsNil reports whether id is the all-zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

// Compare orders IDs lexicographically over their raw bytes. It returns -1, 0
// or +1.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// Compare orders a and b over their raw bytes; usable with slices.SortFunc.
func Compare(a, b ID) int {
	return a.Compare(b)
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
