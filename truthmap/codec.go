// SPDX-License-Identifier: MIT
// Package: hamcycle/truthmap
//
// codec.go - Encode/Decode between truth tables and padded bitmaps.
//
// Contract:
//   • Encode walks the table in its stored order; '1' for Hamiltonian, '0'
//     otherwise, then right-pads with '0' to the smallest power of two ≥ Len.
//   • An empty table is rejected with hamilton.ErrInsufficientCombinations.
//   • Decode(index) is valid only for 0 ≤ index < Len; the padding region
//     yields ErrIndexOutOfRange.

package truthmap

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/hamcycle/hamilton"
)

// Bit characters of the bitmap alphabet.
const (
	BitSet   = '1'
	BitClear = '0'
)

var (
	// ErrIndexOutOfRange indicates an index beyond the real table (for example
	// in the padding region of the bitmap). It matches
	// hamilton.ErrIndexOutOfRange under errors.Is.
	ErrIndexOutOfRange = fmt.Errorf("truthmap: %w", hamilton.ErrIndexOutOfRange)

	// ErrMalformedBitmap indicates a bitmap with a foreign character or a
	// length that is not a power of two.
	ErrMalformedBitmap = errors.New("truthmap: malformed bitmap")

	// ErrMalformedAddress indicates an address that is not a binary string.
	ErrMalformedAddress = errors.New("truthmap: malformed address")
)

// Table is the read side of a truth table the codec needs.
type Table[V hamilton.Vertex] interface {
	Len() int
	Bits() []bool
	At(i int) (hamilton.Entry[V], error)
}

var _ Table[string] = (*hamilton.TruthTable[string])(nil)

// Encode serializes t into a padded bitmap.
func Encode[V hamilton.Vertex](t Table[V]) (string, error) {
	bm, err := EncodeBits(t.Bits())
	if err != nil {
		return "", fmt.Errorf("Encode: %w", err)
	}

	return bm, nil
}

// EncodeBits serializes classifications in order into a padded bitmap.
func EncodeBits(flags []bool) (string, error) {
	if len(flags) == 0 {
		return "", hamilton.ErrInsufficientCombinations
	}

	var sb strings.Builder
	size := PaddedLength(len(flags))
	sb.Grow(size)
	for _, f := range flags {
		if f {
			sb.WriteByte(BitSet)
		} else {
			sb.WriteByte(BitClear)
		}
	}
	for i := len(flags); i < size; i++ {
		sb.WriteByte(BitClear)
	}

	return sb.String(), nil
}

// Decode returns the table entry at index, paired with its classification.
// Callers must not pass padding addresses; they are rejected.
func Decode[V hamilton.Vertex](index int, t Table[V]) (hamilton.Entry[V], error) {
	if index < 0 || index >= t.Len() {
		return hamilton.Entry[V]{}, fmt.Errorf("Decode: index=%d not in [0,%d): %w", index, t.Len(), ErrIndexOutOfRange)
	}

	return t.At(index)
}

// PaddedLength returns the smallest power of two ≥ max(n,1).
func PaddedLength(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AddressWidth returns log2 of a power-of-two bitmap length: the number of
// binary digits of an address.
func AddressWidth(length int) int {
	if length <= 1 {
		return 0
	}

	return bits.Len(uint(length - 1))
}

// Validate checks the alphabet and the power-of-two length of bitmap.
func Validate(bitmap string) error {
	if !IsPowerOfTwo(len(bitmap)) {
		return fmt.Errorf("Validate: length=%d: %w", len(bitmap), ErrMalformedBitmap)
	}
	for i := 0; i < len(bitmap); i++ {
		if c := bitmap[i]; c != BitSet && c != BitClear {
			return fmt.Errorf("Validate: byte %q at %d: %w", c, i, ErrMalformedBitmap)
		}
	}

	return nil
}

// ParseAddress parses a binary-string address such as "0110".
func ParseAddress(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("ParseAddress: empty: %w", ErrMalformedAddress)
	}
	v, err := strconv.ParseUint(s, 2, bits.UintSize-1)
	if err != nil {
		return 0, fmt.Errorf("ParseAddress: %q: %w", s, errors.Join(ErrMalformedAddress, err))
	}

	return int(v), nil
}

// FormatAddress renders index as a zero-padded binary string of width digits.
func FormatAddress(index, width int) string {
	s := strconv.FormatUint(uint64(index), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}

	return s
}
