// Package intset implements an immutable family of compact sets of
// non-negative integers (row-ids): a contiguous range, a sorted array, and a
// packed bitmap, unified behind one IntSet interface. It is the primitive
// the column store's filters, partitions, and indexes are built from.
package intset

import "math/bits"

// wordBits is the width of one bitmap word, matching the spec's 32-bit
// word layout.
const wordBits = 32

// InWord returns the word index containing bit position bit.
func InWord(bit int) int {
	return bit >> 5
}

// InWordOffset returns the bit offset within its word for bit position bit.
func InWordOffset(bit int) int {
	return bit & 31
}

// SetBit returns word with the bit at pos (mod 32) set.
func SetBit(pos int, word uint32) uint32 {
	return word | (uint32(1) << uint(pos&31))
}

// UnsetBit returns word with the bit at pos (mod 32) cleared.
func UnsetBit(pos int, word uint32) uint32 {
	return word &^ (uint32(1) << uint(pos&31))
}

// HasBit reports whether the bit at pos (mod 32) is set in word.
func HasBit(pos int, word uint32) bool {
	return word&(uint32(1)<<uint(pos&31)) != 0
}

// CountBits returns the population count (number of set bits) of word.
func CountBits(word uint32) int {
	return bits.OnesCount32(word)
}

// MinBit returns the position of the lowest set bit in word, or -1 if word
// is zero.
func MinBit(word uint32) int {
	if word == 0 {
		return -1
	}
	return bits.TrailingZeros32(word)
}

// MaxBit returns the position of the highest set bit in word, or -1 if word
// is zero.
func MaxBit(word uint32) int {
	if word == 0 {
		return -1
	}
	return 31 - bits.LeadingZeros32(word)
}
