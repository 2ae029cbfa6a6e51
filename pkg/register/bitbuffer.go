package register

import "fmt"

// Number of bits in one wire word
const wordBits = 32

// bitBuffer is a fixed-length bit sequence packed most-significant-bit
// first into 32-bit words: bit position 0 is the most significant bit of
// word 0, position 32 the most significant bit of word 1, and so on. This
// matches the layout ArC2 expects for its packed configuration registers.
type bitBuffer struct {
	words []uint32
	bits  int
}

// Creates a zeroed buffer of the given bit length, spanning as many whole
// words as the length requires
func newBitBuffer(bits int) bitBuffer {
	return bitBuffer{
		words: make([]uint32, (bits+wordBits-1)/wordBits),
		bits:  bits,
	}
}

// Returns the number of bits held by the buffer
func (b bitBuffer) Len() int {
	return b.bits
}

func (b bitBuffer) checkPos(pos int) {
	if pos < 0 || pos >= b.bits {
		panic(fmt.Errorf("bit position %v out of range, buffer holds %v bits", pos, b.bits))
	}
}

// Returns the bit at the given position
func (b bitBuffer) Bit(pos int) bool {
	b.checkPos(pos)
	shift := wordBits - 1 - pos%wordBits
	return (b.words[pos/wordBits]>>shift)&1 == 1
}

// Sets or clears the bit at the given position
func (b bitBuffer) SetBit(pos int, value bool) {
	b.checkPos(pos)
	shift := wordBits - 1 - pos%wordBits

	if value {
		b.words[pos/wordBits] |= 1 << shift
	} else {
		b.words[pos/wordBits] &^= 1 << shift
	}
}

// Writes a value into the bit range [pos, pos+width), most significant bit
// first. Ranges may straddle a word boundary; the value is split across the
// adjacent words exactly as it lands.
func (b bitBuffer) Store(pos int, width int, value uint32) {
	for i := 0; i < width; i++ {
		b.SetBit(pos+i, (value>>(width-1-i))&1 == 1)
	}
}

// Reads the bit range [pos, pos+width) back into a value, most significant
// bit first
func (b bitBuffer) Load(pos int, width int) uint32 {
	var value uint32

	for i := 0; i < width; i++ {
		value <<= 1

		if b.Bit(pos + i) {
			value |= 1
		}
	}

	return value
}

// Returns a fresh copy of the backing words
func (b bitBuffer) Words() []uint32 {
	words := make([]uint32, len(b.words))
	copy(words, b.words)
	return words
}
