package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitBufferMsbFirstLayout(t *testing.T) {
	buffer := newBitBuffer(64)

	buffer.SetBit(0, true)
	buffer.SetBit(32, true)
	buffer.SetBit(63, true)

	assert.Equal(t, []uint32{0x80000000, 0x80000001}, buffer.Words())

	assert.True(t, buffer.Bit(0))
	assert.False(t, buffer.Bit(1))
	assert.True(t, buffer.Bit(63))

	buffer.SetBit(0, false)
	assert.Equal(t, []uint32{0x00000000, 0x80000001}, buffer.Words())
}

func TestBitBufferStoreLoadStraddlesWords(t *testing.T) {
	buffer := newBitBuffer(64)

	// A 3 bit value at position 30 spans both words
	buffer.Store(30, 3, 0x5)

	assert.Equal(t, []uint32{0x00000002, 0x80000000}, buffer.Words())
	assert.Equal(t, uint32(0x5), buffer.Load(30, 3))
}

func TestBitBufferStoreReplacesRange(t *testing.T) {
	buffer := newBitBuffer(32)

	buffer.Store(4, 8, 0xFF)
	buffer.Store(4, 8, 0xA5)

	assert.Equal(t, uint32(0xA5), buffer.Load(4, 8))
	assert.Equal(t, []uint32{0x0A500000}, buffer.Words())
}

func TestBitBufferWordsAreFresh(t *testing.T) {
	buffer := newBitBuffer(32)
	buffer.SetBit(0, true)

	words := buffer.Words()
	words[0] = 0

	assert.Equal(t, []uint32{0x80000000}, buffer.Words())
}

func TestBitBufferPositionOutOfRange(t *testing.T) {
	buffer := newBitBuffer(8)

	assert.Panics(t, func() { buffer.Bit(8) })
	assert.Panics(t, func() { buffer.SetBit(-1, true) })
}
