package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint32(0x0), AllOnes[uint32](0))
	assert.Equal(t, uint32(0x1), AllOnes[uint32](1))
	assert.Equal(t, uint32(0x3FF), AllOnes[uint32](10))
	assert.Equal(t, uint32(0xFFFF), AllOnes[uint32](16))
	assert.Equal(t, uint16(0x7), AllOnes[uint16](3))
}

func TestBitView_Read(t *testing.T) {
	value := uint32(0xA0A08000)
	view := CreateBitView(&value)

	assert.Equal(t, uint32(0x8000), view.Read(0, 16))
	assert.Equal(t, uint32(0xA0A0), view.Read(16, 16))
	assert.Equal(t, uint32(0x1), view.Read(15, 1))
}

func TestBitView_WriteReplacesRange(t *testing.T) {
	value := uint32(0x80008000)
	view := CreateBitView(&value)

	view.Write(0xA0A0, 16, 16)
	assert.Equal(t, uint32(0xA0A08000), value)

	// A second write to the same range must not accumulate bits
	view.Write(0x0001, 0, 16)
	assert.Equal(t, uint32(0xA0A00001), value)
}

func TestBitView_WriteIgnoresBitsOutsideRange(t *testing.T) {
	value := uint32(0)
	view := CreateBitView(&value)

	view.Write(0xFFFF, 0, 4)
	assert.Equal(t, uint32(0xF), value)
}

func TestBitView_SetClearBits(t *testing.T) {
	value := uint32(0)
	view := CreateBitView(&value)

	view.SetBits(4, 4)
	assert.Equal(t, uint32(0xF0), value)

	view.ClearBits(4, 2)
	assert.Equal(t, uint32(0xC0), value)

	view.SetBit(0)
	assert.True(t, view.Bit(0))
	assert.Equal(t, uint32(0xC1), value)

	view.ClearBit(7)
	assert.False(t, view.Bit(7))
	assert.Equal(t, uint32(0x41), value)
}
