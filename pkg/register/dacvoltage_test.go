package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDACVoltageDefaults(t *testing.T) {
	voltage := NewDACVoltage()

	assert.Equal(t, DACVoltageDefaultChannels, voltage.Len())
	assert.Equal(t, []uint32{0x80008000, 0x80008000, 0x80008000, 0x80008000}, voltage.Encode())
}

func TestDACVoltageSetHigh(t *testing.T) {
	voltage := NewDACVoltage()
	voltage.SetHigh(3, 0xA0A0)

	assert.Equal(t, uint32(0xA0A08000), voltage.Encode()[3])
	assert.Equal(t, uint16(0xA0A0), voltage.High(3))
	assert.Equal(t, uint16(0x8000), voltage.Low(3))
}

func TestDACVoltageSetLowReplacesHalfWord(t *testing.T) {
	voltage := NewDACVoltage()

	voltage.SetLow(0, 0x0F0F)
	assert.Equal(t, uint32(0x80000F0F), voltage.Encode()[0])

	// A second write must not accumulate bits from the previous code
	voltage.SetLow(0, 0x1010)
	assert.Equal(t, uint32(0x80001010), voltage.Encode()[0])
}

func TestDACVoltageSetBoth(t *testing.T) {
	voltage := NewDACVoltage()
	voltage.Set(1, 0x8534)

	assert.Equal(t, uint32(0x85348534), voltage.Encode()[1])

	low, high := voltage.Voltages(1)
	assert.Equal(t, uint16(0x8534), low)
	assert.Equal(t, uint16(0x8534), high)

	t.Logf("\n%v", Dump(voltage))
}

func TestDACVoltageCustomChannelCount(t *testing.T) {
	voltage := NewDACVoltageWithChannels(8)

	assert.Equal(t, 8, voltage.Len())
	assert.Len(t, voltage.Encode(), 8)

	voltage.Set(7, 0xFFFF)
	assert.Equal(t, uint32(0xFFFFFFFF), voltage.Encode()[7])
}

func TestDACVoltageChannelOutOfRange(t *testing.T) {
	voltage := NewDACVoltage()

	assert.Panics(t, func() { voltage.SetHigh(4, 0x8000) })
	assert.Panics(t, func() { voltage.Low(-1) })
}
