package register

import (
	"github.com/arc-instruments/arc2go/pkg/utils"
)

// Layout of one voltage word
const (
	// Voltage code corresponding to zero volts on both halves
	DACVoltageZero uint16 = 0x8000

	// First bit of the low voltage code
	dacVoltageLowBit = 0
	// First bit of the high voltage code
	dacVoltageHighBit = 16
	// Width of one voltage code
	dacVoltageBits = 16
)

// DAC voltage register.
//
// A DACVoltage holds a pair of bipolar 16-bit voltage codes, (Vlow, Vhigh),
// for each of its channels. A channel occupies exactly one wire word with
// Vhigh in the upper half and Vlow in the lower half; both halves default
// to 0x8000, the code for zero volts. The register carries raw DAC codes
// only, converting physical voltages into codes happens upstream.
type DACVoltage struct {
	words []uint32
}

// Channels of a voltage register created with NewDACVoltage
const DACVoltageDefaultChannels = 4

// Creates a new voltage register for 4 channels, all set to zero volts
func NewDACVoltage() DACVoltage {
	return NewDACVoltageWithChannels(DACVoltageDefaultChannels)
}

// Creates a new voltage register for the given number of channels, all set
// to zero volts
func NewDACVoltageWithChannels(channels int) DACVoltage {
	words := make([]uint32, channels)

	for i := range words {
		words[i] = uint32(DACVoltageZero)<<dacVoltageHighBit | uint32(DACVoltageZero)
	}

	return DACVoltage{words: words}
}

// Returns the number of channels the register holds
func (v DACVoltage) Len() int {
	return len(v.words)
}

// Sets the high voltage code of the specified channel
func (v *DACVoltage) SetHigh(chan_ int, voltage uint16) {
	checkChannel(chan_, len(v.words))
	utils.CreateBitView(&v.words[chan_]).Write(uint32(voltage), dacVoltageHighBit, dacVoltageBits)
}

// Sets the low voltage code of the specified channel
func (v *DACVoltage) SetLow(chan_ int, voltage uint16) {
	checkChannel(chan_, len(v.words))
	utils.CreateBitView(&v.words[chan_]).Write(uint32(voltage), dacVoltageLowBit, dacVoltageBits)
}

// Sets both voltage codes of the specified channel to the same value, the
// typical case for a symmetric output
func (v *DACVoltage) Set(chan_ int, voltage uint16) {
	v.SetHigh(chan_, voltage)
	v.SetLow(chan_, voltage)
}

// Returns the high voltage code of the specified channel
func (v DACVoltage) High(chan_ int) uint16 {
	checkChannel(chan_, len(v.words))
	return uint16(utils.CreateBitView(&v.words[chan_]).Read(dacVoltageHighBit, dacVoltageBits))
}

// Returns the low voltage code of the specified channel
func (v DACVoltage) Low(chan_ int) uint16 {
	checkChannel(chan_, len(v.words))
	return uint16(utils.CreateBitView(&v.words[chan_]).Read(dacVoltageLowBit, dacVoltageBits))
}

// Returns both voltage codes of the specified channel as (low, high)
func (v DACVoltage) Voltages(chan_ int) (uint16, uint16) {
	return v.Low(chan_), v.High(chan_)
}

// Returns the per-channel (low, high) code pairs
func (v DACVoltage) String() string {
	pairs := utils.Iota(len(v.words), func(chan_ int) string {
		return "(" + utils.FormatUintHex(uint64(v.Low(chan_)), 4) +
			", " + utils.FormatUintHex(uint64(v.High(chan_)), 4) + ")"
	})

	return "[" + utils.FormatSlice(pairs, ", ") + "]"
}

// Returns the wire words, one per channel
func (v DACVoltage) Encode() []uint32 {
	words := make([]uint32, len(v.words))
	copy(words, v.words)
	return words
}

// Returns the bit fields of a voltage word for diagram rendering; the
// layout is identical for every channel
func (v DACVoltage) WordFields(word int) []utils.AsciiFrameField {
	return []utils.AsciiFrameField{
		{Name: "Vlow", Begin: dacVoltageLowBit, Width: dacVoltageBits},
		{Name: "Vhigh", Begin: dacVoltageHighBit, Width: dacVoltageBits},
	}
}
