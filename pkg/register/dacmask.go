package register

import (
	"github.com/arc-instruments/arc2go/pkg/utils"
)

// DAC channel selection register.
//
// A DACMask builds the bitmask selecting which output channels an operation
// targets. ArC2 organises its 64 output channels into 8 DAC clusters of two
// halves each, four channels per half, plus two auxiliary DACs used for
// internal configuration. Selection is half-grained: toggling any channel
// toggles the flag of the half that carries it, so channels sharing a half
// are always selected together. The mask is usually paired with
// OpCode_UpdateDAC to set the voltages of the selected channels.
//
// The channel API (SetChannel, UnsetChannel and friends) resolves channel
// indices to half flags through a fixed lookup table; the auxiliary DACs sit
// outside the channel space and are only reachable through the raw
// DACMask_AUX0 and DACMask_AUX1 flags.
type DACMask uint32

const (
	// No flags; no channel selected
	DACMask_None DACMask = 0x00000000
	// DAC0; first half
	DACMask_CH00_03 DACMask = 0x00000001
	// DAC0; second half
	DACMask_CH04_07 DACMask = 0x00000002
	// DAC1; first half
	DACMask_CH08_11 DACMask = 0x00000004
	// DAC1; second half
	DACMask_CH12_15 DACMask = 0x00000008
	// DAC2; first half
	DACMask_CH16_19 DACMask = 0x00000010
	// DAC2; second half
	DACMask_CH20_23 DACMask = 0x00000020
	// DAC3; first half
	DACMask_CH24_27 DACMask = 0x00000040
	// DAC3; second half
	DACMask_CH28_31 DACMask = 0x00000080
	// DAC4; first half
	DACMask_CH32_35 DACMask = 0x00000100
	// DAC4; second half
	DACMask_CH36_39 DACMask = 0x00000200
	// DAC5; first half
	DACMask_CH40_43 DACMask = 0x00000400
	// DAC5; second half
	DACMask_CH44_47 DACMask = 0x00000800
	// DAC6; first half
	DACMask_CH48_51 DACMask = 0x00001000
	// DAC6; second half
	DACMask_CH52_55 DACMask = 0x00002000
	// DAC7; first half
	DACMask_CH56_59 DACMask = 0x00004000
	// DAC7; second half
	DACMask_CH60_63 DACMask = 0x00008000
	// AUX DAC0
	DACMask_AUX0 DACMask = 0x00010000
	// AUX DAC1
	DACMask_AUX1 DACMask = 0x00020000
)

const (
	// All channels of DAC0
	DACMask_DAC0 = DACMask_CH00_03 | DACMask_CH04_07
	// All channels of DAC1
	DACMask_DAC1 = DACMask_CH08_11 | DACMask_CH12_15
	// All channels of DAC2
	DACMask_DAC2 = DACMask_CH16_19 | DACMask_CH20_23
	// All channels of DAC3
	DACMask_DAC3 = DACMask_CH24_27 | DACMask_CH28_31
	// All channels of DAC4
	DACMask_DAC4 = DACMask_CH32_35 | DACMask_CH36_39
	// All channels of DAC5
	DACMask_DAC5 = DACMask_CH40_43 | DACMask_CH44_47
	// All channels of DAC6
	DACMask_DAC6 = DACMask_CH48_51 | DACMask_CH52_55
	// All channels of DAC7
	DACMask_DAC7 = DACMask_CH56_59 | DACMask_CH60_63
	// All output channels
	DACMask_All = DACMask_DAC0 | DACMask_DAC1 | DACMask_DAC2 | DACMask_DAC3 |
		DACMask_DAC4 | DACMask_DAC5 | DACMask_DAC6 | DACMask_DAC7
)

// Output channels addressable through the channel API
const dacMaskChannels = 64

// Fixed channel index to half flag lookup: channel c lives in half c/4
var dacChanMap = [dacMaskChannels]DACMask{
	DACMask_CH00_03, DACMask_CH00_03, DACMask_CH00_03, DACMask_CH00_03,
	DACMask_CH04_07, DACMask_CH04_07, DACMask_CH04_07, DACMask_CH04_07,
	DACMask_CH08_11, DACMask_CH08_11, DACMask_CH08_11, DACMask_CH08_11,
	DACMask_CH12_15, DACMask_CH12_15, DACMask_CH12_15, DACMask_CH12_15,
	DACMask_CH16_19, DACMask_CH16_19, DACMask_CH16_19, DACMask_CH16_19,
	DACMask_CH20_23, DACMask_CH20_23, DACMask_CH20_23, DACMask_CH20_23,
	DACMask_CH24_27, DACMask_CH24_27, DACMask_CH24_27, DACMask_CH24_27,
	DACMask_CH28_31, DACMask_CH28_31, DACMask_CH28_31, DACMask_CH28_31,
	DACMask_CH32_35, DACMask_CH32_35, DACMask_CH32_35, DACMask_CH32_35,
	DACMask_CH36_39, DACMask_CH36_39, DACMask_CH36_39, DACMask_CH36_39,
	DACMask_CH40_43, DACMask_CH40_43, DACMask_CH40_43, DACMask_CH40_43,
	DACMask_CH44_47, DACMask_CH44_47, DACMask_CH44_47, DACMask_CH44_47,
	DACMask_CH48_51, DACMask_CH48_51, DACMask_CH48_51, DACMask_CH48_51,
	DACMask_CH52_55, DACMask_CH52_55, DACMask_CH52_55, DACMask_CH52_55,
	DACMask_CH56_59, DACMask_CH56_59, DACMask_CH56_59, DACMask_CH56_59,
	DACMask_CH60_63, DACMask_CH60_63, DACMask_CH60_63, DACMask_CH60_63,
}

// Display names of the base flags, by bit position
var dacMaskNames = [18]string{
	"CH00_03", "CH04_07", "CH08_11", "CH12_15",
	"CH16_19", "CH20_23", "CH24_27", "CH28_31",
	"CH32_35", "CH36_39", "CH40_43", "CH44_47",
	"CH48_51", "CH52_55", "CH56_59", "CH60_63",
	"AUX0", "AUX1",
}

// Creates a new DAC selection mask with no channel selected
func NewDACMask() DACMask {
	return DACMask_None
}

// Enables the specified channel
func (m *DACMask) SetChannel(chan_ int) {
	checkChannel(chan_, dacMaskChannels)
	*m |= dacChanMap[chan_]
}

// Disables the specified channel
func (m *DACMask) UnsetChannel(chan_ int) {
	checkChannel(chan_, dacMaskChannels)
	*m &^= dacChanMap[chan_]
}

// Enables the specified channels
func (m *DACMask) SetChannels(chans []int) {
	for _, c := range chans {
		m.SetChannel(c)
	}
}

// Disables the specified channels
func (m *DACMask) UnsetChannels(chans []int) {
	for _, c := range chans {
		m.UnsetChannel(c)
	}
}

// Enables all output channels. Auxiliary DAC flags are not touched.
func (m *DACMask) SetAll() {
	*m |= DACMask_All
}

// Disables all output channels. Auxiliary DAC flags are not touched.
func (m *DACMask) UnsetAll() {
	*m &^= DACMask_All
}

// Clears every flag including the auxiliary DACs. The resulting all-zero
// mask is the valid "no selection" state, not an error.
func (m *DACMask) Clear() {
	*m = DACMask_None
}

// Combines the selections of both masks into this one
func (m *DACMask) Merge(other DACMask) {
	*m |= other
}

// Returns the raw bitmask value
func (m DACMask) Uint32() uint32 {
	return uint32(m)
}

// Returns the names of all set flags, or NONE for an empty mask
func (m DACMask) String() string {
	if m == DACMask_None {
		return "NONE"
	}

	names := make([]string, 0, len(dacMaskNames))

	for bit, name := range dacMaskNames {
		if m&(1<<bit) != 0 {
			names = append(names, name)
		}
	}

	return utils.FormatSlice(names, "|")
}

// Returns the single wire word carrying the selection flags
func (m DACMask) Encode() []uint32 {
	return []uint32{uint32(m)}
}
