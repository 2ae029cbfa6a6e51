package register

import (
	"errors"
	"fmt"

	"github.com/arc-instruments/arc2go/pkg/utils"
)

// Output mode of a single ArC2 channel
type ChannelState uint32

const (
	// Channel open, no connection
	ChannelState_Open ChannelState = 0x1
	// Channel closed to ground
	ChannelState_CloseGND ChannelState = 0x2
	// Channel capacitively tied to ground
	ChannelState_CapGND ChannelState = 0x3
	// Channel connected to the arbitrary voltage source
	ChannelState_VoltArb ChannelState = 0x4
	// Channel connected to the arbitrary current source
	ChannelState_CurArb ChannelState = 0x5
	// Channel set for high speed pulsing
	ChannelState_HiSpeed ChannelState = 0x6
)

// Width of one channel state code on the wire
const channelStateBits = 3

var channelStateNames = map[ChannelState]string{
	ChannelState_Open:     "Open",
	ChannelState_CloseGND: "CloseGND",
	ChannelState_CapGND:   "CapGND",
	ChannelState_VoltArb:  "VoltArb",
	ChannelState_CurArb:   "CurArb",
	ChannelState_HiSpeed:  "HiSpeed",
}

var channelStateValues = utils.InvertedMap(channelStateNames)

var ErrInvalidChannelState error = errors.New("invalid channel state")

// Returns all channel states understood by the instrument, in ascending
// wire order
func AllChannelStates() []ChannelState {
	return []ChannelState{
		ChannelState_Open,
		ChannelState_CloseGND,
		ChannelState_CapGND,
		ChannelState_VoltArb,
		ChannelState_CurArb,
		ChannelState_HiSpeed,
	}
}

// Returns the channel state corresponding to the given name
func ParseChannelState(name string) (ChannelState, error) {
	if state, hasState := channelStateValues[name]; hasState {
		return state, nil
	}

	return 0, utils.MakeError(ErrInvalidChannelState, "'%v'", name)
}

// Returns whether the value is one of the six states understood by the
// instrument. Codes 0 and 7 fit in the wire field but are never produced.
func (s ChannelState) Valid() bool {
	_, hasState := channelStateNames[s]
	return hasState
}

// Returns the name of the channel state
func (s ChannelState) String() string {
	if name, hasState := channelStateNames[s]; hasState {
		return name
	}

	return fmt.Sprintf("ChannelState(%v)", uint32(s))
}

// Channel configuration register.
//
// A ChannelConf holds the output mode of every channel as a dense sequence
// of 3-bit state codes: channel i occupies bits [3i, 3i+3) of the register's
// most-significant-bit-first bit sequence, so a code may straddle two
// adjacent wire words. The register is typically paired with
// OpCode_UpdateChannel to apply a new routing configuration.
//
// Only the six ChannelState codes can be written through the setters.
// Reading a channel whose bits do not form a valid code, which can only
// happen for channels never written since construction, is a programming
// error and panics.
type ChannelConf struct {
	bits     bitBuffer
	channels int
}

// Creates a new configuration register for the given number of channels.
// All channel bits start at zero; every channel must be given a state
// before it is read back.
func NewChannelConf(channels int) ChannelConf {
	return ChannelConf{
		bits:     newBitBuffer(channels * channelStateBits),
		channels: channels,
	}
}

// Returns the number of channels the register holds
func (c ChannelConf) Len() int {
	return c.channels
}

// Sets the state of the specified channel
func (c *ChannelConf) SetChannel(chan_ int, state ChannelState) {
	checkChannel(chan_, c.channels)

	if !state.Valid() {
		panic(utils.MakeError(ErrInvalidChannelState, "%v", uint32(state)))
	}

	c.bits.Store(chan_*channelStateBits, channelStateBits, uint32(state))
}

// Sets all channels to the same state
func (c *ChannelConf) SetAll(state ChannelState) {
	for chan_ := 0; chan_ < c.channels; chan_++ {
		c.SetChannel(chan_, state)
	}
}

// Returns the state of the specified channel. Panics if the channel's bits
// do not hold one of the six valid codes.
func (c ChannelConf) Channel(chan_ int) ChannelState {
	checkChannel(chan_, c.channels)

	state := ChannelState(c.bits.Load(chan_*channelStateBits, channelStateBits))

	if !state.Valid() {
		panic(utils.MakeError(ErrInvalidChannelState, "channel %v holds code %v", chan_, uint32(state)))
	}

	return state
}

// Returns a fresh iterator over all channel states starting at channel 0.
// The iterator reads the register without owning it; each call yields an
// independent iteration.
func (c *ChannelConf) States() ChannelConfIterator {
	return ChannelConfIterator{conf: c}
}

// Returns the per-channel states as a comma separated list
func (c ChannelConf) String() string {
	states := utils.Iota(c.channels, func(chan_ int) ChannelState {
		return ChannelState(c.bits.Load(chan_*channelStateBits, channelStateBits))
	})

	return "[" + utils.FormatSlice(states, ", ") + "]"
}

// Returns the wire words of the packed state codes, ceil(3N/32) words for
// N channels
func (c ChannelConf) Encode() []uint32 {
	return c.bits.Words()
}

// Forward iteration over the channel states of a ChannelConf
type ChannelConfIterator struct {
	conf *ChannelConf
	next int
}

// Returns the next channel state, or false once all channels have been
// visited
func (it *ChannelConfIterator) Next() (ChannelState, bool) {
	if it.next >= it.conf.channels {
		return 0, false
	}

	state := it.conf.Channel(it.next)
	it.next++

	return state, true
}
