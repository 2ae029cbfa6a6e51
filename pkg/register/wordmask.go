package register

import (
	"fmt"

	"github.com/arc-instruments/arc2go/pkg/utils"
)

// Word counts accepted by NewWordMask
const (
	minMaskWords = 1
	maxMaskWords = 4
)

// Generic per-channel enable mask.
//
// A WordMask holds one boolean flag per channel over a fixed number of wire
// words, 32 channels per word. Its channel to bit mapping is the reverse of
// ChannelConf's forward layout: channel 0 is the least significant bit of
// the last word and the highest channel the most significant bit of the
// first word. Both conventions exist side by side in the instrument and
// each must be kept bit-exact.
//
// The word count is fixed at construction; masks are never resized. Use the
// ADCMask and IOMask constructors for the two mask sizes ArC2 actually
// ingests.
type WordMask struct {
	bits bitBuffer
}

// Creates a new all-zero mask spanning the given number of wire words,
// between 1 and 4. Word counts outside that range are a defect in the
// caller and panic.
func NewWordMask(words int) WordMask {
	if words < minMaskWords || words > maxMaskWords {
		panic(fmt.Errorf("mask word count %v out of range [%v, %v]", words, minMaskWords, maxMaskWords))
	}

	return WordMask{bits: newBitBuffer(words * wordBits)}
}

// Creates the measurement channel selection mask: 2 words, 64 channels.
// Usually paired with OpCode_CurrentRead or OpCode_VoltageRead to pick the
// channels a measurement samples.
func NewADCMask() WordMask {
	return NewWordMask(2)
}

// Creates the I/O channel selection mask: 1 word, 32 channels. Usually
// paired with OpCode_UpdateLogic to pick the logic channels an operation
// drives.
func NewIOMask() WordMask {
	return NewWordMask(1)
}

// Maps a channel index to its bit position in the mask's msb-first bit
// sequence. The mapping is reversed: channel 0 sits at the very last
// position.
func (m WordMask) bitPos(chan_ int) int {
	checkChannel(chan_, m.Len())
	return m.bits.Len() - 1 - chan_
}

// Returns the number of channels the mask holds
func (m WordMask) Len() int {
	return m.bits.Len()
}

// Enables or disables the specified channel
func (m *WordMask) SetChannel(chan_ int, enabled bool) {
	m.bits.SetBit(m.bitPos(chan_), enabled)
}

// Enables or disables all channels
func (m *WordMask) SetAll(enabled bool) {
	for chan_ := 0; chan_ < m.Len(); chan_++ {
		m.SetChannel(chan_, enabled)
	}
}

// Flips the specified channel
func (m *WordMask) ToggleChannel(chan_ int) {
	m.SetChannel(chan_, !m.Channel(chan_))
}

// Returns whether the specified channel is enabled
func (m WordMask) Channel(chan_ int) bool {
	return m.bits.Bit(m.bitPos(chan_))
}

// Returns the indices of all enabled channels
func (m WordMask) String() string {
	enabled := make([]int, 0, m.Len())

	for chan_ := 0; chan_ < m.Len(); chan_++ {
		if m.Channel(chan_) {
			enabled = append(enabled, chan_)
		}
	}

	return "[" + utils.FormatSlice(enabled, ", ") + "]"
}

// Returns the wire words of the mask
func (m WordMask) Encode() []uint32 {
	return m.bits.Words()
}
