package register

import (
	"errors"
	"fmt"

	"github.com/arc-instruments/arc2go/pkg/utils"
)

// Operating mode of the ArC2 current source
type CurSourceState uint32

const (
	// Maintain the previous current source state
	CurSourceState_Maintain CurSourceState = 0x0
	// Disconnect the current source
	CurSourceState_Open CurSourceState = 0x1
	// Connect the current source to the arbitrary voltage generator
	CurSourceState_VoltageArb CurSourceState = 0x2
	// Set the current source for high speed pulsing
	CurSourceState_HiSpeed CurSourceState = 0x3
)

var curSourceStateNames = map[CurSourceState]string{
	CurSourceState_Maintain:   "Maintain",
	CurSourceState_Open:       "Open",
	CurSourceState_VoltageArb: "VoltageArb",
	CurSourceState_HiSpeed:    "HiSpeed",
}

var curSourceStateValues = utils.InvertedMap(curSourceStateNames)

var ErrInvalidCurSourceState error = errors.New("invalid current source state")

// Returns all current source states understood by the instrument, in
// ascending wire order
func AllCurSourceStates() []CurSourceState {
	return []CurSourceState{
		CurSourceState_Maintain,
		CurSourceState_Open,
		CurSourceState_VoltageArb,
		CurSourceState_HiSpeed,
	}
}

// Returns the current source state corresponding to the given name
func ParseCurSourceState(name string) (CurSourceState, error) {
	if state, hasState := curSourceStateValues[name]; hasState {
		return state, nil
	}

	return 0, utils.MakeError(ErrInvalidCurSourceState, "'%v'", name)
}

// Returns whether the value is one of the four states understood by the
// instrument
func (s CurSourceState) Valid() bool {
	_, hasState := curSourceStateNames[s]
	return hasState
}

// Returns the name of the current source state
func (s CurSourceState) String() string {
	if name, hasState := curSourceStateNames[s]; hasState {
		return name
	}

	return fmt.Sprintf("CurSourceState(%v)", uint32(s))
}

// Layout of the source configuration word
const (
	// Maximum accepted digipot value; larger requests are clamped
	SourceConfMaxDigipot uint32 = 0x300
	// Digipot value selected on construction
	SourceConfDefaultDigipot uint32 = 0x1CD

	// First bit of the digipot field in the configuration word
	sourceConfDigipotBit = 22
	// Width of the digipot field
	sourceConfDigipotBits = 10
	// First bit of the current source state field
	sourceConfStateBit = 0
	// Width of the current source state field; defined states only use
	// the low 2 bits, the upper 2 are always zero
	sourceConfStateBits = 4
)

// Source configuration register.
//
// A SourceConf packs the output digipot value and the current source mode
// into a single word: the digipot occupies the 10 most significant bits,
// the current source state the 4 least significant. It is usually paired
// with OpCode_UpdateDAC when (re)configuring the source path.
type SourceConf struct {
	word uint32
}

// Creates a new source configuration with the default digipot value and
// the current source left in its previous state
func NewSourceConf() SourceConf {
	conf := SourceConf{}
	conf.SetDigipot(SourceConfDefaultDigipot)
	conf.SetCurSourceState(CurSourceState_Maintain)

	return conf
}

// Sets the digipot value. Values above SourceConfMaxDigipot are silently
// clamped to it; the clamp keeps the request in the source's safe operating
// range and is not an error.
func (c *SourceConf) SetDigipot(value uint32) {
	if value > SourceConfMaxDigipot {
		value = SourceConfMaxDigipot
	}

	utils.CreateBitView(&c.word).Write(value, sourceConfDigipotBit, sourceConfDigipotBits)
}

// Returns the digipot value, after clamping
func (c SourceConf) Digipot() uint32 {
	return utils.CreateBitView(&c.word).Read(sourceConfDigipotBit, sourceConfDigipotBits)
}

// Sets the current source state
func (c *SourceConf) SetCurSourceState(state CurSourceState) {
	if !state.Valid() {
		panic(utils.MakeError(ErrInvalidCurSourceState, "%v", uint32(state)))
	}

	utils.CreateBitView(&c.word).Write(uint32(state), sourceConfStateBit, sourceConfStateBits)
}

// Returns the current source state. Panics if the state field does not hold
// one of the four valid codes, which cannot happen for registers built
// through the public API.
func (c SourceConf) CurSourceState() CurSourceState {
	state := CurSourceState(utils.CreateBitView(&c.word).Read(sourceConfStateBit, sourceConfStateBits))

	if !state.Valid() {
		panic(utils.MakeError(ErrInvalidCurSourceState, "%v", uint32(state)))
	}

	return state
}

func (c SourceConf) String() string {
	return fmt.Sprintf("SourceConf{digipot: %v, cursource: %v}",
		utils.FormatUintHex(uint64(c.Digipot()), 3), c.CurSourceState())
}

// Returns the single wire word carrying both sub-fields
func (c SourceConf) Encode() []uint32 {
	return []uint32{c.word}
}

// Returns the bit fields of the configuration word for diagram rendering
func (c SourceConf) WordFields(word int) []utils.AsciiFrameField {
	return []utils.AsciiFrameField{
		{Name: "cursource", Begin: sourceConfStateBit, Width: sourceConfStateBits},
		{Name: "digipot", Begin: sourceConfDigipotBit, Width: sourceConfDigipotBits},
	}
}
