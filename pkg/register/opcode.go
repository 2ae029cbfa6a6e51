package register

import (
	"errors"
	"fmt"

	"github.com/arc-instruments/arc2go/pkg/utils"
)

// Designates an ArC2 operation. An OpCode is the first register of an
// instruction and may be followed by a series of argument registers.
type OpCode uint32

const (
	// Set a DAC configuration
	OpCode_SetDAC OpCode = 0x00000001
	// Enable a DAC configuration previously set with OpCode_SetDAC
	OpCode_UpdateDAC OpCode = 0x00000002
	// Read current operation
	OpCode_CurrentRead OpCode = 0x00000004
	// Read voltage operation
	OpCode_VoltageRead OpCode = 0x00000008
	// Set selector
	OpCode_UpdateSelector OpCode = 0x00000010
	// Set logic levels
	OpCode_UpdateLogic OpCode = 0x00000020
	// Update channel configuration
	OpCode_UpdateChannel OpCode = 0x00000040
	// Clear instrument buffer
	OpCode_Clear OpCode = 0x00000080
	// Configure for high speed pulse operation
	OpCode_HSPulseConfig OpCode = 0x00000100
	// Initiate a high speed pulse operation
	OpCode_HSPulseStart OpCode = 0x00000200
	// Modify channel configuration
	OpCode_ModifyChannel OpCode = 0x00000400
	// Set DAC offsets
	OpCode_SetDACOffset OpCode = 0x00001000
)

var opCodeMnemonics = map[OpCode]string{
	OpCode_SetDAC:         "SetDAC",
	OpCode_UpdateDAC:      "UpdateDAC",
	OpCode_CurrentRead:    "CurrentRead",
	OpCode_VoltageRead:    "VoltageRead",
	OpCode_UpdateSelector: "UpdateSelector",
	OpCode_UpdateLogic:    "UpdateLogic",
	OpCode_UpdateChannel:  "UpdateChannel",
	OpCode_Clear:          "Clear",
	OpCode_HSPulseConfig:  "HSPulseConfig",
	OpCode_HSPulseStart:   "HSPulseStart",
	OpCode_ModifyChannel:  "ModifyChannel",
	OpCode_SetDACOffset:   "SetDACOffset",
}

var opCodeValues = utils.InvertedMap(opCodeMnemonics)

var ErrInvalidOpCode error = errors.New("invalid instruction opcode")

// Returns all opcodes understood by the instrument, in ascending wire order
func AllOpCodes() []OpCode {
	return []OpCode{
		OpCode_SetDAC,
		OpCode_UpdateDAC,
		OpCode_CurrentRead,
		OpCode_VoltageRead,
		OpCode_UpdateSelector,
		OpCode_UpdateLogic,
		OpCode_UpdateChannel,
		OpCode_Clear,
		OpCode_HSPulseConfig,
		OpCode_HSPulseStart,
		OpCode_ModifyChannel,
		OpCode_SetDACOffset,
	}
}

// Returns the opcode corresponding to the given mnemonic
func ParseOpCode(mnemonic string) (OpCode, error) {
	if op, hasOpCode := opCodeValues[mnemonic]; hasOpCode {
		return op, nil
	}

	return 0, utils.MakeError(ErrInvalidOpCode, "'%v'", mnemonic)
}

// Returns whether the value is one of the opcodes understood by the instrument
func (op OpCode) Valid() bool {
	_, hasOpCode := opCodeMnemonics[op]
	return hasOpCode
}

// Returns the mnemonic of the opcode
func (op OpCode) String() string {
	if mnemonic, hasOpCode := opCodeMnemonics[op]; hasOpCode {
		return mnemonic
	}

	return fmt.Sprintf("OpCode(%v)", utils.FormatUintHex(uint64(op), 8))
}

// Returns the single wire word carrying the opcode tag
func (op OpCode) Encode() []uint32 {
	return []uint32{uint32(op)}
}
