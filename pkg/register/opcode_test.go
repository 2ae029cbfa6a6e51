package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpCodeWireValues(t *testing.T) {
	expected := map[OpCode]uint32{
		OpCode_SetDAC:         0x00000001,
		OpCode_UpdateDAC:      0x00000002,
		OpCode_CurrentRead:    0x00000004,
		OpCode_VoltageRead:    0x00000008,
		OpCode_UpdateSelector: 0x00000010,
		OpCode_UpdateLogic:    0x00000020,
		OpCode_UpdateChannel:  0x00000040,
		OpCode_Clear:          0x00000080,
		OpCode_HSPulseConfig:  0x00000100,
		OpCode_HSPulseStart:   0x00000200,
		OpCode_ModifyChannel:  0x00000400,
		OpCode_SetDACOffset:   0x00001000,
	}

	require.Len(t, AllOpCodes(), len(expected))

	for op, word := range expected {
		assert.Equal(t, []uint32{word}, op.Encode())
		assert.True(t, op.Valid())
	}
}

func TestOpCodeParseRoundTrip(t *testing.T) {
	for _, op := range AllOpCodes() {
		parsed, err := ParseOpCode(op.String())

		assert.Nil(t, err)
		assert.Equal(t, op, parsed)
	}
}

func TestOpCodeInvalid(t *testing.T) {
	assert.False(t, OpCode(0x3).Valid())
	assert.False(t, OpCode(0x800).Valid())

	_, err := ParseOpCode("NoSuchOperation")
	assert.ErrorIs(t, err, ErrInvalidOpCode)

	assert.Equal(t, "OpCode(0x00000003)", OpCode(0x3).String())
}

func TestEmptyAndTerminateWords(t *testing.T) {
	assert.Equal(t, []uint32{0x00000000}, NewEmpty().Encode())
	assert.Equal(t, []uint32{0x80008000}, NewTerminate().Encode())
}
