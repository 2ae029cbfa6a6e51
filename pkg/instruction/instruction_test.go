package instruction

import (
	"testing"

	"github.com/arc-instruments/arc2go/pkg/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSetDAC(t *testing.T) {
	mask := register.NewDACMask()
	mask.SetChannels([]int{2, 3, 50, 61})

	voltage := register.NewDACVoltage()
	voltage.Set(1, 0x8534)

	instr, err := New(register.OpCode_SetDAC, mask, voltage)
	require.Nil(t, err)

	t.Logf("\n%v", instr.PrettyPrint())

	assert.Equal(t, []uint32{
		0x00000001, // SetDAC
		0x00009001, // selection mask
		0x80008000, 0x85348534, 0x80008000, 0x80008000, // voltages
		0x00000000, 0x00000000, // padding
		0x80008000, // terminator
	}, instr.Compile())
}

func TestCompileFullFrame(t *testing.T) {
	// A source configuration plus a 64 channel configuration fills the
	// frame exactly, no padding words left
	conf := register.NewChannelConf(64)
	conf.SetAll(register.ChannelState_VoltArb)

	instr, err := New(register.OpCode_UpdateChannel, register.NewSourceConf(), conf)
	require.Nil(t, err)

	frame := instr.Compile()
	require.Len(t, frame, FrameWords)

	assert.Equal(t, []uint32{
		0x00000040,
		0x73400000,
		0x92492492, 0x49249249, 0x24924924,
		0x92492492, 0x49249249, 0x24924924,
		0x80008000,
	}, frame)
}

func TestCompileNoArguments(t *testing.T) {
	instr, err := New(register.OpCode_Clear)
	require.Nil(t, err)

	assert.Equal(t, []uint32{
		0x00000080,
		0x00000000, 0x00000000, 0x00000000, 0x00000000,
		0x00000000, 0x00000000, 0x00000000,
		0x80008000,
	}, instr.Compile())
}

func TestCompileIsIdempotent(t *testing.T) {
	mask := register.NewADCMask()
	mask.SetChannel(0, true)

	instr, err := New(register.OpCode_CurrentRead, mask)
	require.Nil(t, err)

	assert.Equal(t, instr.Compile(), instr.Compile())
}

func TestNewRejectsOversizedArguments(t *testing.T) {
	conf := register.NewChannelConf(64)
	conf.SetAll(register.ChannelState_Open)

	// 1 + 6 + 1 = 8 argument words, one more than the frame carries
	_, err := New(register.OpCode_UpdateChannel, register.NewSourceConf(), conf, register.NewEmpty())

	assert.ErrorIs(t, err, ErrTooManyArguments)
}

func TestInstructionAccessors(t *testing.T) {
	mask := register.NewIOMask()

	instr, err := New(register.OpCode_UpdateLogic, mask)
	require.Nil(t, err)

	assert.Equal(t, register.OpCode_UpdateLogic, instr.OpCode())
	assert.Len(t, instr.Args(), 1)
	assert.Contains(t, instr.String(), "UpdateLogic")
}
