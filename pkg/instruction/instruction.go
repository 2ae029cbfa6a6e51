// Package instruction assembles ArC2 command frames from typed registers.
// An instruction is an opcode register followed by its argument registers,
// padded with empty words to the instrument's fixed frame length and closed
// by a terminator word.
package instruction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arc-instruments/arc2go/pkg/register"
	"github.com/arc-instruments/arc2go/pkg/utils"
)

// Words of a full instruction frame as ingested by the instrument: one
// opcode word, up to ArgumentWords of payload plus padding, one terminator.
// The largest payload ArC2 defines, a source configuration followed by a
// 64 channel configuration, fills the frame exactly.
const FrameWords = 9

// Payload word capacity of one frame
const ArgumentWords = FrameWords - 2

var ErrTooManyArguments error = errors.New("instruction arguments exceed frame capacity")

// A single ArC2 instruction: an opcode and the ordered argument registers
// the operation consumes. Assembly is pure; compiling the same instruction
// twice yields identical frames.
type Instruction struct {
	opcode register.OpCode
	args   []register.Register
}

// Creates an instruction from an opcode and its argument registers. Fails
// if the arguments encode to more words than the frame can carry.
func New(opcode register.OpCode, args ...register.Register) (*Instruction, error) {
	words := 0

	for _, arg := range args {
		words += len(arg.Encode())
	}

	if words > ArgumentWords {
		return nil, utils.MakeError(ErrTooManyArguments, "%v needs %v argument words, frame carries %v",
			opcode, words, ArgumentWords)
	}

	return &Instruction{opcode: opcode, args: args}, nil
}

// Returns the opcode of the instruction
func (i *Instruction) OpCode() register.OpCode {
	return i.opcode
}

// Returns the argument registers of the instruction, in frame order
func (i *Instruction) Args() []register.Register {
	args := make([]register.Register, len(i.args))
	copy(args, i.args)
	return args
}

// Compiles the instruction into its full wire frame: opcode word, argument
// words in order, empty word padding up to FrameWords-1, terminator last.
func (i *Instruction) Compile() []uint32 {
	frame := make([]uint32, 0, FrameWords)
	frame = append(frame, i.opcode.Encode()...)

	for _, arg := range i.args {
		frame = append(frame, arg.Encode()...)
	}

	for len(frame) < FrameWords-1 {
		frame = append(frame, register.EmptyWord)
	}

	return append(frame, register.TerminateWord)
}

// Returns the opcode mnemonic followed by the argument summaries
func (i *Instruction) String() string {
	args := utils.Map(i.args, func(arg register.Register) string {
		return fmt.Sprint(arg)
	})

	return strings.Join(append([]string{i.opcode.String()}, args...), " ")
}

// Renders the compiled frame word by word for interactive inspection
func (i *Instruction) PrettyPrint() string {
	var builder strings.Builder

	builder.WriteString(i.String())
	builder.WriteString("\n")

	for idx, word := range i.Compile() {
		builder.WriteString(fmt.Sprintf("  [%v] %v\n", idx, utils.FormatUintHex(uint64(word), 8)))
	}

	return builder.String()
}
