package register

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/arc-instruments/arc2go/pkg/utils"
)

// Register dump colors
var (
	// Register summary line
	dumpSummaryColor = color.New(color.FgWhite, color.Bold)
	// Word indices
	dumpIndexColor = color.New(color.FgCyan)
	// Hex word values
	dumpHexColor = color.New(color.FgMagenta)
	// Binary word values
	dumpBinaryColor = color.New(color.FgYellow)
)

// Optional register capability: describing the named sub-fields of a wire
// word so Dump can draw its bit layout. Bit 0 is the least significant bit
// of the word.
type WordLayout interface {
	WordFields(word int) []utils.AsciiFrameField
}

// Renders a register for interactive inspection of its encoding: the
// register's own summary followed by every wire word as index, hex and
// msb-first binary, plus a bit field diagram for registers that describe
// their word layout. The rendering is returned as a string; Dump never
// writes to any sink itself.
func Dump(r Register) string {
	var builder strings.Builder

	builder.WriteString(dumpSummaryColor.Sprintf("%v", r))
	builder.WriteString("\n")

	layout, hasLayout := r.(WordLayout)

	for i, word := range r.Encode() {
		builder.WriteString(dumpIndexColor.Sprintf("  [%v] ", i))
		builder.WriteString(dumpHexColor.Sprint(utils.FormatUintHex(uint64(word), 8)))
		builder.WriteString(" ")
		builder.WriteString(dumpBinaryColor.Sprint(utils.FormatUintBinary(uint64(word), wordBits)))
		builder.WriteString("\n")

		if hasLayout {
			builder.WriteString(utils.AsciiFrame(layout.WordFields(i), wordBits, "bits",
				utils.AsciiFrameUnitLayout_RightToLeft, 6))
		}
	}

	return builder.String()
}

// Renders a register like Dump prefixed with a caption line
func DumpNamed(name string, r Register) string {
	return fmt.Sprintf("%v:\n%v", dumpSummaryColor.Sprint(name), Dump(r))
}
