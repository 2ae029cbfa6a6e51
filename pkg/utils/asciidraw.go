package utils

import (
	"fmt"
	"strings"
)

// Describes one contiguous field inside an AsciiFrame diagram
type AsciiFrameField struct {
	// Name of the field
	Name string

	// Unit within the frame the field begins from
	Begin int

	// Field width in frame units
	Width int
}

// The last unit within the frame used by this field
func (f *AsciiFrameField) TopUnit() int {
	return f.PastTopUnit() - 1
}

// The first unit within the frame used by the next field
func (f *AsciiFrameField) PastTopUnit() int {
	return f.Begin + f.Width
}

type AsciiFrameUnitLayout uint

const (
	// Units increase left to right
	AsciiFrameUnitLayout_LeftToRight AsciiFrameUnitLayout = iota
	// Units increase right to left
	AsciiFrameUnitLayout_RightToLeft
)

// One drawn column of a frame: the unit index shown above the field, the
// field name cell and the width annotation below it
type frameColumn struct {
	index  string
	name   string
	width  string
	length int
}

// Writes text centered into a run of length characters, minus the space
// reserved for decoration characters emitted by the caller
func centerIn(builder *strings.Builder, text string, decoration int, filler byte, length int) {
	left := (length - len(text) - decoration) / 2
	right := length - len(text) - decoration - left

	for i := 0; i < left; i++ {
		builder.WriteByte(filler)
	}
	builder.WriteString(text)
	for i := 0; i < right; i++ {
		builder.WriteByte(filler)
	}
}

// Inserts explicit "(unused)" fields into the gaps between the given fields
func fillFrameGaps(fields []AsciiFrameField, frameWidth int) []AsciiFrameField {
	filled := make([]AsciiFrameField, 0, len(fields))
	unit := 0

	for _, field := range fields {
		if field.Begin < unit {
			panic(fmt.Errorf("field '%v' begins at unit %v before the end of the previous field, make sure fields are sorted by position and not overlapping", field.Name, field.Begin))
		}

		if field.Begin > unit {
			filled = append(filled, AsciiFrameField{Name: "(unused)", Begin: unit, Width: field.Begin - unit})
		}

		filled = append(filled, field)
		unit = field.PastTopUnit()
	}

	if unit < frameWidth {
		filled = append(filled, AsciiFrameField{Name: "(unused)", Begin: unit, Width: frameWidth - unit})
	}

	return filled
}

// Draws an ascii diagram of a binary frame composed of contiguous fields of
// different unit widths. Gaps between the given fields are drawn as unused
// ranges. The layout controls whether unit indices grow left to right or
// right to left across the diagram.
func AsciiFrame(fields []AsciiFrameField, frameWidth int, unit string, layout AsciiFrameUnitLayout, leftpad int) string {
	allFields := fillFrameGaps(fields, frameWidth)
	topUnit := allFields[len(allFields)-1].TopUnit()

	columns := make([]frameColumn, len(allFields))

	for i := range columns {
		field := &allFields[i]
		index := fmt.Sprint(field.Begin)

		if layout == AsciiFrameUnitLayout_RightToLeft {
			field = &allFields[len(allFields)-1-i]
			index = fmt.Sprint(field.TopUnit())
		}

		columns[i] = frameColumn{
			index: index,
			name:  fmt.Sprintf(" %v ", field.Name),
			width: fmt.Sprintf(" %v %v ", field.Width, unit),
		}
		columns[i].length = Max([]int{len(columns[i].index), len(columns[i].name), len(columns[i].width) + 4})
	}

	pad := strings.Repeat(" ", leftpad)

	var indices, border, body, widths strings.Builder

	indices.WriteString(pad)
	border.WriteString(pad)
	body.WriteString(pad)
	widths.WriteString(pad)

	for _, column := range columns {
		indices.WriteString(column.index)
		indices.WriteString(strings.Repeat(" ", column.length-len(column.index)+1))

		border.WriteString("+")
		border.WriteString(strings.Repeat("-", column.length))

		body.WriteString("|")
		centerIn(&body, column.name, 0, ' ', column.length)

		widths.WriteString(" <-")
		centerIn(&widths, column.width, 4, '-', column.length)
		widths.WriteString("->")
	}

	if layout == AsciiFrameUnitLayout_RightToLeft {
		indices.WriteString("0")
	} else {
		indices.WriteString(fmt.Sprint(topUnit))
	}

	border.WriteString("+")
	body.WriteString("|")
	widths.WriteString(" ")

	var result strings.Builder

	result.WriteString(indices.String())
	result.WriteString("\n")
	result.WriteString(border.String())
	result.WriteString("\n")
	result.WriteString(body.String())
	result.WriteString("\n")
	result.WriteString(border.String())
	result.WriteString("\n")
	result.WriteString(widths.String())
	result.WriteString("\n")

	return result.String()
}
