// Package register implements the typed registers that make up ArC2
// instructions. A register is an in-memory value that serializes into one
// or more 32-bit words laid out exactly as the instrument expects them on
// the wire; the instruction layer concatenates those words into full
// command frames.
//
// Registers are plain values with no internal locking: callers own their
// instances exclusively and no operation blocks or performs I/O.
package register

import "fmt"

// Shared capability of every ArC2 register: producing the ordered sequence
// of 32-bit words written to the instrument buffer.
//
// Encode is pure and total. It never fails for values built through the
// public constructors and setters, never mutates the register, and always
// returns a fresh slice owned by the caller.
type Register interface {
	// Returns the wire representation of the register as ordered 32-bit words
	Encode() []uint32
}

// Validates a channel index against the number of channels a register holds.
// Indexing past the configured channel count is a defect in the caller, not
// a runtime condition, so it fails fast.
func checkChannel(idx int, channels int) {
	if idx < 0 || idx >= channels {
		panic(fmt.Errorf("channel index %v out of range, register holds %v channels", idx, channels))
	}
}
