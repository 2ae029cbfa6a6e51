package register

// Wire word of a Terminate register
const TerminateWord uint32 = 0x80008000

// Register marking the end of an instruction.
//
// As with Empty this rarely needs to be created manually as the terminator
// word is appended automatically when an instruction is compiled.
type Terminate struct{}

// Creates a new terminate register
func NewTerminate() Terminate {
	return Terminate{}
}

func (Terminate) String() string {
	return "Terminate"
}

// Returns the single end-of-instruction sentinel word
func (Terminate) Encode() []uint32 {
	return []uint32{TerminateWord}
}
