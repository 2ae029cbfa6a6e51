package register

// Wire word of an Empty register
const EmptyWord uint32 = 0x00000000

// An empty register, used to pad instructions to full frame length.
//
// An Empty rarely needs to be created manually as padding words are added
// automatically when an instruction is compiled.
type Empty struct{}

// Creates a new empty register
func NewEmpty() Empty {
	return Empty{}
}

func (Empty) String() string {
	return "Empty"
}

// Returns the single all-zero padding word
func (Empty) Encode() []uint32 {
	return []uint32{EmptyWord}
}
