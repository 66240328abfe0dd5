package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

// Sequence is a NumberID that counts up from a start value. It is meant for
// tests and for setups where a Snowflake node cannot be created.
type Sequence struct {
	next int64
}

// NewSequence returns a Sequence whose first Generate call returns start.
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Generate returns the next number in the sequence.
func (s *Sequence) Generate() int64 {
	n := s.next
	s.next++
	return n
}
