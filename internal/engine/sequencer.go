package engine

// Sequencer hands out arrival priorities to orders that come to rest in a
// book. It is owned by a single Matcher and starts from zero.
type Sequencer struct {
	last uint64
}

// Next returns the next priority. The first call returns 1.
func (s *Sequencer) Next() uint64 {
	s.last++
	return s.last
}

// Last returns the most recently issued priority, or 0 if none was issued.
func (s *Sequencer) Last() uint64 {
	return s.last
}
