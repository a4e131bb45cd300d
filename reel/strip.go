package reel

// strip is a bounded deque of tokens ordered top (index 0) to bottom
// A reel at rest holds rows+2 tokens, rows+3 while spinning; capacity is rows+3
type strip struct {
	buf  []*Token
	head int
	size int
}

func newStrip(capacity int) *strip {
	return &strip{buf: make([]*Token, capacity)}
}

func (s *strip) Len() int { return s.size }

func (s *strip) Cap() int { return len(s.buf) }

// PushFront inserts t above the current top, false when full
func (s *strip) PushFront(t *Token) bool {
	if s.size == len(s.buf) {
		return false
	}
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = t
	s.size++
	return true
}

// PopBack removes and returns the bottom token, nil when empty
func (s *strip) PopBack() *Token {
	if s.size == 0 {
		return nil
	}
	i := (s.head + s.size - 1) % len(s.buf)
	t := s.buf[i]
	s.buf[i] = nil
	s.size--
	return t
}

// At returns the token at position i counted from the top, nil when out of range
func (s *strip) At(i int) *Token {
	if i < 0 || i >= s.size {
		return nil
	}
	return s.buf[(s.head+i)%len(s.buf)]
}

// Each visits tokens top to bottom
func (s *strip) Each(fn func(i int, t *Token)) {
	for i := 0; i < s.size; i++ {
		fn(i, s.buf[(s.head+i)%len(s.buf)])
	}
}
