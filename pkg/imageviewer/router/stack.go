package router

// Entry is a screen and the input to resume it with.
type Entry[In any] struct {
	Screen Screen
	Input  In
}

// Stack is the back navigation history.
type Stack[In any] struct {
	entries []Entry[In]
}

func NewStack[In any]() *Stack[In] {
	return &Stack[In]{}
}

// Push records screen so a later Pop can return to it with input.
func (s *Stack[In]) Push(screen Screen, input In) {
	s.entries = append(s.entries, Entry[In]{Screen: screen, Input: input})
}

// Pop removes the most recent entry. ok is false on an empty stack.
func (s *Stack[In]) Pop() (entry Entry[In], ok bool) {
	if len(s.entries) == 0 {
		return entry, false
	}
	entry = s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

func (s *Stack[In]) Peek() (entry Entry[In], ok bool) {
	if len(s.entries) == 0 {
		return entry, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack[In]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack[In]) Len() int {
	return len(s.entries)
}

func (s *Stack[In]) Clear() {
	s.entries = s.entries[:0]
}
