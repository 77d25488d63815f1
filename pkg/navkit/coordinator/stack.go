package coordinator

import "github.com/meridianbank/navkit/pkg/navkit/route"

// Stack is the ordered back-stack of one feature area. Index 0 is closest
// to the feature root, the last element is the visible screen. The stack
// only ever shrinks from the tail, so any truncation leaves a strict prefix
// of the prior state.
//
// Stack does no locking of its own; its owner confines all access to the
// coordinator's execution context.
type Stack struct {
	items []Item
}

// Push appends an item, making it the visible screen.
func (s *Stack) Push(it Item) {
	s.items = append(s.items, it)
}

// Pop removes and returns the tail item. Returns nil on an empty stack:
// a UI back-gesture racing a programmatic pop may double-fire, and the
// second invocation must be harmless.
func (s *Stack) Pop() *Item {
	if len(s.items) == 0 {
		return nil
	}
	it := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return &it
}

// Peek returns the tail item without removing it, or nil when empty.
func (s *Stack) Peek() *Item {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

// Clear empties the stack. Idempotent.
func (s *Stack) Clear() {
	s.items = s.items[:0]
}

// TruncateTo keeps the first n items. The view layer calls this when the
// user back-navigates several screens at once. Out-of-range n is clamped,
// never an error.
func (s *Stack) TruncateTo(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.items) {
		return
	}
	s.items = s.items[:n]
}

// Items returns a copy of the stack in visual order.
func (s *Stack) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Routes returns the stacked routes in visual order.
func (s *Stack) Routes() []route.Route {
	out := make([]route.Route, len(s.items))
	for i, it := range s.items {
		out[i] = it.Route
	}
	return out
}

// Len returns the number of stacked items.
func (s *Stack) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the feature is showing its root screen.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}
