package installer

// Session is the batch-scoped visiting set guarding the recursive walk
// against cycles and duplicate work. It is created at batch start, passed
// explicitly through the call chain, and discarded at batch end — never
// persisted. Components and lib modules share one set under distinct key
// prefixes so both sides of the graph get the same cycle discipline.
type Session struct {
	visiting map[string]bool
}

// NewSession returns an empty session for one add batch.
func NewSession() *Session {
	return &Session{visiting: make(map[string]bool)}
}

func componentKey(name string) string { return "component:" + name }
func libKey(name string) string       { return "lib:" + name }

// Visiting reports whether the key is currently being resolved. A true
// return is the cycle breaker: the prerequisite is already being satisfied
// further up the stack.
func (s *Session) Visiting(key string) bool { return s.visiting[key] }

// Mark records that the key is being resolved within this batch.
func (s *Session) Mark(key string) { s.visiting[key] = true }
