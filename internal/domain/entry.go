package domain

// EntryState describes how far resolution has progressed for a word.
type EntryState int

const (
	// StateUnresolved means no lookup has been attempted yet.
	StateUnresolved EntryState = iota
	// StateNotFound means a lookup ran but produced no usable definition.
	StateNotFound
	// StateResolved means the entry holds a definition.
	StateResolved
)

// String returns the lowercase name of the state, used in logs.
func (s EntryState) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateNotFound:
		return "not_found"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Entry is one word of the dictionary together with its definition.
// A nil Definition is unresolved, a non-nil empty Definition is the
// not-found marker.
type Entry struct {
	Word       string
	Definition *string
}

// State reports the resolution state of the entry.
func (e Entry) State() EntryState {
	switch {
	case e.Definition == nil:
		return StateUnresolved
	case *e.Definition == "":
		return StateNotFound
	default:
		return StateResolved
	}
}

// DefinitionText returns the definition or "" for unresolved and not-found entries.
func (e Entry) DefinitionText() string {
	if e.Definition == nil {
		return ""
	}
	return *e.Definition
}

// StateCounts holds the number of entries in each state.
type StateCounts struct {
	Unresolved int
	NotFound   int
	Resolved   int
}

// Total returns the number of counted entries.
func (c StateCounts) Total() int {
	return c.Unresolved + c.NotFound + c.Resolved
}

// Add increments the counter matching state.
func (c *StateCounts) Add(state EntryState) {
	switch state {
	case StateUnresolved:
		c.Unresolved++
	case StateNotFound:
		c.NotFound++
	case StateResolved:
		c.Resolved++
	}
}
