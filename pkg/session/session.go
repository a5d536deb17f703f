package session

// Step is the user's position in the order intake flow.
type Step int

const (
	StepNone Step = iota
	StepAwaitingName
	StepAwaitingNiche
	StepAwaitingTask
)

// Collected field keys
const (
	FieldName  = "name"
	FieldNiche = "niche"
)

// Session represents a user's progress through the order form.
// Collected holds only the fields of steps already completed; a
// StepNone session carries no usable data.
type Session struct {
	Step      Step
	Collected map[string]string
}

// New returns the default session: no flow in progress.
func New() Session {
	return Session{Step: StepNone}
}

// InProgress reports whether the user is mid-flow.
func (s Session) InProgress() bool {
	return s.Step != StepNone
}

// Field returns a collected value, or "" if the step was not completed.
func (s Session) Field(name string) string {
	return s.Collected[name]
}

// WithField returns a copy of the session with the value recorded.
// The receiver's map is not mutated, so transition results never
// alias state already handed out by the store.
func (s Session) WithField(name, value string) Session {
	collected := make(map[string]string, len(s.Collected)+1)
	for k, v := range s.Collected {
		collected[k] = v
	}
	collected[name] = value
	s.Collected = collected
	return s
}
