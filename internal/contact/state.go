package contact

// State is the submission state of the contact form. Exactly one state is
// active at a time.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Busy reports whether the form controls should be disabled.
func (s State) Busy() bool {
	return s != StateIdle
}

// Snapshot is a consistent read of the flow.
type Snapshot struct {
	State  State
	Fields Fields
	// Receipt is non-nil only in StateSuccess.
	Receipt *Receipt
}
