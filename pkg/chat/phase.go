package chat

// Phase is the submission state of a conversation. At most one analyze
// call is in flight at a time; new questions are accepted only while idle.
type Phase int

const (
	// PhaseIdle means no request is outstanding.
	PhaseIdle Phase = iota
	// PhaseAwaiting means exactly one analyze call is outstanding.
	PhaseAwaiting
)

func (p Phase) String() string {
	if p == PhaseAwaiting {
		return "awaiting"
	}
	return "idle"
}
