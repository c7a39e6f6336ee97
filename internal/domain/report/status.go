package report

// Status represents the moderation state of a report
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in_progress"
)

// transitions holds the allowed moderation moves. approved and rejected
// are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusRejected, StatusInProgress},
	StatusInProgress: {StatusApproved, StatusRejected},
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusInProgress:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// CanTransition reports whether a report may move from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedNext returns the statuses reachable from s.
func (s Status) AllowedNext() []Status {
	return transitions[s]
}
