package factcheck

// Verdict represents the review state of a fact-check request
type Verdict string

const (
	VerdictQueued      Verdict = "queued"
	VerdictInProgress  Verdict = "in-progress"
	VerdictVerified    Verdict = "verified"
	VerdictDisputed    Verdict = "disputed"
	VerdictNeedsReview Verdict = "needs-review"
)

// verdictTransitions holds the allowed review moves. verified and
// disputed are terminal.
var verdictTransitions = map[Verdict][]Verdict{
	VerdictQueued:      {VerdictInProgress},
	VerdictNeedsReview: {VerdictInProgress},
	VerdictInProgress:  {VerdictVerified, VerdictDisputed, VerdictNeedsReview},
}

// verdictLabels are the human-readable names shown to clients.
var verdictLabels = map[Verdict]string{
	VerdictQueued:      "Queued",
	VerdictInProgress:  "In Progress",
	VerdictVerified:    "Verified",
	VerdictDisputed:    "Disputed",
	VerdictNeedsReview: "Needs Review",
}

// IsValid reports whether v is a known verdict.
func (v Verdict) IsValid() bool {
	_, ok := verdictLabels[v]
	return ok
}

// IsFinalVerdict reports whether v admits no further transition.
func (v Verdict) IsFinalVerdict() bool {
	return v == VerdictVerified || v == VerdictDisputed
}

// CanBeReviewed reports whether a reviewer may pick the item up.
func (v Verdict) CanBeReviewed() bool {
	return v == VerdictQueued || v == VerdictNeedsReview
}

// IsInProgress reports whether the item is under active review.
func (v Verdict) IsInProgress() bool {
	return v == VerdictInProgress
}

// Label returns the display name for v, or the raw value if unknown.
func (v Verdict) Label() string {
	if label, ok := verdictLabels[v]; ok {
		return label
	}
	return string(v)
}

// CanTransition reports whether a fact-check may move from v to next.
func (v Verdict) CanTransition(next Verdict) bool {
	for _, allowed := range verdictTransitions[v] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedNext returns the verdicts reachable from v.
func (v Verdict) AllowedNext() []Verdict {
	return verdictTransitions[v]
}
