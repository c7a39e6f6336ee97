package report

import "testing"

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusInProgress, true},
		{StatusInProgress, StatusApproved, true},
		{StatusInProgress, StatusRejected, true},
		{StatusInProgress, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if !StatusApproved.IsTerminal() || !StatusRejected.IsTerminal() {
		t.Fatal("approved and rejected must be terminal")
	}
	if StatusPending.IsTerminal() || StatusInProgress.IsTerminal() {
		t.Fatal("pending and in_progress must not be terminal")
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusInProgress} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("archived").IsValid() {
		t.Error("unknown status should be invalid")
	}
	if Status("archived").IsTerminal() {
		t.Error("unknown status should not report terminal")
	}
}
