package match

import "testing"

func TestStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusScheduled, StatusLive, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusLive, StatusCompleted, true},
		{StatusLive, StatusRetired, true},
		{StatusLive, StatusCancelled, true},
		{StatusLive, StatusScheduled, false},
		{StatusCompleted, StatusLive, false},
		{StatusWalkover, StatusCompleted, false},
		{StatusRetired, StatusRetired, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	terminal := []Status{StatusCompleted, StatusCancelled, StatusWalkover, StatusRetired}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{StatusScheduled, StatusLive} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestScoreSetsWon(t *testing.T) {
	t.Parallel()

	score := &Score{Sets: []Set{
		{P1Games: 6, P2Games: 4},
		{P1Games: 3, P2Games: 6},
		{P1Games: 7, P2Games: 6, Tiebreak: &Tiebreak{P1: 7, P2: 4}},
		{P1Games: 5, P2Games: 5},
	}}

	p1, p2 := score.SetsWon()
	if p1 != 2 || p2 != 1 {
		t.Fatalf("sets won: got %d-%d, want 2-1", p1, p2)
	}

	var nilScore *Score
	if a, b := nilScore.SetsWon(); a != 0 || b != 0 {
		t.Fatalf("nil score sets won: got %d-%d", a, b)
	}
}
