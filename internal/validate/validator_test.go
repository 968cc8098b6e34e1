package validate

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/courtsight/courtsight/internal/domain/match"
)

func validMatch() match.Match {
	return match.Match{
		ID:     "m1",
		Status: match.StatusCompleted,
		Players: [2]match.Player{
			{ID: "p1", Name: "Taro Daniel", CountryCode: "JP"},
			{ID: "p2", Name: "Jan Novak", CountryCode: "CZ"},
		},
		Score: &match.Score{Sets: []match.Set{
			{P1Games: 6, P2Games: 4},
			{P1Games: 6, P2Games: 3},
		}},
	}
}

func hasEntry(entries []string, substr string) bool {
	for _, e := range entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidateCleanMatch(t *testing.T) {
	t.Parallel()

	v := New(time.Minute, nil)
	res := v.Validate(validMatch())

	if !res.Valid {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
	if res.Quality != QualityExcellent {
		t.Fatalf("quality: got %s, want excellent (warnings: %v)", res.Quality, res.Warnings)
	}
}

func TestValidateStructuralErrors(t *testing.T) {
	t.Parallel()

	v := New(time.Minute, nil)
	res := v.Validate(match.Match{})

	if res.Valid {
		t.Fatal("empty match must be invalid")
	}
	if !hasEntry(res.Errors, "match id is missing") {
		t.Errorf("missing id error absent: %v", res.Errors)
	}
	if !hasEntry(res.Errors, "status is missing") {
		t.Errorf("missing status error absent: %v", res.Errors)
	}
	if !hasEntry(res.Errors, "player 1 is missing") || !hasEntry(res.Errors, "player 2 is missing") {
		t.Errorf("missing player errors absent: %v", res.Errors)
	}
	if res.Quality != QualityPoor {
		t.Errorf("quality: got %s, want poor", res.Quality)
	}
}

func TestValidateSetLegality(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		set      match.Set
		wantErr  string
		wantWarn string
	}{
		{"normal", match.Set{P1Games: 6, P2Games: 4}, "", ""},
		{"seven five", match.Set{P1Games: 7, P2Games: 5}, "", ""},
		{"seven six with tiebreak", match.Set{P1Games: 7, P2Games: 6, Tiebreak: &match.Tiebreak{P1: 7, P2: 4}}, "", ""},
		{"seven six missing tiebreak", match.Set{P1Games: 7, P2Games: 6}, "", "missing tiebreak score"},
		{"seven four", match.Set{P1Games: 7, P2Games: 4}, "impossible score", ""},
		{"nine six", match.Set{P1Games: 9, P2Games: 6}, "impossible score", ""},
		{"eight six extended", match.Set{P1Games: 8, P2Games: 6}, "", ""},
		{"six five", match.Set{P1Games: 6, P2Games: 5}, "", "should have continued"},
		{"mid set gap", match.Set{P1Games: 5, P2Games: 1}, "", "unusual score gap"},
		{"incomplete tiebreak", match.Set{P1Games: 7, P2Games: 6, Tiebreak: &match.Tiebreak{P1: 5, P2: 3}}, "", "incomplete tiebreak"},
		{"tight tiebreak", match.Set{P1Games: 7, P2Games: 6, Tiebreak: &match.Tiebreak{P1: 7, P2: 6}}, "", "should continue"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := &report{}
			checkSet(r, 1, tc.set)

			if tc.wantErr == "" && len(r.errors) > 0 {
				t.Fatalf("unexpected errors: %v", r.errors)
			}
			if tc.wantErr != "" && !hasEntry(r.errors, tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, r.errors)
			}
			if tc.wantWarn == "" && len(r.warnings) > 0 {
				t.Fatalf("unexpected warnings: %v", r.warnings)
			}
			if tc.wantWarn != "" && !hasEntry(r.warnings, tc.wantWarn) {
				t.Fatalf("want warning containing %q, got %v", tc.wantWarn, r.warnings)
			}
		})
	}
}

func TestValidateSetCountCeiling(t *testing.T) {
	t.Parallel()

	v := New(0, nil)
	m := validMatch()
	m.Score.Sets = make([]match.Set, 6)
	for i := range m.Score.Sets {
		m.Score.Sets[i] = match.Set{P1Games: 6, P2Games: 4}
	}

	res := v.Validate(m)
	if res.Valid {
		t.Fatal("six sets must be invalid")
	}
	if !hasEntry(res.Errors, "more than 5") {
		t.Errorf("set ceiling error absent: %v", res.Errors)
	}
}

func TestValidateCompletedConsistency(t *testing.T) {
	t.Parallel()

	v := New(0, nil)

	m := validMatch()
	m.Score = &match.Score{Sets: []match.Set{{P1Games: 6, P2Games: 4}}}
	res := v.Validate(m)
	if !hasEntry(res.Warnings, "only 1 set") {
		t.Errorf("short match warnings absent: %v", res.Warnings)
	}

	m = validMatch()
	m.Score = &match.Score{Sets: []match.Set{
		{P1Games: 6, P2Games: 4},
		{P1Games: 6, P2Games: 4},
		{P1Games: 4, P2Games: 6},
		{P1Games: 4, P2Games: 6},
	}}
	res = v.Validate(m)
	if !hasEntry(res.Warnings, "inconsistent set totals") {
		t.Errorf("inconsistent totals warning absent: %v", res.Warnings)
	}
}

func TestValidateCoherence(t *testing.T) {
	t.Parallel()

	v := New(0, nil)

	m := validMatch()
	m.Status = match.StatusScheduled
	res := v.Validate(m)
	if !hasEntry(res.Warnings, "scheduled match already has set scores") {
		t.Errorf("coherence warning absent: %v", res.Warnings)
	}

	m = validMatch()
	m.Score = nil
	res = v.Validate(m)
	if !hasEntry(res.Warnings, "no score data") {
		t.Errorf("missing score warning absent: %v", res.Warnings)
	}
}

func TestValidateTemporal(t *testing.T) {
	t.Parallel()

	v := New(0, nil)

	m := validMatch()
	m.StartTime = "not a time"
	res := v.Validate(m)
	if !res.Valid {
		t.Fatalf("unparseable timestamp must stay a warning: %v", res.Errors)
	}
	if !hasEntry(res.Warnings, "unparseable start timestamp") {
		t.Errorf("timestamp warning absent: %v", res.Warnings)
	}

	m = validMatch()
	m.StartTime = "2026-05-01T15:00:00Z"
	m.EndTime = "2026-05-01T13:00:00Z"
	res = v.Validate(m)
	if res.Valid {
		t.Fatal("end before start must be an error")
	}
	if !hasEntry(res.Errors, "end timestamp is not after start") {
		t.Errorf("temporal error absent: %v", res.Errors)
	}
}

func TestValidateIdempotentWithinTTL(t *testing.T) {
	t.Parallel()

	v := New(time.Minute, nil)
	m := validMatch()

	first := v.Validate(m)
	second := v.Validate(m)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestValidateCacheInvalidatedByScoreChange(t *testing.T) {
	t.Parallel()

	v := New(time.Minute, nil)
	m := validMatch()
	first := v.Validate(m)

	m.Score.Sets = append(m.Score.Sets, match.Set{P1Games: 9, P2Games: 6})
	second := v.Validate(m)

	if first.Valid == second.Valid {
		t.Fatal("score change must produce a fresh result")
	}
}

func TestValidateLiveUpdateTransitions(t *testing.T) {
	t.Parallel()

	v := New(0, nil)

	prev := validMatch()
	prev.Status = match.StatusCompleted
	next := validMatch()
	next.Status = match.StatusLive

	res := v.ValidateLiveUpdate(prev, next)
	if res.Valid {
		t.Fatal("transition out of terminal state must be an error")
	}
	if !hasEntry(res.Errors, "terminal status") {
		t.Errorf("terminal transition error absent: %v", res.Errors)
	}

	prev.Status = match.StatusScheduled
	next.Status = match.StatusLive
	res = v.ValidateLiveUpdate(prev, next)
	if hasEntry(res.Errors, "transition") {
		t.Errorf("scheduled->live should be legal: %v", res.Errors)
	}
}

func TestValidateLiveUpdateMonotonicity(t *testing.T) {
	t.Parallel()

	v := New(0, nil)

	prev := validMatch()
	prev.Status = match.StatusLive
	prev.Score = &match.Score{Sets: []match.Set{{P1Games: 6, P2Games: 4}, {P1Games: 5, P2Games: 5}}}

	// Disappearing set is an error.
	next := prev
	next.Score = &match.Score{Sets: []match.Set{{P1Games: 6, P2Games: 4}}}
	res := v.ValidateLiveUpdate(prev, next)
	if !hasEntry(res.Errors, "disappeared") {
		t.Errorf("disappeared set error absent: %v", res.Errors)
	}

	// Decrease without a new set is a warning only.
	next = prev
	next.Score = &match.Score{Sets: []match.Set{{P1Games: 6, P2Games: 4}, {P1Games: 4, P2Games: 5}}}
	res = v.ValidateLiveUpdate(prev, next)
	if hasEntry(res.Errors, "decreased") {
		t.Errorf("game decrease must not be an error: %v", res.Errors)
	}
	if !hasEntry(res.Warnings, "decreased without a new set") {
		t.Errorf("game decrease warning absent: %v", res.Warnings)
	}

	// Decrease with a new set started is a legitimate reset.
	next = prev
	next.Score = &match.Score{Sets: []match.Set{
		{P1Games: 6, P2Games: 4},
		{P1Games: 4, P2Games: 6},
		{P1Games: 1, P2Games: 0},
	}}
	res = v.ValidateLiveUpdate(prev, next)
	if hasEntry(res.Errors, "decreased") || hasEntry(res.Warnings, "decreased") {
		t.Errorf("reset at new set must not be reported: errors=%v warnings=%v", res.Errors, res.Warnings)
	}
}

func TestQualityTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		errors   int
		warnings int
		want     Quality
	}{
		{1, 0, QualityPoor},
		{0, 0, QualityExcellent},
		{0, 1, QualityGood},
		{0, 2, QualityGood},
		{0, 3, QualityFair},
	}

	for _, tc := range cases {
		res := Result{
			Errors:   make([]string, tc.errors),
			Warnings: make([]string, tc.warnings),
		}
		if got := deriveQuality(res); got != tc.want {
			t.Errorf("errors=%d warnings=%d: got %s, want %s", tc.errors, tc.warnings, got, tc.want)
		}
	}
}
