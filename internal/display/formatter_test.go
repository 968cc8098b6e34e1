package display

import (
	"testing"
	"time"

	"github.com/courtsight/courtsight/internal/domain/match"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func testFormatter() *Formatter {
	return NewWithClock(func() time.Time { return testNow })
}

func sampleMatch() match.Match {
	return match.Match{
		ID:     "m1",
		Status: match.StatusCompleted,
		Tournament: match.Tournament{
			Name:     "Chengdu Open",
			Location: "Chengdu, China",
			Surface:  match.SurfaceHard,
		},
		Round: "QF",
		Players: [2]match.Player{
			{Name: "Taro Daniel", CountryCode: "JP"},
			{Name: "Felix Auger-Aliassime", CountryCode: "CA"},
		},
		Score: &match.Score{Sets: []match.Set{
			{P1Games: 6, P2Games: 4},
			{P1Games: 3, P2Games: 6},
			{P1Games: 7, P2Games: 6, Tiebreak: &match.Tiebreak{P1: 7, P2: 5}},
		}},
		EndTime: "2026-05-10T11:30:00Z",
	}
}

func TestFormatDerivations(t *testing.T) {
	t.Parallel()

	view := testFormatter().Format(sampleMatch())

	if view.StatusLabel != "Final" || view.StatusColor == "" || view.StatusIcon == "" {
		t.Errorf("status presentation: %+v", view)
	}
	if got := view.SetWinners; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 1 {
		t.Errorf("set winners: %v", got)
	}
	if view.SetsWon != [2]int{2, 1} {
		t.Errorf("sets won: %v", view.SetsWon)
	}
	if view.WinnerIndex != 0 {
		t.Errorf("winner index: got %d, want 0", view.WinnerIndex)
	}
	if view.RelativeTime != "Just finished" {
		t.Errorf("relative time: got %q", view.RelativeTime)
	}
}

func TestFormatWinnerStructural(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		sets []match.Set
		want int
	}{
		{"best of three", []match.Set{{P1Games: 6, P2Games: 4}, {P1Games: 6, P2Games: 4}}, 0},
		{"best of five", []match.Set{
			{P1Games: 4, P2Games: 6}, {P1Games: 6, P2Games: 4}, {P1Games: 4, P2Games: 6},
			{P1Games: 6, P2Games: 4}, {P1Games: 4, P2Games: 6},
		}, 1},
		{"undecided mid match", []match.Set{{P1Games: 6, P2Games: 4}, {P1Games: 4, P2Games: 6}}, -1},
		{"two of four not enough", []match.Set{
			{P1Games: 6, P2Games: 4}, {P1Games: 6, P2Games: 4},
			{P1Games: 4, P2Games: 6}, {P1Games: 4, P2Games: 6},
		}, -1},
		{"no sets", nil, -1},
	}

	for _, tc := range cases {
		score := &match.Score{Sets: tc.sets}
		if tc.sets == nil {
			score = nil
		}
		if got := winnerIndex(score); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestFormatLocationFallback(t *testing.T) {
	t.Parallel()

	m := sampleMatch()
	m.Tournament.Location = ""
	view := testFormatter().Format(m)
	if view.Location != "Unknown Location" {
		t.Errorf("location fallback: got %q", view.Location)
	}
}

func TestFormatRelativeTimeBuckets(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	m := sampleMatch()
	m.Status = match.StatusScheduled
	m.StartTime = testNow.Add(3 * time.Hour).Format(time.RFC3339)
	if got := f.Format(m).RelativeTime; got != "In 3h" {
		t.Errorf("scheduled hours: got %q", got)
	}

	m.StartTime = testNow.Add(30 * time.Minute).Format(time.RFC3339)
	if got := f.Format(m).RelativeTime; got != "In 30m" {
		t.Errorf("scheduled minutes: got %q", got)
	}

	m.StartTime = testNow.Add(49 * time.Hour).Format(time.RFC3339)
	if got := f.Format(m).RelativeTime; got != "In 2d" {
		t.Errorf("scheduled days: got %q", got)
	}

	m.StartTime = "garbage"
	if got := f.Format(m).RelativeTime; got != "" {
		t.Errorf("unparseable start: got %q", got)
	}

	m = sampleMatch()
	m.Status = match.StatusLive
	if got := f.Format(m).RelativeTime; got != "Live now" {
		t.Errorf("live: got %q", got)
	}

	m = sampleMatch()
	m.EndTime = testNow.Add(-50 * time.Hour).Format(time.RFC3339)
	if got := f.Format(m).RelativeTime; got != "2d ago" {
		t.Errorf("completed days: got %q", got)
	}
}

func TestFormatCompactSurnames(t *testing.T) {
	t.Parallel()

	view := testFormatter().FormatCompact(sampleMatch())
	if view.Players[0].Name != "Daniel" {
		t.Errorf("compact name 1: got %q", view.Players[0].Name)
	}
	if view.Players[1].Name != "Auger-Aliassime" {
		t.Errorf("compact name 2: got %q", view.Players[1].Name)
	}
}

func TestDelta(t *testing.T) {
	t.Parallel()

	prev := &match.Score{Sets: []match.Set{{P1Games: 6, P2Games: 4}, {P1Games: 2, P2Games: 3}}}
	next := &match.Score{Sets: []match.Set{{P1Games: 6, P2Games: 4}, {P1Games: 4, P2Games: 3}}}

	delta := Delta(prev, next)
	if delta.NewSet {
		t.Error("no new set expected")
	}
	if len(delta.AdvancedSets) != 1 {
		t.Fatalf("advanced sets: %v", delta.AdvancedSets)
	}
	adv := delta.AdvancedSets[0]
	if adv.Index != 1 || adv.P1Delta != 2 || adv.P2Delta != 0 {
		t.Errorf("advance: %+v", adv)
	}

	next2 := &match.Score{Sets: []match.Set{
		{P1Games: 6, P2Games: 4}, {P1Games: 6, P2Games: 3}, {P1Games: 0, P2Games: 1},
	}}
	delta = Delta(prev, next2)
	if !delta.NewSet {
		t.Error("new set expected")
	}

	if d := Delta(nil, nil); d.NewSet || len(d.AdvancedSets) != 0 {
		t.Errorf("nil scores: %+v", d)
	}
}
