package validate

import (
	"fmt"
	"time"

	"github.com/courtsight/courtsight/internal/domain/match"
)

const maxSets = 5

func evaluateInto(r *report, m match.Match) {
	checkStructure(r, m)
	checkPlayers(r, m)
	checkScore(r, m)
	checkCompletedConsistency(r, m)
	checkCoherence(r, m)
	checkTemporal(r, m)
}

func checkStructure(r *report, m match.Match) {
	if m.ID == "" {
		r.err("match id is missing")
	}
	if m.Status == "" {
		r.err("match status is missing")
	} else if !m.Status.Known() {
		r.warn(fmt.Sprintf("unrecognized status %q", m.Status))
	}
	for i, p := range m.Players {
		if p == (match.Player{}) {
			r.err(fmt.Sprintf("player %d is missing", i+1))
		}
	}
}

func checkPlayers(r *report, m match.Match) {
	for i, p := range m.Players {
		label := fmt.Sprintf("player %d", i+1)
		if p.Name == "" {
			r.err(label + ": name is missing")
		}
		if p.CountryCode != match.UnknownCountry && !isTwoUppercase(p.CountryCode) {
			r.warn(label + ": malformed country code " + quote(p.CountryCode))
		}
		if p.Ranking != nil && *p.Ranking <= 0 {
			r.warn(fmt.Sprintf("%s: non-positive ranking %d", label, *p.Ranking))
		}
	}
}

func checkScore(r *report, m match.Match) {
	if m.Score == nil {
		return
	}
	if len(m.Score.Sets) > maxSets {
		r.err(fmt.Sprintf("score has %d sets, more than %d", len(m.Score.Sets), maxSets))
	}
	for i, set := range m.Score.Sets {
		checkSet(r, i+1, set)
	}
}

// checkSet applies standard set-score legality to one set. g is the winning
// side's game count, l the losing side's.
func checkSet(r *report, num int, set match.Set) {
	label := fmt.Sprintf("set %d", num)

	if set.P1Games < 0 || set.P2Games < 0 {
		r.err(fmt.Sprintf("%s: negative game count %d-%d", label, set.P1Games, set.P2Games))
		return
	}

	g, l := set.P1Games, set.P2Games
	if l > g {
		g, l = l, g
	}

	switch {
	case g < 6:
		if g-l > 2 {
			r.warn(fmt.Sprintf("%s: unusual score gap at %d-%d in an unfinished set", label, set.P1Games, set.P2Games))
		}
	case g == 6:
		if l > 4 {
			r.warn(fmt.Sprintf("%s: %d-%d should have continued or gone to a tiebreak", label, set.P1Games, set.P2Games))
		}
	case g == 7:
		if l != 5 && l != 6 {
			r.err(fmt.Sprintf("%s: impossible score %d-%d (7 games requires opponent at 5 or 6)", label, set.P1Games, set.P2Games))
		} else if l == 6 && set.Tiebreak == nil {
			r.warn(fmt.Sprintf("%s: missing tiebreak score for %d-%d", label, set.P1Games, set.P2Games))
		}
	default: // g > 7
		if g-l != 2 {
			r.err(fmt.Sprintf("%s: impossible score %d-%d (extended set requires a 2-game margin)", label, set.P1Games, set.P2Games))
		}
	}

	if set.Tiebreak != nil {
		checkTiebreak(r, label, *set.Tiebreak)
	}
}

func checkTiebreak(r *report, label string, tb match.Tiebreak) {
	if tb.P1 < 0 || tb.P2 < 0 {
		r.err(fmt.Sprintf("%s: negative tiebreak score %d-%d", label, tb.P1, tb.P2))
		return
	}
	w, l := tb.P1, tb.P2
	if l > w {
		w, l = l, w
	}
	switch {
	case w < 7:
		r.warn(fmt.Sprintf("%s: incomplete tiebreak score %d-%d", label, tb.P1, tb.P2))
	case w-l < 2:
		r.warn(fmt.Sprintf("%s: tiebreak %d-%d should continue to a 2-point margin", label, tb.P1, tb.P2))
	}
}

func checkCompletedConsistency(r *report, m match.Match) {
	if m.Status != match.StatusCompleted || m.Score == nil {
		return
	}
	p1, p2 := m.Score.SetsWon()
	winner := p1
	if p2 > p1 {
		winner = p2
	}
	total := len(m.Score.Sets)

	if winner < 2 {
		r.warn(fmt.Sprintf("completed match but leader has only %d set(s)", winner))
	}
	if total < 2 {
		r.warn(fmt.Sprintf("completed match with only %d completed set(s)", total))
	}

	validBestOf3 := winner == 2 && total <= 3
	validBestOf5 := winner == 3 && total <= 5
	if winner >= 2 && !validBestOf3 && !validBestOf5 {
		r.warn(fmt.Sprintf("completed match with inconsistent set totals (%d sets won of %d played)", winner, total))
	}
}

func checkCoherence(r *report, m match.Match) {
	hasSets := m.Score != nil && len(m.Score.Sets) > 0
	switch m.Status {
	case match.StatusScheduled:
		if hasSets {
			r.warn("scheduled match already has set scores")
		}
	case match.StatusCompleted, match.StatusLive:
		if m.Score == nil {
			r.warn(fmt.Sprintf("%s match has no score data", m.Status))
		}
	}
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func checkTemporal(r *report, m match.Match) {
	start, startOK := parseTimestamp(m.StartTime)
	if m.StartTime != "" && !startOK {
		r.warn("unparseable start timestamp " + quote(m.StartTime))
	}
	end, endOK := parseTimestamp(m.EndTime)
	if m.EndTime != "" && !endOK {
		r.warn("unparseable end timestamp " + quote(m.EndTime))
	}
	if startOK && endOK && !end.After(start) {
		r.err("end timestamp is not after start timestamp")
	}
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func isTwoUppercase(value string) bool {
	if len(value) != 2 {
		return false
	}
	return value[0] >= 'A' && value[0] <= 'Z' && value[1] >= 'A' && value[1] <= 'Z'
}

func quote(value string) string {
	return fmt.Sprintf("%q", value)
}
