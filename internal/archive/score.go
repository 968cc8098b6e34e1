package archive

import (
	"strconv"
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
)

// Score-string grammar: sets separated by single spaces, each token
// `g1-g2` optionally followed by a parenthesized tiebreak loser score.
// The first number is always the match winner's side. Tokens like "RET"
// or "W/O" terminate the score and are returned as the marker.

// ParseScoreString expands a free-text archive score into sets. The winner's
// tiebreak score is reconstructed as max(7, loser+2), a known approximation
// for long tiebreaks decided by larger margins.
func ParseScoreString(value string) (sets []match.Set, marker string) {
	for _, token := range strings.Fields(strings.TrimSpace(value)) {
		upper := strings.ToUpper(token)
		switch upper {
		case "RET", "RET.", "W/O", "WO", "DEF", "DEF.", "ABD", "UNFINISHED":
			marker = upper
			return sets, marker
		}

		set, ok := parseSetToken(token)
		if !ok {
			continue
		}
		sets = append(sets, set)
	}
	return sets, marker
}

func parseSetToken(token string) (match.Set, bool) {
	var set match.Set

	tbLoser := -1
	if open := strings.Index(token, "("); open >= 0 {
		if end := strings.Index(token, ")"); end > open {
			if n, err := strconv.Atoi(token[open+1 : end]); err == nil && n >= 0 {
				tbLoser = n
			}
		}
		token = token[:open]
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return set, false
	}
	g1, err1 := strconv.Atoi(parts[0])
	g2, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || g1 < 0 || g2 < 0 {
		return set, false
	}

	set.P1Games = g1
	set.P2Games = g2

	if tbLoser >= 0 {
		winnerPoints := tbLoser + 2
		if winnerPoints < 7 {
			winnerPoints = 7
		}
		tb := &match.Tiebreak{}
		if g1 > g2 {
			tb.P1, tb.P2 = winnerPoints, tbLoser
		} else {
			tb.P1, tb.P2 = tbLoser, winnerPoints
		}
		set.Tiebreak = tb
	}

	return set, true
}
