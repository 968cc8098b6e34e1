package cleaner

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
)

// parseGameValue interprets one side of a raw set score. Numbers, numeric
// strings and json.Number all parse; the explicit missing-value markers and
// anything else yield nil.
func parseGameValue(value any) *int {
	switch v := value.(type) {
	case nil:
		return nil
	case int:
		return intPtr(v)
	case int64:
		return intPtr(int(v))
	case float64:
		return intPtr(int(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return intPtr(int(n))
		}
		return nil
	case string:
		trimmed := strings.TrimSpace(v)
		switch trimmed {
		case "", "-", "--", "N/A", "n/a":
			return nil
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return intPtr(n)
		}
		return nil
	default:
		return nil
	}
}

// cleanScore repairs a raw score. A set with both sides unparseable is
// dropped, not kept as 0-0; a set with one unparseable side coerces that
// side to 0. A score with no surviving sets and no current-game pair
// collapses to nil.
func cleanScore(raw *match.RawScore) *match.Score {
	if raw == nil {
		return nil
	}

	out := &match.Score{}
	for _, rawSet := range raw.Sets {
		p1 := parseGameValue(rawSet.P1)
		p2 := parseGameValue(rawSet.P2)
		if p1 == nil && p2 == nil {
			continue
		}
		set := match.Set{
			P1Games: clampGames(p1),
			P2Games: clampGames(p2),
		}
		if tb := cleanTiebreak(rawSet.Tiebreak1, rawSet.Tiebreak2); tb != nil {
			set.Tiebreak = tb
		}
		out.Sets = append(out.Sets, set)
	}

	out.CurrentGames = currentGames(raw)

	if len(out.Sets) == 0 && out.CurrentGames == nil {
		return nil
	}
	return out
}

// passthroughScore applies the same per-set repairs as cleanScore but keeps
// an empty Score when the raw value had content that failed to parse, so a
// present-but-garbled score is distinguishable from an absent one.
func passthroughScore(raw *match.RawScore) *match.Score {
	if raw == nil {
		return nil
	}
	out := cleanScore(raw)
	if out == nil && (len(raw.Sets) > 0 || raw.CurrentGames1 != nil || raw.CurrentGames2 != nil) {
		return &match.Score{}
	}
	return out
}

func cleanTiebreak(raw1, raw2 any) *match.Tiebreak {
	tb1 := parseGameValue(raw1)
	tb2 := parseGameValue(raw2)
	if tb1 == nil && tb2 == nil {
		return nil
	}
	return &match.Tiebreak{
		P1: clampGames(tb1),
		P2: clampGames(tb2),
	}
}

func currentGames(raw *match.RawScore) *match.GamePair {
	g1 := parseGameValue(raw.CurrentGames1)
	g2 := parseGameValue(raw.CurrentGames2)
	if g1 == nil && g2 == nil {
		return nil
	}
	return &match.GamePair{
		P1: clampGames(g1),
		P2: clampGames(g2),
	}
}

func clampGames(value *int) int {
	if value == nil || *value < 0 {
		return 0
	}
	return *value
}

func intPtr(v int) *int {
	return &v
}
