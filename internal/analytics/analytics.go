package analytics

import (
	"strconv"
	"strings"

	"github.com/courtsight/courtsight/internal/domain/history"
)

// SurfaceRecord is a win/loss tally on one playing surface.
type SurfaceRecord struct {
	Surface string  `json:"surface"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

// TierRecord is a win/loss tally at one tournament tier.
type TierRecord struct {
	Tier    string  `json:"tier"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

// ServeMetrics aggregates per-match serve statistics. Ratios are nil when
// the underlying counts are absent from the archive, so an undetermined
// metric is distinguishable from a zero one.
type ServeMetrics struct {
	FirstServePct       *float64 `json:"firstServePct"`
	AcesPerServiceGame  *float64 `json:"acesPerServiceGame"`
	BreakPointsSavedPct *float64 `json:"breakPointsSavedPct"`
	BreakPointConvPct   *float64 `json:"breakPointConvPct"`
}

// PlayerSummary is the computed analytics profile for one player over a set
// of historical rows.
type PlayerSummary struct {
	PlayerID    string          `json:"playerId"`
	Matches     int             `json:"matches"`
	Wins        int             `json:"wins"`
	Losses      int             `json:"losses"`
	WinRate     float64         `json:"winRate"`
	Titles      int             `json:"titles"`
	BySurface   []SurfaceRecord `json:"bySurface"`
	ByTier      []TierRecord    `json:"byTier"`
	Serve       ServeMetrics    `json:"serve"`
	CurrentRank *int            `json:"currentRank,omitempty"`
	RankPoints  *int            `json:"rankPoints,omitempty"`
}

// tierNames maps archive level codes onto reader-facing tier labels.
var tierNames = map[string]string{
	"G": "Grand Slam",
	"M": "Masters",
	"A": "Tour",
	"F": "Finals",
	"D": "Davis Cup",
	"C": "Challenger",
	"S": "ITF",
	"E": "Exhibition",
}

var surfaceOrder = []string{"Hard", "Clay", "Grass", "Carpet", "Unknown"}

var tierOrder = []string{"Grand Slam", "Finals", "Masters", "Tour", "Davis Cup", "Challenger", "ITF", "Exhibition"}

type tally struct{ wins, losses int }

func (t tally) rate() float64 {
	total := t.wins + t.losses
	if total == 0 {
		return 0
	}
	return float64(t.wins) / float64(total)
}

type serveTotals struct {
	svpt, firstIn          int
	aces, svGms            int
	bpSaved, bpFaced       int
	oppBpSaved, oppBpFaced int

	haveServe, haveGames, haveBp, haveOppBp bool
}

// Compute derives the full analytics summary for one player from the rows
// that mention them. Rows where the player appears on neither side are
// skipped, so callers may pass unfiltered season slices.
func Compute(playerID string, rows []history.RawHistoricalRow) PlayerSummary {
	summary := PlayerSummary{PlayerID: playerID}

	surfaces := map[string]*tally{}
	tiers := map[string]*tally{}
	var serve serveTotals

	for _, row := range rows {
		won := row.WinnerID == playerID
		lost := row.LoserID == playerID
		if !won && !lost {
			continue
		}

		summary.Matches++
		if won {
			summary.Wins++
			if strings.EqualFold(row.Round, "F") {
				summary.Titles++
			}
		} else {
			summary.Losses++
		}

		// A row without a surface column goes into its own bucket rather
		// than inflating a real surface's record.
		surface := strings.TrimSpace(row.Surface)
		if surface == "" {
			surface = "Unknown"
		}
		bump(surfaces, surface, won)

		tier := tierNames[strings.ToUpper(row.Level)]
		if tier == "" {
			tier = "Tour"
		}
		bump(tiers, tier, won)

		accumulateServe(&serve, row, won)
	}

	if summary.Matches > 0 {
		summary.WinRate = float64(summary.Wins) / float64(summary.Matches)
	}
	summary.BySurface = orderedSurfaces(surfaces)
	summary.ByTier = orderedTiers(tiers)
	summary.Serve = serve.metrics()

	return summary
}

func bump(m map[string]*tally, key string, won bool) {
	t := m[key]
	if t == nil {
		t = &tally{}
		m[key] = t
	}
	if won {
		t.wins++
	} else {
		t.losses++
	}
}

func accumulateServe(totals *serveTotals, row history.RawHistoricalRow, won bool) {
	var ace, svpt, firstIn, svGms, bpSaved, bpFaced string
	var oppBpSaved, oppBpFaced string
	if won {
		ace, svpt, firstIn, svGms = row.WAce, row.WSvpt, row.WFirstIn, row.WSvGms
		bpSaved, bpFaced = row.WBpSaved, row.WBpFaced
		oppBpSaved, oppBpFaced = row.LBpSaved, row.LBpFaced
	} else {
		ace, svpt, firstIn, svGms = row.LAce, row.LSvpt, row.LFirstIn, row.LSvGms
		bpSaved, bpFaced = row.LBpSaved, row.LBpFaced
		oppBpSaved, oppBpFaced = row.WBpSaved, row.WBpFaced
	}

	if pt, okPt := count(svpt); okPt {
		if in, okIn := count(firstIn); okIn {
			totals.svpt += pt
			totals.firstIn += in
			totals.haveServe = true
		}
	}
	if games, ok := count(svGms); ok {
		if aces, okAces := count(ace); okAces {
			totals.svGms += games
			totals.aces += aces
			totals.haveGames = true
		}
	}
	if faced, ok := count(bpFaced); ok {
		if saved, okSaved := count(bpSaved); okSaved {
			totals.bpFaced += faced
			totals.bpSaved += saved
			totals.haveBp = true
		}
	}
	if faced, ok := count(oppBpFaced); ok {
		if saved, okSaved := count(oppBpSaved); okSaved {
			totals.oppBpFaced += faced
			totals.oppBpSaved += saved
			totals.haveOppBp = true
		}
	}
}

func (t serveTotals) metrics() ServeMetrics {
	var m ServeMetrics
	if t.haveServe && t.svpt > 0 {
		m.FirstServePct = ratio(t.firstIn, t.svpt)
	}
	if t.haveGames && t.svGms > 0 {
		v := float64(t.aces) / float64(t.svGms)
		m.AcesPerServiceGame = &v
	}
	if t.haveBp && t.bpFaced > 0 {
		m.BreakPointsSavedPct = ratio(t.bpSaved, t.bpFaced)
	}
	// Break points converted are the ones the opponent faced and failed to save.
	if t.haveOppBp && t.oppBpFaced > 0 {
		m.BreakPointConvPct = ratio(t.oppBpFaced-t.oppBpSaved, t.oppBpFaced)
	}
	return m
}

func ratio(num, den int) *float64 {
	v := float64(num) / float64(den)
	return &v
}

func count(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func orderedSurfaces(m map[string]*tally) []SurfaceRecord {
	var out []SurfaceRecord
	for _, surface := range surfaceOrder {
		if t, ok := m[surface]; ok {
			out = append(out, SurfaceRecord{Surface: surface, Wins: t.wins, Losses: t.losses, WinRate: t.rate()})
			delete(m, surface)
		}
	}
	for surface, t := range m {
		out = append(out, SurfaceRecord{Surface: surface, Wins: t.wins, Losses: t.losses, WinRate: t.rate()})
	}
	return out
}

func orderedTiers(m map[string]*tally) []TierRecord {
	var out []TierRecord
	for _, tier := range tierOrder {
		if t, ok := m[tier]; ok {
			out = append(out, TierRecord{Tier: tier, Wins: t.wins, Losses: t.losses, WinRate: t.rate()})
		}
	}
	return out
}
