package display

import "github.com/courtsight/courtsight/internal/domain/match"

// SetAdvance reports how one pre-existing set moved between two snapshots.
type SetAdvance struct {
	Index   int `json:"index"`
	P1Delta int `json:"p1Delta"`
	P2Delta int `json:"p2Delta"`
}

// ScoreDelta is the difference between two score snapshots of one match,
// for incremental UI updates. It is derived on demand and never stored.
type ScoreDelta struct {
	AdvancedSets []SetAdvance `json:"advancedSets,omitempty"`
	NewSet       bool         `json:"newSet"`
}

// Delta compares two score snapshots and reports which set indices/sides
// advanced and whether a new set appeared. Only positive movement counts.
func Delta(prev, next *match.Score) ScoreDelta {
	var out ScoreDelta

	var prevSets, nextSets []match.Set
	if prev != nil {
		prevSets = prev.Sets
	}
	if next != nil {
		nextSets = next.Sets
	}

	out.NewSet = len(nextSets) > len(prevSets)

	common := len(prevSets)
	if len(nextSets) < common {
		common = len(nextSets)
	}
	for i := 0; i < common; i++ {
		d1 := nextSets[i].P1Games - prevSets[i].P1Games
		d2 := nextSets[i].P2Games - prevSets[i].P2Games
		if d1 <= 0 && d2 <= 0 {
			continue
		}
		if d1 < 0 {
			d1 = 0
		}
		if d2 < 0 {
			d2 = 0
		}
		out.AdvancedSets = append(out.AdvancedSets, SetAdvance{Index: i, P1Delta: d1, P2Delta: d2})
	}

	return out
}
