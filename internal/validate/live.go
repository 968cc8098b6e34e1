package validate

import (
	"fmt"

	"github.com/courtsight/courtsight/internal/domain/match"
)

func checkTransition(r *report, prev, next match.Match) {
	if prev.Status == next.Status {
		return
	}
	if prev.Status.Terminal() {
		r.err(fmt.Sprintf("illegal transition out of terminal status %s", prev.Status))
		return
	}
	if !prev.Status.CanTransitionTo(next.Status) {
		r.err(fmt.Sprintf("illegal status transition %s -> %s", prev.Status, next.Status))
	}
}

// checkMonotonicity enforces that live scores only move forward. A game
// count legitimately resets when a new set starts, so a decrease with a new
// set present is not reported at all.
func checkMonotonicity(r *report, prev, next *match.Score) {
	if prev == nil {
		return
	}
	var prevSets, nextSets []match.Set
	prevSets = prev.Sets
	if next != nil {
		nextSets = next.Sets
	}

	if len(nextSets) < len(prevSets) {
		r.err(fmt.Sprintf("completed set disappeared (%d sets -> %d)", len(prevSets), len(nextSets)))
		return
	}

	newSetStarted := len(nextSets) > len(prevSets)
	for i := range prevSets {
		if nextSets[i].P1Games >= prevSets[i].P1Games && nextSets[i].P2Games >= prevSets[i].P2Games {
			continue
		}
		if newSetStarted {
			continue
		}
		r.warn(fmt.Sprintf("set %d game count decreased without a new set starting", i+1))
	}
}
