package normalize

import (
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
)

// statusVocabulary is the closed source-string vocabulary both feeds use.
// Lookup is case-insensitive; anything outside the table defaults to
// scheduled rather than leaking an open-ended value into the enum.
var statusVocabulary = map[string]match.Status{
	"scheduled":   match.StatusScheduled,
	"not started": match.StatusScheduled,
	"ns":          match.StatusScheduled,
	"upcoming":    match.StatusScheduled,
	"fixture":     match.StatusScheduled,

	"live":        match.StatusLive,
	"in progress": match.StatusLive,
	"inprogress":  match.StatusLive,
	"playing":     match.StatusLive,
	"1st set":     match.StatusLive,
	"2nd set":     match.StatusLive,
	"3rd set":     match.StatusLive,
	"4th set":     match.StatusLive,
	"5th set":     match.StatusLive,

	"completed": match.StatusCompleted,
	"complete":  match.StatusCompleted,
	"finished":  match.StatusCompleted,
	"final":     match.StatusCompleted,
	"ended":     match.StatusCompleted,
	"ft":        match.StatusCompleted,
	"f":         match.StatusCompleted,

	"cancelled": match.StatusCancelled,
	"canceled":  match.StatusCancelled,
	"canc":      match.StatusCancelled,
	"postponed": match.StatusCancelled,
	"abandoned": match.StatusCancelled,

	"walkover": match.StatusWalkover,
	"wo":       match.StatusWalkover,
	"w/o":      match.StatusWalkover,
	"w.o.":     match.StatusWalkover,

	"retired":  match.StatusRetired,
	"ret":      match.StatusRetired,
	"ret.":     match.StatusRetired,
	"retired.": match.StatusRetired,
}

// Status maps a raw status string onto the closed enum.
func Status(value string) match.Status {
	key := strings.ToLower(strings.TrimSpace(value))
	if status, ok := statusVocabulary[key]; ok {
		return status
	}
	return match.StatusScheduled
}
