package display

import (
	"fmt"
	"time"

	"github.com/courtsight/courtsight/internal/domain/match"
)

var relativeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// relativeTime produces the hour-bucketed phrasing for a match. Matches with
// no parseable timestamp get an empty phrase rather than a wrong one.
func (f *Formatter) relativeTime(m match.Match) string {
	switch m.Status {
	case match.StatusScheduled:
		start, ok := parseDisplayTime(m.StartTime)
		if !ok {
			return ""
		}
		return untilPhrase(start.Sub(f.now()))
	case match.StatusLive:
		return "Live now"
	case match.StatusCompleted, match.StatusRetired, match.StatusWalkover:
		ts := m.EndTime
		if ts == "" {
			ts = m.StartTime
		}
		end, ok := parseDisplayTime(ts)
		if !ok {
			return ""
		}
		return agoPhrase(f.now().Sub(end))
	default:
		return ""
	}
}

func untilPhrase(until time.Duration) string {
	switch {
	case until <= 0:
		return "Starting soon"
	case until < time.Hour:
		return fmt.Sprintf("In %dm", int(until.Minutes()))
	case until < 24*time.Hour:
		return fmt.Sprintf("In %dh", int(until.Hours()))
	default:
		return fmt.Sprintf("In %dd", int(until.Hours()/24))
	}
}

func agoPhrase(since time.Duration) string {
	switch {
	case since < time.Hour:
		return "Just finished"
	case since < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(since.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(since.Hours()/24))
	}
}

func parseDisplayTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range relativeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
