package display

import (
	"time"

	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/normalize"
)

// statusPresentation is the fixed status → label/color/icon table.
var statusPresentation = map[match.Status]struct {
	label string
	color string
	icon  string
}{
	match.StatusScheduled: {"Upcoming", "#9CA3AF", "clock"},
	match.StatusLive:      {"Live", "#EF4444", "pulse"},
	match.StatusCompleted: {"Final", "#10B981", "check"},
	match.StatusCancelled: {"Cancelled", "#6B7280", "cross"},
	match.StatusWalkover:  {"Walkover", "#6B7280", "arrow"},
	match.StatusRetired:   {"Retired", "#F59E0B", "flag"},
}

type PlayerView struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Seed        *int   `json:"seed,omitempty"`
	Ranking     *int   `json:"ranking,omitempty"`
}

// View is the presentation-ready projection of one canonical match.
type View struct {
	MatchID        string           `json:"matchId"`
	TournamentName string           `json:"tournamentName"`
	Location       string           `json:"location"`
	Surface        match.Surface    `json:"surface"`
	Round          string           `json:"round,omitempty"`
	StatusLabel    string           `json:"statusLabel"`
	StatusColor    string           `json:"statusColor"`
	StatusIcon     string           `json:"statusIcon"`
	RelativeTime   string           `json:"relativeTime,omitempty"`
	Players        [2]PlayerView    `json:"players"`
	SetWinners     []int            `json:"setWinners,omitempty"`
	SetsWon        [2]int           `json:"setsWon"`
	WinnerIndex    int              `json:"winnerIndex"`
	Score          *match.Score     `json:"score,omitempty"`
	Live           *match.LiveState `json:"live,omitempty"`
}

// Formatter derives display views from canonical matches. It is pure; the
// clock is injected so relative-time phrasing is deterministic under test.
type Formatter struct {
	now func() time.Time
}

func New() *Formatter {
	return &Formatter{now: time.Now}
}

func NewWithClock(now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}
	return &Formatter{now: now}
}

func (f *Formatter) Format(m match.Match) View {
	pres := statusPresentation[m.Status]
	if pres.label == "" {
		pres = statusPresentation[match.StatusScheduled]
	}

	p1Sets, p2Sets := m.Score.SetsWon()

	view := View{
		MatchID:        m.ID,
		TournamentName: m.Tournament.Name,
		Location:       locationOrFallback(m.Tournament.Location),
		Surface:        m.Tournament.Surface,
		Round:          m.Round,
		StatusLabel:    pres.label,
		StatusColor:    pres.color,
		StatusIcon:     pres.icon,
		RelativeTime:   f.relativeTime(m),
		SetWinners:     setWinners(m.Score),
		SetsWon:        [2]int{p1Sets, p2Sets},
		WinnerIndex:    winnerIndex(m.Score),
		Score:          m.Score,
		Live:           m.Live,
	}

	for i, p := range m.Players {
		view.Players[i] = PlayerView{
			Name:        p.Name,
			CountryCode: p.CountryCode,
			Seed:        p.Seed,
			Ranking:     p.Ranking,
		}
	}
	return view
}

// FormatAll projects a snapshot of matches.
func (f *Formatter) FormatAll(matches []match.Match) []View {
	out := make([]View, 0, len(matches))
	for _, m := range matches {
		out = append(out, f.Format(m))
	}
	return out
}

// FormatCompact reduces each display name to a single surname token.
func (f *Formatter) FormatCompact(m match.Match) View {
	view := f.Format(m)
	for i := range view.Players {
		view.Players[i].Name = normalize.SurnameToken(view.Players[i].Name)
	}
	return view
}

func locationOrFallback(location string) string {
	if location == "" {
		return "Unknown Location"
	}
	return location
}

// setWinners marks each set 1 or 2 for the strictly higher game count,
// 0 for a tied or undecided set.
func setWinners(score *match.Score) []int {
	if score == nil {
		return nil
	}
	out := make([]int, len(score.Sets))
	for i, set := range score.Sets {
		switch {
		case set.P1Games > set.P2Games:
			out[i] = 1
		case set.P2Games > set.P1Games:
			out[i] = 2
		}
	}
	return out
}

// winnerIndex determines the match winner structurally: first player to a
// simple majority under best-of-3 (≤3 sets played) or best-of-5 (≤5).
// Returns -1 when undecided.
func winnerIndex(score *match.Score) int {
	if score == nil {
		return -1
	}
	total := len(score.Sets)
	if total == 0 || total > 5 {
		return -1
	}
	need := 2
	if total > 3 {
		need = 3
	}
	p1, p2 := score.SetsWon()
	switch {
	case p1 >= need:
		return 0
	case p2 >= need:
		return 1
	default:
		return -1
	}
}
