package match

// Status is the closed lifecycle vocabulary for a match.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusWalkover  Status = "walkover"
	StatusRetired   Status = "retired"
)

var AllStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusLive:      {},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusWalkover:  {},
	StatusRetired:   {},
}

func (s Status) Known() bool {
	_, ok := AllStatuses[s]
	return ok
}

// Terminal reports whether a match in this status can never change again.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusWalkover, StatusRetired:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the live-update state machine. Terminal states have
// no outgoing edges; a self-transition is always allowed (snapshot refresh).
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusScheduled:
		return next == StatusLive || next == StatusCancelled
	case StatusLive:
		return next == StatusCompleted || next == StatusRetired || next == StatusCancelled
	default:
		return false
	}
}

// Surface is the closed court-surface vocabulary.
type Surface string

const (
	SurfaceHard   Surface = "Hard"
	SurfaceClay   Surface = "Clay"
	SurfaceGrass  Surface = "Grass"
	SurfaceIndoor Surface = "Indoor"
	SurfaceCarpet Surface = "Carpet"
)

// Category is the closed tournament-category vocabulary.
type Category string

const (
	CategoryATP        Category = "ATP"
	CategoryWTA        Category = "WTA"
	CategoryChallenger Category = "Challenger"
	CategoryITF        Category = "ITF"
	CategoryExhibition Category = "Exhibition"
	CategoryUnknown    Category = "Unknown"
)

// UnknownCountry is the explicit sentinel for an unresolvable country code.
// Canonical players always carry a 2-letter code or this value, never "".
const UnknownCountry = "XX"

// Player is one side of a canonical match.
type Player struct {
	ID          string
	Name        string
	Nationality string
	CountryCode string
	Ranking     *int
	Age         *float64
	HeightCM    *int
	WeightKG    *int
	Handedness  string
	Seed        *int
}

// Tournament describes the event a match belongs to.
type Tournament struct {
	ID        string
	Name      string
	Category  Category
	Surface   Surface
	Location  string
	StartDate string
	EndDate   string
	Tier      string
}

// Tiebreak is the supplementary sub-score of a set decided at 6-6.
type Tiebreak struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

// Set holds per-player game counts for one completed or in-progress set.
type Set struct {
	P1Games  int       `json:"p1Games"`
	P2Games  int       `json:"p2Games"`
	Tiebreak *Tiebreak `json:"tiebreak,omitempty"`
}

// GamePair is the in-progress game count of the current set.
type GamePair struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

// Score is the chronological set sequence of a match. A match with no score
// data carries a nil *Score, never an empty one.
type Score struct {
	Sets         []Set     `json:"sets"`
	CurrentGames *GamePair `json:"currentGames,omitempty"`
}

// SetsWon returns how many sets each player has strictly won.
func (s *Score) SetsWon() (p1, p2 int) {
	if s == nil {
		return 0, 0
	}
	for _, set := range s.Sets {
		switch {
		case set.P1Games > set.P2Games:
			p1++
		case set.P2Games > set.P1Games:
			p2++
		}
	}
	return p1, p2
}

// LiveState carries the passthrough live indicators from the feed.
type LiveState struct {
	ServingPlayer int  `json:"servingPlayer"`
	SetPoint      bool `json:"setPoint"`
	MatchPoint    bool `json:"matchPoint"`
	BreakPoint    bool `json:"breakPoint"`
}

// Match is the fully-populated canonical representation produced by the
// cleaner. Players keeps source order; index 0 is "player 1" everywhere.
type Match struct {
	ID         string
	Tournament Tournament
	Round      string
	Status     Status
	Players    [2]Player
	Score      *Score
	StartTime  string
	EndTime    string
	Court      string
	Live       *LiveState
}
