package match

// RawMatch is the loose, all-optional shape both upstream sources produce.
// Every field may be absent or malformed; the cleaner narrows it to Match.
// Score values are decoded as `any` because the feed emits them variously as
// numbers, numeric strings, or the literal markers "-" and "N/A".
type RawMatch struct {
	ID         string         `json:"id"`
	Tournament *RawTournament `json:"tournament"`
	Round      string         `json:"round"`
	Status     string         `json:"status"`
	Players    []RawPlayer    `json:"players"`
	Score      *RawScore      `json:"score"`
	StartTime  string         `json:"startTime"`
	EndTime    string         `json:"endTime"`
	Court      string         `json:"court"`
	Serving    *int           `json:"serving"`
	SetPoint   *bool          `json:"setPoint"`
	MatchPoint *bool          `json:"matchPoint"`
	BreakPoint *bool          `json:"breakPoint"`
}

type RawTournament struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Surface  string `json:"surface"`
	Location string `json:"location"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Tier     string `json:"tier"`
}

type RawPlayer struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Nationality string   `json:"nationality"`
	CountryCode string   `json:"countryCode"`
	Ranking     *int     `json:"ranking"`
	Age         *float64 `json:"age"`
	HeightCM    *int     `json:"height"`
	WeightKG    *int     `json:"weight"`
	Handedness  string   `json:"hand"`
	Seed        *int     `json:"seed"`
}

type RawSet struct {
	P1        any `json:"player1"`
	P2        any `json:"player2"`
	Tiebreak1 any `json:"tiebreak1"`
	Tiebreak2 any `json:"tiebreak2"`
}

type RawScore struct {
	Sets          []RawSet `json:"sets"`
	CurrentGames1 any      `json:"currentGames1"`
	CurrentGames2 any      `json:"currentGames2"`
}
