package history

// RawHistoricalRow is one completed match from a season archive file,
// immutable once loaded. Key identifies a row uniquely within a season.
type RawHistoricalRow struct {
	TourneyID   string
	TourneyName string
	Surface     string
	DrawSize    string
	Level       string
	TourneyDate string
	MatchNum    string

	WinnerID      string
	WinnerSeed    string
	WinnerEntry   string
	WinnerName    string
	WinnerHand    string
	WinnerHeight  string
	WinnerCountry string
	WinnerAge     string

	LoserID      string
	LoserSeed    string
	LoserEntry   string
	LoserName    string
	LoserHand    string
	LoserHeight  string
	LoserCountry string
	LoserAge     string

	Score  string
	BestOf string
	Round  string

	// Per-match serve/return stat columns, empty when the archive lacks them.
	WAce     string
	WDf      string
	WSvpt    string
	WFirstIn string
	WSvGms   string
	WBpSaved string
	WBpFaced string
	LAce     string
	LDf      string
	LSvpt    string
	LFirstIn string
	LSvGms   string
	LBpSaved string
	LBpFaced string

	WinnerRank       string
	WinnerRankPoints string
	LoserRank        string
	LoserRankPoints  string
}

// Key is the composite archive identity (tournament id, match number).
func (r RawHistoricalRow) Key() string {
	return r.TourneyID + "-" + r.MatchNum
}

// RegistryPlayer is one row of the player registry file.
type RegistryPlayer struct {
	ID        string
	FirstName string
	LastName  string
	Hand      string
	BirthDate string
	Country   string
}

// RankingRow is one row of a dated ranking snapshot.
type RankingRow struct {
	Date     string
	Rank     int
	PlayerID string
	Points   int
}
