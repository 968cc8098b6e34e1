package cleaner

import (
	"testing"

	"github.com/courtsight/courtsight/internal/domain/match"
)

func newTestCleaner() *Cleaner {
	return New(DefaultOptions(), nil, nil)
}

func TestCleanEmptyInputStillCanonical(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	got := c.Clean(match.RawMatch{})

	if got.ID == "" {
		t.Error("id must be synthesized")
	}
	if got.Tournament.Name == "" {
		t.Error("tournament name must not be empty")
	}
	if !got.Status.Known() {
		t.Errorf("status %q outside closed enum", got.Status)
	}
	if got.Players[0].Name != "Player 1" || got.Players[1].Name != "Player 2" {
		t.Errorf("placeholder players: got %q / %q", got.Players[0].Name, got.Players[1].Name)
	}
	if got.Players[0].CountryCode != match.UnknownCountry {
		t.Errorf("country code: got %q, want %q", got.Players[0].CountryCode, match.UnknownCountry)
	}
	if got.Score != nil {
		t.Error("absent score must stay nil")
	}
	if got.Tournament.Location != DefaultLocation {
		t.Errorf("location: got %q", got.Tournament.Location)
	}
}

func TestCleanLocationRepair(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	cases := []struct {
		name string
		raw  match.RawTournament
		want string
	}{
		{"malformed composite", match.RawTournament{Location: ", • Hard"}, DefaultLocation},
		{"bullet prefix", match.RawTournament{Location: "• Clay"}, DefaultLocation},
		{"surface suffix stripped", match.RawTournament{Location: "Chengdu, China • Hard"}, "Chengdu, China"},
		{"non-surface bullet kept", match.RawTournament{Location: "Paris • Bercy"}, "Paris • Bercy"},
		{"city country preferred", match.RawTournament{Location: "junk", City: "Madrid", Country: "Spain"}, "Madrid, Spain"},
		{"city only", match.RawTournament{City: "Madrid"}, "Madrid"},
		{"empty", match.RawTournament{}, DefaultLocation},
	}

	for _, tc := range cases {
		raw := tc.raw
		got := c.Clean(match.RawMatch{Tournament: &raw})
		if got.Tournament.Location != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got.Tournament.Location, tc.want)
		}
	}
}

func TestCleanTournamentNameRepair(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	cases := []struct {
		in   string
		want string
	}{
		{"ournament of Champions", "Tournament of Champions"},
		{"Dubai hampionship", "Dubai Championship"},
		{"Rio", "Rio Tournament"},
		{"ATP", "ATP"},
		{"Miami Open", "Miami Open"},
		{"", "Unknown Tournament"},
	}

	for _, tc := range cases {
		got := c.Clean(match.RawMatch{Tournament: &match.RawTournament{Name: tc.in}})
		if got.Tournament.Name != tc.want {
			t.Errorf("name %q: got %q, want %q", tc.in, got.Tournament.Name, tc.want)
		}
	}
}

func TestCleanPlayerNameNormalization(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	raw := match.RawMatch{Players: []match.RawPlayer{
		{Name: "Daniel, Taro"},
		{Name: "🇪🇸 Alcaraz, Carlos"},
	}}

	got := c.Clean(raw)
	if got.Players[0].Name != "Taro Daniel" {
		t.Errorf("player 1: got %q", got.Players[0].Name)
	}
	if got.Players[1].Name != "Carlos Alcaraz" {
		t.Errorf("player 2: got %q", got.Players[1].Name)
	}
}

func TestCleanPlaceholderNames(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	got := c.Clean(match.RawMatch{Players: []match.RawPlayer{{Name: "-"}}})

	if got.Players[0].Name != "Player 1" {
		t.Errorf("dash name: got %q", got.Players[0].Name)
	}
	if got.Players[1].Name != "Player 2" {
		t.Errorf("missing second player: got %q", got.Players[1].Name)
	}
}

func TestCleanCountryCascade(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	raw := match.RawMatch{Players: []match.RawPlayer{
		{Name: "A", CountryCode: "ES"},
		{Name: "B", CountryCode: "🇯🇵", Nationality: "Japan"},
	}}

	got := c.Clean(raw)
	if got.Players[0].CountryCode != "ES" {
		t.Errorf("explicit code: got %q", got.Players[0].CountryCode)
	}
	if got.Players[1].CountryCode != "JP" {
		t.Errorf("nationality fallback: got %q", got.Players[1].CountryCode)
	}
}

func TestCleanScoreDropsUnparseableSets(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	raw := match.RawMatch{Score: &match.RawScore{Sets: []match.RawSet{
		{P1: "-", P2: "-"},
		{P1: 6.0, P2: "4"},
		{P1: "N/A", P2: 3.0},
	}}}

	got := c.Clean(raw)
	if got.Score == nil {
		t.Fatal("score should survive")
	}
	if len(got.Score.Sets) != 2 {
		t.Fatalf("set count: got %d, want 2", len(got.Score.Sets))
	}
	if got.Score.Sets[0].P1Games != 6 || got.Score.Sets[0].P2Games != 4 {
		t.Errorf("set 1: got %d-%d", got.Score.Sets[0].P1Games, got.Score.Sets[0].P2Games)
	}
	if got.Score.Sets[1].P1Games != 0 || got.Score.Sets[1].P2Games != 3 {
		t.Errorf("one-sided coercion: got %d-%d", got.Score.Sets[1].P1Games, got.Score.Sets[1].P2Games)
	}
}

func TestCleanScoreCollapsesToAbsent(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	raw := match.RawMatch{Score: &match.RawScore{Sets: []match.RawSet{
		{P1: "-", P2: "-"},
		{P1: "N/A", P2: nil},
	}}}

	got := c.Clean(raw)
	if got.Score != nil {
		t.Fatalf("all-unparseable score must collapse to nil, got %+v", got.Score)
	}
}

func TestCleanScoreWithoutRepairKeepsGarbledScorePresent(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.RepairScores = false
	c := New(opts, nil, nil)

	raw := match.RawMatch{Score: &match.RawScore{Sets: []match.RawSet{
		{P1: "x", P2: "y"},
	}}}
	got := c.Clean(raw)

	if got.Score == nil {
		t.Fatal("a present but garbled score must stay present")
	}
	if len(got.Score.Sets) != 0 {
		t.Errorf("unparseable sets still drop: %+v", got.Score.Sets)
	}

	if c.Clean(match.RawMatch{}).Score != nil {
		t.Error("an absent score must stay nil")
	}
}

func TestCleanScoreKeepsCurrentGames(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	raw := match.RawMatch{Score: &match.RawScore{CurrentGames1: 3.0, CurrentGames2: "2"}}

	got := c.Clean(raw)
	if got.Score == nil || got.Score.CurrentGames == nil {
		t.Fatal("current games must survive without sets")
	}
	if got.Score.CurrentGames.P1 != 3 || got.Score.CurrentGames.P2 != 2 {
		t.Errorf("current games: got %d-%d", got.Score.CurrentGames.P1, got.Score.CurrentGames.P2)
	}
}

func TestCleanStatusVocabulary(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	cases := map[string]match.Status{
		"FT":    match.StatusCompleted,
		"ft":    match.StatusCompleted,
		"wo":    match.StatusWalkover,
		"ret":   match.StatusRetired,
		"weird": match.StatusScheduled,
		"":      match.StatusScheduled,
	}

	for in, want := range cases {
		got := c.Clean(match.RawMatch{Status: in})
		if got.Status != want {
			t.Errorf("status %q: got %s, want %s", in, got.Status, want)
		}
	}
}

func TestCleanTiebreak(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	raw := match.RawMatch{Score: &match.RawScore{Sets: []match.RawSet{
		{P1: 7.0, P2: 6.0, Tiebreak1: 7.0, Tiebreak2: "4"},
	}}}

	got := c.Clean(raw)
	set := got.Score.Sets[0]
	if set.Tiebreak == nil {
		t.Fatal("tiebreak must survive")
	}
	if set.Tiebreak.P1 != 7 || set.Tiebreak.P2 != 4 {
		t.Errorf("tiebreak: got %d-%d", set.Tiebreak.P1, set.Tiebreak.P2)
	}
}

func TestCleanLiveIndicators(t *testing.T) {
	t.Parallel()

	c := newTestCleaner()
	serving := 1
	bp := true
	got := c.Clean(match.RawMatch{Serving: &serving, BreakPoint: &bp})

	if got.Live == nil {
		t.Fatal("live state must be attached")
	}
	if got.Live.ServingPlayer != 1 || !got.Live.BreakPoint || got.Live.SetPoint {
		t.Errorf("live state: %+v", got.Live)
	}

	if c.Clean(match.RawMatch{}).Live != nil {
		t.Error("no indicators should mean nil live state")
	}
}
