package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/courtsight/courtsight/internal/platform/logging"
)

func TestReadDelimited(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"tourney_id,tourney_name,surface",
		`2024-301,"Chengdu, China Open",Hard`,
		"2024-302,Basel Indoors,Carpet",
		"short,row",
		"",
		"2024-303,Roland Garros,Clay,extra,fields",
	}, "\n")

	table, err := ReadDelimited(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Columns) != 3 {
		t.Fatalf("columns: %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(table.Rows))
	}
	if table.Dropped != 2 {
		t.Errorf("dropped: got %d, want 2", table.Dropped)
	}
	if got := table.Rows[0]["tourney_name"]; got != "Chengdu, China Open" {
		t.Errorf("quoted field: got %q", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	t.Parallel()

	iso, err := CompactToISO("20260825")
	if err != nil {
		t.Fatalf("to iso: %v", err)
	}
	if iso != "2026-08-25" {
		t.Errorf("iso: got %q", iso)
	}

	compact, err := ISOToCompact(iso)
	if err != nil {
		t.Fatalf("to compact: %v", err)
	}
	if compact != "20260825" {
		t.Errorf("compact: got %q", compact)
	}

	if _, err := CompactToISO("2026082"); err == nil {
		t.Error("short compact date should fail")
	}
	if _, err := ISOToCompact("25-08-2026"); err == nil {
		t.Error("wrong iso layout should fail")
	}
}

func TestParseScoreString(t *testing.T) {
	t.Parallel()

	sets, marker := ParseScoreString("6-4 3-6 7-6(5)")
	if marker != "" {
		t.Errorf("marker: got %q", marker)
	}
	if len(sets) != 3 {
		t.Fatalf("sets: %v", sets)
	}
	tb := sets[2].Tiebreak
	if tb == nil || tb.P1 != 7 || tb.P2 != 5 {
		t.Errorf("tiebreak: %+v", tb)
	}

	// Long tiebreak: the winner score is reconstructed from the loser's.
	sets, _ = ParseScoreString("7-6(10)")
	if tb := sets[0].Tiebreak; tb == nil || tb.P1 != 12 || tb.P2 != 10 {
		t.Errorf("long tiebreak: %+v", sets[0].Tiebreak)
	}

	// Tiebreak lost by the first-listed side.
	sets, _ = ParseScoreString("6-7(3)")
	if tb := sets[0].Tiebreak; tb == nil || tb.P1 != 3 || tb.P2 != 7 {
		t.Errorf("reversed tiebreak: %+v", sets[0].Tiebreak)
	}

	sets, marker = ParseScoreString("6-4 2-1 RET")
	if marker != "RET" {
		t.Errorf("retirement marker: got %q", marker)
	}
	if len(sets) != 2 {
		t.Errorf("sets before retirement: %v", sets)
	}

	sets, marker = ParseScoreString("W/O")
	if marker != "W/O" || len(sets) != 0 {
		t.Errorf("walkover: sets=%v marker=%q", sets, marker)
	}

	if sets, _ := ParseScoreString(""); len(sets) != 0 {
		t.Errorf("empty score: %v", sets)
	}
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func TestLoaderSeasonMatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "atp_matches_2024.csv", strings.Join([]string{
		"tourney_id,tourney_name,surface,draw_size,tourney_level,tourney_date,match_num,winner_id,winner_seed,winner_entry,winner_name,winner_hand,winner_ht,winner_ioc,winner_age,loser_id,loser_seed,loser_entry,loser_name,loser_hand,loser_ht,loser_ioc,loser_age,score,best_of,round,minutes,w_ace,w_df,w_svpt,w_1stIn,w_1stWon,w_2ndWon,w_SvGms,w_bpSaved,w_bpFaced,l_ace,l_df,l_svpt,l_1stIn,l_1stWon,l_2ndWon,l_SvGms,l_bpSaved,l_bpFaced,winner_rank,winner_rank_points,loser_rank,loser_rank_points",
		"2024-301,Chengdu Open,Hard,28,A,20240916,300,105777,1,,Taro Daniel,R,190,JPN,31.2,106401,,,Nicolas Jarry,R,198,CHI,28.8,6-4 3-6 7-6(5),3,F,142,9,2,98,60,45,20,15,4,6,5,3,95,58,40,18,14,3,5,60,980,22,1515",
	}, "\n"))

	loader := NewLoader(dir, time.Minute, logging.NewNop())
	ctx := context.Background()

	rows, err := loader.SeasonMatches(ctx, 2024)
	if err != nil {
		t.Fatalf("season matches: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: %d", len(rows))
	}
	row := rows[0]
	if row.Key() != "2024-301-300" {
		t.Errorf("key: got %q", row.Key())
	}
	if row.WinnerName != "Taro Daniel" || row.LoserCountry != "CHI" {
		t.Errorf("row mapping: %+v", row)
	}
	if row.WAce != "9" || row.LBpFaced != "60" {
		t.Errorf("stat mapping: ace=%q bpfaced=%q", row.WAce, row.LBpFaced)
	}

	// Missing seasons degrade to empty with no error.
	rows, err = loader.SeasonMatches(ctx, 1999)
	if err != nil {
		t.Fatalf("missing season: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("missing season rows: %v", rows)
	}

	if got := loader.AvailableSeasons(); len(got) != 1 || got[0] != 2024 {
		t.Errorf("available seasons: %v", got)
	}
}

func TestLoaderRankings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "atp_rankings_current.csv", strings.Join([]string{
		"ranking_date,rank,player,points",
		"20260817,1,104925,9850",
		"20260817,2,106421,8420",
		"20260810,1,104925,9700",
	}, "\n"))

	loader := NewLoader(dir, time.Minute, logging.NewNop())
	ctx := context.Background()

	rows, err := loader.CurrentRankings(ctx)
	if err != nil {
		t.Fatalf("current rankings: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: %d", len(rows))
	}
	if rows[0].Rank != 1 || rows[0].Points != 9850 {
		t.Errorf("row mapping: %+v", rows[0])
	}

	latest, ok, err := loader.LatestRankingDate(ctx)
	if err != nil || !ok {
		t.Fatalf("latest date: %v ok=%v", err, ok)
	}
	if latest != "2026-08-17" {
		t.Errorf("latest: got %q", latest)
	}

	dated, err := loader.RankingsByDate(ctx, "2026-08-10")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(dated) != 1 || dated[0].Points != 9700 {
		t.Errorf("dated rows: %+v", dated)
	}
}

func TestLoaderMissingRankingsIsHardFailure(t *testing.T) {
	t.Parallel()

	loader := NewLoader(t.TempDir(), time.Minute, logging.NewNop())
	if _, err := loader.CurrentRankings(context.Background()); err == nil {
		t.Fatal("missing ranking file must be an error")
	}
}

func TestRawMatchFromRow(t *testing.T) {
	t.Parallel()

	row := sampleRow()
	raw := RawMatchFromRow(row)

	if raw.ID != "2024-301-300" {
		t.Errorf("id: got %q", raw.ID)
	}
	if raw.Status != "finished" {
		t.Errorf("status: got %q", raw.Status)
	}
	if raw.Tournament == nil || raw.Tournament.Category != "ATP" {
		t.Errorf("tournament: %+v", raw.Tournament)
	}
	if raw.StartTime != "2024-09-16" {
		t.Errorf("start time: got %q", raw.StartTime)
	}
	if len(raw.Players) != 2 || raw.Players[0].Name != "Taro Daniel" {
		t.Errorf("players: %+v", raw.Players)
	}
	if raw.Players[0].Ranking == nil || *raw.Players[0].Ranking != 60 {
		t.Errorf("winner ranking: %+v", raw.Players[0].Ranking)
	}
	if raw.Score == nil || len(raw.Score.Sets) != 3 {
		t.Fatalf("score: %+v", raw.Score)
	}
	if raw.Score.Sets[2].Tiebreak2 != 5 {
		t.Errorf("tiebreak carry-through: %+v", raw.Score.Sets[2])
	}

	row.Score = "6-4 2-1 RET"
	if got := RawMatchFromRow(row).Status; got != "retired" {
		t.Errorf("retirement status: got %q", got)
	}
	row.Score = "W/O"
	if got := RawMatchFromRow(row).Status; got != "walkover" {
		t.Errorf("walkover status: got %q", got)
	}
}

func sampleRow() history.RawHistoricalRow {
	return history.RawHistoricalRow{
		TourneyID:     "2024-301",
		TourneyName:   "Chengdu Open",
		Surface:       "Hard",
		Level:         "A",
		TourneyDate:   "20240916",
		MatchNum:      "300",
		WinnerID:      "105777",
		WinnerName:    "Taro Daniel",
		WinnerHand:    "R",
		WinnerCountry: "JPN",
		WinnerRank:    "60",
		LoserID:       "106401",
		LoserName:     "Nicolas Jarry",
		LoserHand:     "R",
		LoserCountry:  "CHI",
		LoserRank:     "22",
		Score:         "6-4 3-6 7-6(5)",
		BestOf:        "3",
		Round:         "F",
	}
}
