package archive

import (
	"strconv"
	"strings"

	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/courtsight/courtsight/internal/domain/match"
)

// levelNames maps the archive's single-letter tournament level codes onto
// the category vocabulary the cleaner understands.
var levelNames = map[string]string{
	"G": "ATP",
	"M": "ATP",
	"A": "ATP",
	"F": "ATP",
	"D": "ATP",
	"C": "Challenger",
	"S": "ITF",
	"E": "Exhibition",
}

// RawMatchFromRow bridges one historical archive row into the loose ingest
// shape so archive matches flow through the same cleaning pipeline as the
// live feed. The winner is always placed on side one.
func RawMatchFromRow(row history.RawHistoricalRow) match.RawMatch {
	sets, marker := ParseScoreString(row.Score)

	status := "finished"
	switch marker {
	case "RET", "RET.":
		status = "retired"
	case "W/O", "WO", "DEF", "DEF.":
		status = "walkover"
	case "ABD", "UNFINISHED":
		status = "abandoned"
	}

	raw := match.RawMatch{
		ID:     row.Key(),
		Round:  row.Round,
		Status: status,
		Tournament: &match.RawTournament{
			ID:       row.TourneyID,
			Name:     row.TourneyName,
			Category: levelNames[strings.ToUpper(row.Level)],
			Surface:  row.Surface,
		},
		Players: []match.RawPlayer{
			rawPlayer(row.WinnerID, row.WinnerName, row.WinnerCountry, row.WinnerHand,
				row.WinnerRank, row.WinnerSeed, row.WinnerHeight, row.WinnerAge),
			rawPlayer(row.LoserID, row.LoserName, row.LoserCountry, row.LoserHand,
				row.LoserRank, row.LoserSeed, row.LoserHeight, row.LoserAge),
		},
	}

	if iso, err := CompactToISO(row.TourneyDate); err == nil {
		raw.StartTime = iso
	}

	if len(sets) > 0 {
		score := &match.RawScore{Sets: make([]match.RawSet, 0, len(sets))}
		for _, set := range sets {
			rs := match.RawSet{P1: set.P1Games, P2: set.P2Games}
			if set.Tiebreak != nil {
				rs.Tiebreak1 = set.Tiebreak.P1
				rs.Tiebreak2 = set.Tiebreak.P2
			}
			score.Sets = append(score.Sets, rs)
		}
		raw.Score = score
	}

	return raw
}

func rawPlayer(id, name, ioc, hand, rank, seed, height, age string) match.RawPlayer {
	p := match.RawPlayer{
		ID:          id,
		Name:        name,
		Nationality: ioc,
		Handedness:  strings.ToLower(hand),
	}
	if n, err := strconv.Atoi(rank); err == nil && n > 0 {
		p.Ranking = &n
	}
	if n, err := strconv.Atoi(seed); err == nil && n > 0 {
		p.Seed = &n
	}
	if n, err := strconv.Atoi(height); err == nil && n > 0 {
		p.HeightCM = &n
	}
	if f, err := strconv.ParseFloat(age, 64); err == nil && f > 0 {
		p.Age = &f
	}
	return p
}
