package cleaner

import (
	"strconv"
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/normalize"
	"github.com/courtsight/courtsight/internal/platform/id"
	"github.com/courtsight/courtsight/internal/platform/logging"
)

const (
	// DefaultLocation is the fallback when no usable location survives repair.
	DefaultLocation = "Unknown Location"

	minPlausibleTournamentName = 5
)

// Options select which repair passes run on a raw record.
type Options struct {
	FillMissing     bool
	RepairScores    bool
	NormalizeNames  bool
	DefaultLocation string
}

func DefaultOptions() Options {
	return Options{
		FillMissing:     true,
		RepairScores:    true,
		NormalizeNames:  true,
		DefaultLocation: DefaultLocation,
	}
}

// Cleaner narrows the all-optional RawMatch shape into the all-required
// canonical Match. Clean is total: it never fails, whatever the input.
type Cleaner struct {
	opts   Options
	ids    id.Generator
	logger *logging.Logger
}

func New(opts Options, ids id.Generator, logger *logging.Logger) *Cleaner {
	if opts.DefaultLocation == "" {
		opts.DefaultLocation = DefaultLocation
	}
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Cleaner{opts: opts, ids: ids, logger: logger}
}

// Clean converts an arbitrary partial raw match into a canonical Match.
func (c *Cleaner) Clean(raw match.RawMatch) match.Match {
	out := match.Match{
		ID:         strings.TrimSpace(raw.ID),
		Round:      strings.TrimSpace(raw.Round),
		Status:     normalize.Status(raw.Status),
		StartTime:  strings.TrimSpace(raw.StartTime),
		EndTime:    strings.TrimSpace(raw.EndTime),
		Court:      strings.TrimSpace(raw.Court),
		Tournament: c.cleanTournament(raw.Tournament),
	}

	if out.ID == "" {
		out.ID = c.syntheticID()
	}

	out.Players = c.cleanPlayers(raw.Players)

	if c.opts.RepairScores {
		out.Score = cleanScore(raw.Score)
	} else {
		out.Score = passthroughScore(raw.Score)
	}

	out.Live = liveState(raw)

	return out
}

// CleanAll runs Clean over a feed snapshot.
func (c *Cleaner) CleanAll(raws []match.RawMatch) []match.Match {
	out := make([]match.Match, 0, len(raws))
	for _, raw := range raws {
		out = append(out, c.Clean(raw))
	}
	return out
}

func (c *Cleaner) syntheticID() string {
	generated, err := c.ids.NewID()
	if err != nil {
		c.logger.Warn("synthetic match id generation failed", "error", err)
		return "match-unknown"
	}
	return "match-" + generated[:12]
}

func (c *Cleaner) cleanPlayers(raws []match.RawPlayer) [2]match.Player {
	var out [2]match.Player
	for i := 0; i < 2; i++ {
		var raw match.RawPlayer
		if i < len(raws) {
			raw = raws[i]
		}
		out[i] = c.cleanPlayer(raw, i+1)
	}
	return out
}

func (c *Cleaner) cleanPlayer(raw match.RawPlayer, position int) match.Player {
	name := normalize.StripNameArtifacts(raw.Name)
	if c.opts.NormalizeNames {
		name = normalize.ReorderCommaName(name)
	}
	if normalize.IsPlaceholderName(name) {
		name = "Player " + strconv.Itoa(position)
	}

	player := match.Player{
		ID:          strings.TrimSpace(raw.ID),
		Name:        name,
		Nationality: strings.TrimSpace(raw.Nationality),
		CountryCode: normalize.ResolveCountry(raw.CountryCode, raw.Nationality),
		Ranking:     raw.Ranking,
		Age:         raw.Age,
		HeightCM:    raw.HeightCM,
		WeightKG:    raw.WeightKG,
		Handedness:  strings.TrimSpace(raw.Handedness),
		Seed:        raw.Seed,
	}
	if player.ID == "" {
		player.ID = "player-" + strconv.Itoa(position)
	}
	return player
}

func liveState(raw match.RawMatch) *match.LiveState {
	if raw.Serving == nil && raw.SetPoint == nil && raw.MatchPoint == nil && raw.BreakPoint == nil {
		return nil
	}
	state := &match.LiveState{}
	if raw.Serving != nil {
		state.ServingPlayer = *raw.Serving
	}
	if raw.SetPoint != nil {
		state.SetPoint = *raw.SetPoint
	}
	if raw.MatchPoint != nil {
		state.MatchPoint = *raw.MatchPoint
	}
	if raw.BreakPoint != nil {
		state.BreakPoint = *raw.BreakPoint
	}
	return state
}
