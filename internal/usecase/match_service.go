package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtsight/courtsight/internal/cleaner"
	"github.com/courtsight/courtsight/internal/display"
	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/platform/cache"
	"github.com/courtsight/courtsight/internal/platform/logging"
	"github.com/courtsight/courtsight/internal/validate"
)

const liveScoreboardCacheKey = "live-scoreboard"

// FeedProvider is the upstream live scoreboard source.
type FeedProvider interface {
	Scoreboard(ctx context.Context) ([]match.RawMatch, error)
}

// LiveMatch is one scoreboard entry after the full pipeline: the canonical
// match, its display view, and the quality verdict.
type LiveMatch struct {
	Match      match.Match     `json:"match"`
	View       display.View    `json:"view"`
	Validation validate.Result `json:"validation"`
}

type MatchService struct {
	provider  FeedProvider
	cleaner   *cleaner.Cleaner
	validator *validate.Validator
	formatter *display.Formatter
	results   *cache.Store
	logger    *logging.Logger
}

func NewMatchService(
	provider FeedProvider,
	cl *cleaner.Cleaner,
	validator *validate.Validator,
	formatter *display.Formatter,
	results *cache.Store,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		provider:  provider,
		cleaner:   cl,
		validator: validator,
		formatter: formatter,
		results:   results,
		logger:    logger,
	}
}

// LiveMatches fetches the scoreboard and runs every entry through clean,
// validate, and format. The assembled result is cached briefly so bursts of
// readers share one upstream poll.
func (s *MatchService) LiveMatches(ctx context.Context) ([]LiveMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.LiveMatches")
	defer span.End()

	if s.provider == nil {
		return nil, fmt.Errorf("%w: live feed is not configured", ErrDependencyUnavailable)
	}

	value, err := s.results.GetOrLoad(ctx, liveScoreboardCacheKey, func(ctx context.Context) (any, error) {
		raws, err := s.provider.Scoreboard(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
		}
		return s.assemble(raws), nil
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]LiveMatch)
	if !ok {
		return nil, fmt.Errorf("unexpected cached scoreboard type %T", value)
	}
	return out, nil
}

// ValidateRaw runs one raw payload through cleaning and validation without
// touching the feed. Cleaning is total, so the only inputs rejected here
// are structurally empty requests.
func (s *MatchService) ValidateRaw(ctx context.Context, raw match.RawMatch) (LiveMatch, error) {
	_, span := startUsecaseSpan(ctx, "usecase.MatchService.ValidateRaw")
	defer span.End()

	if strings.TrimSpace(raw.ID) == "" && raw.Tournament == nil && len(raw.Players) == 0 && raw.Score == nil {
		return LiveMatch{}, fmt.Errorf("%w: match payload is empty", ErrInvalidInput)
	}

	cleaned := s.cleaner.Clean(raw)
	return LiveMatch{
		Match:      cleaned,
		View:       s.formatter.Format(cleaned),
		Validation: s.validator.Validate(cleaned),
	}, nil
}

func (s *MatchService) assemble(raws []match.RawMatch) []LiveMatch {
	out := make([]LiveMatch, 0, len(raws))
	for _, raw := range raws {
		cleaned := s.cleaner.Clean(raw)
		result := s.validator.Validate(cleaned)
		if !result.Valid {
			s.logger.Warn("live match failed validation", "match_id", cleaned.ID, "errors", len(result.Errors))
		}
		out = append(out, LiveMatch{
			Match:      cleaned,
			View:       s.formatter.Format(cleaned),
			Validation: result,
		})
	}
	return out
}
