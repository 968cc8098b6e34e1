package validate

import (
	"context"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/platform/cache"
	"github.com/courtsight/courtsight/internal/platform/logging"
)

// Validator checks canonical matches against the tennis rule set. Results
// for an identical content fingerprint are served from a TTL-bounded cache;
// each Validator owns its cache, instances are independent.
type Validator struct {
	results *cache.Store
	logger  *logging.Logger
}

func New(cacheTTL time.Duration, logger *logging.Logger) *Validator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Validator{
		results: cache.NewStore(cacheTTL),
		logger:  logger,
	}
}

// Validate runs the full rule set over one canonical match.
func (v *Validator) Validate(m match.Match) Result {
	key := fingerprint(m)
	if key != "" {
		if cached, ok := v.results.Get(context.Background(), key); ok {
			if res, ok := cached.(Result); ok {
				return res
			}
		}
	}

	res := evaluate(m)

	if key != "" {
		v.results.Set(context.Background(), key, res)
	}
	return res
}

// ValidateLiveUpdate validates the update snapshot and additionally checks
// the status transition and score monotonicity against the previous one.
// Pair results are never cached: the pair fingerprint churns every snapshot.
func (v *Validator) ValidateLiveUpdate(prev, next match.Match) Result {
	r := &report{}
	evaluateInto(r, next)
	checkTransition(r, prev, next)
	checkMonotonicity(r, prev.Score, next.Score)
	return r.result()
}

// ClearCache drops all cached results, for tests and explicit teardown.
func (v *Validator) ClearCache() {
	v.results.Clear(context.Background())
}

func evaluate(m match.Match) Result {
	r := &report{}
	evaluateInto(r, m)
	return r.result()
}

// fingerprint combines the record identity with its mutable fields so cache
// entries die with the data they describe.
func fingerprint(m match.Match) string {
	scorePart := "nil"
	if m.Score != nil {
		if encoded, err := sonic.MarshalString(m.Score); err == nil {
			scorePart = encoded
		}
	}
	return m.ID + "|" + string(m.Status) + "|" + m.StartTime + "|" + m.EndTime + "|" + scorePart
}
