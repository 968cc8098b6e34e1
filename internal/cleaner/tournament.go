package cleaner

import (
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/normalize"
)

// nameRepairs fixes known truncations and typos that leak from the feed,
// applied case-insensitively in order. The classic one is the dropped
// leading letter of "Tournament".
var nameRepairs = []struct {
	broken string
	fixed  string
}{
	{"ournament", "Tournament"},
	{"hampionship", "Championship"},
	{"nternational", "International"},
	{"xhibition", "Exhibition"},
}

func (c *Cleaner) cleanTournament(raw *match.RawTournament) match.Tournament {
	if raw == nil {
		raw = &match.RawTournament{}
	}

	name := repairTournamentName(strings.TrimSpace(raw.Name))

	category := normalize.Category(raw.Category)
	if category == match.CategoryUnknown {
		category = normalize.Category(name)
	}

	return match.Tournament{
		ID:       strings.TrimSpace(raw.ID),
		Name:     name,
		Category: category,
		Surface:  normalize.Surface(raw.Surface),
		Location: c.cleanLocation(raw),
		Tier:     strings.TrimSpace(raw.Tier),
	}
}

func repairTournamentName(name string) string {
	if name == "" {
		return "Unknown Tournament"
	}

	for _, repair := range nameRepairs {
		lower := strings.ToLower(name)
		target := strings.ToLower(repair.broken)
		idx := strings.Index(lower, target)
		if idx < 0 {
			continue
		}
		// Only repair a truncation: the broken form must not already be
		// preceded by its missing leading letter.
		if idx > 0 && strings.EqualFold(string(repair.fixed[0]), string(name[idx-1])) {
			continue
		}
		name = name[:idx] + repair.fixed + name[idx+len(repair.broken):]
	}

	if looksTruncated(name) && !normalize.HasCategoryKeyword(name) {
		name += " Tournament"
	}
	return name
}

func looksTruncated(name string) bool {
	if len(name) < minPlausibleTournamentName {
		return true
	}
	return strings.HasSuffix(name, "-") || strings.HasSuffix(name, ",")
}

// cleanLocation prefers rebuilding "City, Country" from the split fields.
// A location string that starts with a comma or bullet is a malformed
// composite artifact and gets the fallback; a trailing "• <surface>" suffix
// leaked from upstream is stripped.
func (c *Cleaner) cleanLocation(raw *match.RawTournament) string {
	city := strings.TrimSpace(raw.City)
	country := strings.TrimSpace(raw.Country)
	if city != "" && country != "" {
		return city + ", " + country
	}
	if city != "" {
		return city
	}

	location := strings.TrimSpace(raw.Location)
	if location == "" || strings.HasPrefix(location, ",") || strings.HasPrefix(location, "•") {
		return c.opts.DefaultLocation
	}

	if idx := strings.Index(location, "•"); idx >= 0 {
		suffix := strings.TrimSpace(location[idx+len("•"):])
		if normalize.KnownSurface(suffix) {
			location = strings.TrimSpace(location[:idx])
		}
	}
	location = strings.TrimRight(strings.TrimSpace(location), ",")
	if location == "" {
		return c.opts.DefaultLocation
	}
	return location
}
