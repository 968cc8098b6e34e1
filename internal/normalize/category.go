package normalize

import (
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
)

// categoryKeywords is checked in declaration order so the more specific
// tokens win over the bare tour names.
var categoryKeywords = []struct {
	token    string
	category match.Category
}{
	{"challenger", match.CategoryChallenger},
	{"itf", match.CategoryITF},
	{"futures", match.CategoryITF},
	{"exhibition", match.CategoryExhibition},
	{"exho", match.CategoryExhibition},
	{"wta", match.CategoryWTA},
	{"atp", match.CategoryATP},
	{"grand slam", match.CategoryATP},
	{"masters", match.CategoryATP},
}

// Category infers a tournament category from free text (category field or
// tournament name).
func Category(value string) match.Category {
	text := strings.ToLower(strings.TrimSpace(value))
	if text == "" {
		return match.CategoryUnknown
	}
	for _, kw := range categoryKeywords {
		if strings.Contains(text, kw.token) {
			return kw.category
		}
	}
	return match.CategoryUnknown
}

// HasCategoryKeyword reports whether the text carries any recognizable
// category token. The cleaner uses it to decide whether a short tournament
// name is a bare fragment that needs a qualifier appended.
func HasCategoryKeyword(value string) bool {
	return Category(value) != match.CategoryUnknown
}
