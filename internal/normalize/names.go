package normalize

import (
	"strings"
	"unicode"
)

// nameSuffixes are comma-separated tokens that are generational suffixes,
// not surnames; "Smith, Jr." must stay as-is.
var nameSuffixes = map[string]struct{}{
	"jr":  {},
	"jr.": {},
	"sr":  {},
	"sr.": {},
	"ii":  {},
	"iii": {},
	"iv":  {},
}

// StripNameArtifacts removes flag emoji, replacement characters and other
// non-name junk the live feed smuggles into player names.
func StripNameArtifacts(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators (flags)
		case r == unicode.ReplacementChar:
		case r == 0x200B || r == 0xFEFF: // zero-width junk
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// IsPlaceholderName reports whether the cleaned text still denotes "no name".
func IsPlaceholderName(name string) bool {
	switch strings.TrimSpace(name) {
	case "", "-", "--", "N/A", "n/a", "TBD", "tbd":
		return true
	default:
		return false
	}
}

// ReorderCommaName converts "Last, First" into "First Last". Names whose
// comma-separated tail is a generational suffix are left untouched.
func ReorderCommaName(name string) string {
	idx := strings.Index(name, ",")
	if idx < 0 {
		return name
	}
	last := strings.TrimSpace(name[:idx])
	first := strings.TrimSpace(name[idx+1:])
	if last == "" || first == "" {
		return name
	}
	if _, suffix := nameSuffixes[strings.ToLower(first)]; suffix {
		return name
	}
	if strings.Contains(first, ",") {
		return name
	}
	return first + " " + last
}

// SurnameToken reduces a display name to a single surname token: the part
// before the comma for "Last, First", else the last whitespace token.
func SurnameToken(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if idx := strings.Index(trimmed, ","); idx > 0 {
		return strings.TrimSpace(trimmed[:idx])
	}
	fields := strings.Fields(trimmed)
	return fields[len(fields)-1]
}
