package normalize

import (
	"strings"

	"github.com/courtsight/courtsight/internal/domain/match"
)

// invalidCodeSentinels are code values the feeds emit when they have nothing.
// Any value containing flag-emoji bytes is also treated as a sentinel, see
// IsInvalidCodeSentinel.
var invalidCodeSentinels = map[string]struct{}{
	"":     {},
	"-":    {},
	"--":   {},
	"n/a":  {},
	"na":   {},
	"unk":  {},
	"un":   {},
	"xx":   {},
	"null": {},
}

// countryByName maps free-text nationality to an ISO 3166-1 alpha-2 code.
// The table covers the nationalities that actually occur on tour; the
// cleaner falls back to match.UnknownCountry for anything else.
var countryByName = map[string]string{
	"argentina":      "AR",
	"australia":      "AU",
	"austria":        "AT",
	"belarus":        "BY",
	"belgium":        "BE",
	"bolivia":        "BO",
	"bosnia":         "BA",
	"brazil":         "BR",
	"bulgaria":       "BG",
	"canada":         "CA",
	"chile":          "CL",
	"china":          "CN",
	"colombia":       "CO",
	"croatia":        "HR",
	"cyprus":         "CY",
	"czech republic": "CZ",
	"czechia":        "CZ",
	"denmark":        "DK",
	"ecuador":        "EC",
	"egypt":          "EG",
	"estonia":        "EE",
	"finland":        "FI",
	"france":         "FR",
	"georgia":        "GE",
	"germany":        "DE",
	"great britain":  "GB",
	"greece":         "GR",
	"hungary":        "HU",
	"india":          "IN",
	"indonesia":      "ID",
	"israel":         "IL",
	"italy":          "IT",
	"japan":          "JP",
	"kazakhstan":     "KZ",
	"latvia":         "LV",
	"lithuania":      "LT",
	"mexico":         "MX",
	"moldova":        "MD",
	"monaco":         "MC",
	"netherlands":    "NL",
	"new zealand":    "NZ",
	"norway":         "NO",
	"peru":           "PE",
	"poland":         "PL",
	"portugal":       "PT",
	"romania":        "RO",
	"russia":         "RU",
	"serbia":         "RS",
	"slovakia":       "SK",
	"slovenia":       "SI",
	"south africa":   "ZA",
	"south korea":    "KR",
	"spain":          "ES",
	"sweden":         "SE",
	"switzerland":    "CH",
	"taiwan":         "TW",
	"thailand":       "TH",
	"tunisia":        "TN",
	"turkey":         "TR",
	"ukraine":        "UA",
	"united kingdom": "GB",
	"united states":  "US",
	"usa":            "US",
	"uruguay":        "UY",
	"uzbekistan":     "UZ",
	"venezuela":      "VE",
}

// iocToISO maps the 3-letter IOC codes the historical archive uses onto
// ISO alpha-2. Only tour-relevant entries are listed.
var iocToISO = map[string]string{
	"ARG": "AR", "AUS": "AU", "AUT": "AT", "BEL": "BE", "BLR": "BY",
	"BIH": "BA", "BOL": "BO", "BRA": "BR", "BUL": "BG", "CAN": "CA",
	"CHI": "CL", "CHN": "CN", "COL": "CO", "CRO": "HR", "CYP": "CY",
	"CZE": "CZ", "DEN": "DK", "ECU": "EC", "EGY": "EG", "ESA": "SV",
	"ESP": "ES", "EST": "EE", "FIN": "FI", "FRA": "FR", "GBR": "GB",
	"GEO": "GE", "GER": "DE", "GRE": "GR", "HUN": "HU", "INA": "ID",
	"IND": "IN", "ISR": "IL", "ITA": "IT", "JPN": "JP", "KAZ": "KZ",
	"KOR": "KR", "LAT": "LV", "LTU": "LT", "MDA": "MD", "MEX": "MX",
	"MON": "MC", "NED": "NL", "NOR": "NO", "NZL": "NZ", "PER": "PE",
	"POL": "PL", "POR": "PT", "ROU": "RO", "RSA": "ZA", "RUS": "RU",
	"SRB": "RS", "SUI": "CH", "SVK": "SK", "SLO": "SI", "SWE": "SE",
	"THA": "TH", "TPE": "TW", "TUN": "TN", "TUR": "TR", "UKR": "UA",
	"URU": "UY", "USA": "US", "UZB": "UZ", "VEN": "VE",
}

// IsCountryCode reports whether value has the exact canonical shape:
// two uppercase ASCII letters.
func IsCountryCode(value string) bool {
	if len(value) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if value[i] < 'A' || value[i] > 'Z' {
			return false
		}
	}
	return true
}

// IsInvalidCodeSentinel reports whether a supplied code is one of the known
// junk values, including anything carrying flag-emoji bytes.
func IsInvalidCodeSentinel(value string) bool {
	if containsFlagEmoji(value) {
		return true
	}
	_, ok := invalidCodeSentinels[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// CountryForNationality derives an alpha-2 code from free-text nationality.
func CountryForNationality(nationality string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(nationality))
	if key == "" {
		return "", false
	}
	if code, ok := countryByName[key]; ok {
		return code, true
	}
	return "", false
}

// CountryForIOC converts a 3-letter IOC archive code to alpha-2.
func CountryForIOC(code string) (string, bool) {
	iso, ok := iocToISO[strings.ToUpper(strings.TrimSpace(code))]
	return iso, ok
}

// ResolveCountry runs the full inference cascade: exact 2-letter shape first,
// then sentinel rejection plus nationality lookup, then IOC, then the
// explicit unknown sentinel. Never returns "".
func ResolveCountry(code, nationality string) string {
	trimmed := strings.TrimSpace(code)
	if IsCountryCode(trimmed) && trimmed != match.UnknownCountry && trimmed != "UN" {
		return trimmed
	}
	if !IsInvalidCodeSentinel(trimmed) {
		if iso, ok := CountryForIOC(trimmed); ok {
			return iso
		}
	}
	if iso, ok := CountryForNationality(nationality); ok {
		return iso
	}
	return match.UnknownCountry
}

func containsFlagEmoji(value string) bool {
	for _, r := range value {
		// Regional indicator symbols, the building blocks of flag emoji.
		if r >= 0x1F1E6 && r <= 0x1F1FF {
			return true
		}
	}
	return false
}
