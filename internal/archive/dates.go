package archive

import (
	"time"

	crerr "github.com/cockroachdb/errors"
)

const (
	compactDateLayout = "20060102"
	isoDateLayout     = "2006-01-02"
)

// ParseCompactDate parses the archive's 8-digit YYYYMMDD representation.
func ParseCompactDate(value string) (time.Time, error) {
	ts, err := time.Parse(compactDateLayout, value)
	if err != nil {
		return time.Time{}, crerr.Wrapf(err, "parse compact date %q", value)
	}
	return ts, nil
}

// FormatCompactDate renders a date in the 8-digit archive form.
func FormatCompactDate(ts time.Time) string {
	return ts.Format(compactDateLayout)
}

// CompactToISO converts YYYYMMDD into the hyphenated YYYY-MM-DD form.
func CompactToISO(value string) (string, error) {
	ts, err := ParseCompactDate(value)
	if err != nil {
		return "", err
	}
	return ts.Format(isoDateLayout), nil
}

// ISOToCompact converts YYYY-MM-DD into the 8-digit archive form.
func ISOToCompact(value string) (string, error) {
	ts, err := time.Parse(isoDateLayout, value)
	if err != nil {
		return "", crerr.Wrapf(err, "parse iso date %q", value)
	}
	return ts.Format(compactDateLayout), nil
}
