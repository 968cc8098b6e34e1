package validate

// Quality is the four-level summary tier of a validation result.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// Result is the outcome of validating one canonical match. Errors always
// imply Valid=false; warnings never do.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Quality  Quality  `json:"quality"`
}

// report accumulates rule violations in evaluation order.
type report struct {
	errors   []string
	warnings []string
}

func (r *report) err(msg string) {
	r.errors = append(r.errors, msg)
}

func (r *report) warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

func (r *report) result() Result {
	out := Result{
		Valid:    len(r.errors) == 0,
		Errors:   r.errors,
		Warnings: r.warnings,
	}
	out.Quality = deriveQuality(out)
	return out
}

func deriveQuality(res Result) Quality {
	switch {
	case len(res.Errors) > 0:
		return QualityPoor
	case len(res.Warnings) == 0:
		return QualityExcellent
	case len(res.Warnings) <= 2:
		return QualityGood
	default:
		return QualityFair
	}
}
