package sumstats

import (
	"strings"

	"gopkg.in/guregu/null.v3"
)

// FrequencyInput holds the raw tokens from which an allele frequency is
// derived. Exactly one of Freq or AlleleCount may be supplied; AlleleCount
// requires NSamples. A token that is not valid counts as not supplied.
type FrequencyInput struct {
	Freq        null.String
	AlleleCount null.String
	NSamples    null.String

	// IsAltEffect is false when the frequency describes the ref allele.
	IsAltEffect bool
}

// ParseAlleleFrequency returns the alt allele frequency described by in. A
// missing token yields a null result rather than an error. Counts are assumed
// to come from diploid samples.
func ParseAlleleFrequency(in FrequencyInput) (null.Float, error) {
	var result float64

	switch {
	case in.Freq.Valid && in.AlleleCount.Valid:
		return null.Float{}, &ConfigurationError{Reason: "allele frequency and allele count are mutually exclusive"}
	case in.Freq.Valid:
		if IsMissing(strings.TrimSpace(in.Freq.String)) {
			return null.Float{}, nil
		}
		freq, err := parseNumber("allele frequency", strings.TrimSpace(in.Freq.String))
		if err != nil {
			return null.Float{}, err
		}
		result = freq
	case in.AlleleCount.Valid:
		if !in.NSamples.Valid {
			return null.Float{}, &ConfigurationError{Reason: "allele count requires the number of samples"}
		}
		count, n := strings.TrimSpace(in.AlleleCount.String), strings.TrimSpace(in.NSamples.String)
		if IsMissing(count) || IsMissing(n) {
			return null.Float{}, nil
		}
		ac, err := parseNumber("allele count", count)
		if err != nil {
			return null.Float{}, err
		}
		ns, err := parseNumber("number of samples", n)
		if err != nil {
			return null.Float{}, err
		}
		if ns <= 0 {
			return null.Float{}, &RangeError{Field: "number of samples", Value: ns}
		}
		result = ac / ns / 2
	default:
		return null.Float{}, &ConfigurationError{Reason: "either allele frequency or allele count must be supplied"}
	}

	if !(result >= 0 && result <= 1) {
		return null.Float{}, &RangeError{Field: "allele frequency", Value: result}
	}

	if !in.IsAltEffect {
		result = 1 - result
	}

	return null.FloatFrom(result), nil
}
