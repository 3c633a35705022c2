package sumstats

import "gopkg.in/guregu/null.v3"

// missingValues are the tokens that GWAS tools emit when a value was not
// computed. Membership is case-sensitive.
var missingValues = map[string]struct{}{
	"":     {},
	".":    {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"nan":  {},
	"-nan": {},
	"NaN":  {},
	"-NaN": {},
	"null": {},
	"NULL": {},
	"None": {},
}

// IsMissing reports whether token is one of the recognized placeholders for a
// value that was not provided. A missing value is never equivalent to zero.
func IsMissing(token string) bool {
	_, exists := missingValues[token]
	return exists
}

// IsMissingValue is IsMissing for values that may themselves be null.
func IsMissingValue(v null.String) bool {
	return !v.Valid || IsMissing(v.String)
}

// MissingTokens returns the recognized missing-value tokens.
func MissingTokens() []string {
	out := make([]string, 0, len(missingValues))
	for k := range missingValues {
		out = append(out, k)
	}

	return out
}

// MissingToNull converts every missing token in values to a null string.
func MissingToNull(values []string) []null.String {
	out := make([]null.String, len(values))
	for i, v := range values {
		out[i] = null.NewString(v, !IsMissing(v))
	}

	return out
}
