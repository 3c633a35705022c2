package sumstats

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// underflowPattern splits a p-value string into mantissa, exponent marker and
// exponent. It is only consulted for tokens that evaluate to exactly zero.
var underflowPattern = regexp.MustCompile(`([\d.\-]+)([\sxeE]*)([0-9\-]*)`)

// ParsePvalueToLog converts a p-value token into -log10(p).
//
// If isNegLog is set, the token already holds -log10(p) and is returned as-is
// after being validated as a number. Otherwise the token must be a p-value in
// [0,1]. The literal "0" yields +Inf. Any other token that evaluates to zero
// has underflowed the float64 range, and its -log10 is recovered from the
// string representation instead.
func ParsePvalueToLog(token string, isNegLog bool) (float64, error) {
	token = strings.TrimSpace(token)
	if IsMissing(token) {
		return math.NaN(), ErrMissingValue
	}

	val, err := parseNumber("p-value", token)
	if err != nil {
		return math.NaN(), err
	}

	if isNegLog {
		if math.IsInf(val, -1) {
			return math.NaN(), &RangeError{Field: "-log10 p-value", Value: val}
		}
		return val, nil
	}

	if val < 0 || val > 1 {
		return math.NaN(), &RangeError{Field: "p-value", Value: val}
	}

	if val == 0 {
		if token == "0" {
			return math.Inf(1), nil
		}
		return parseUnderflowPvalue(token)
	}

	return -math.Log10(val), nil
}

func parseUnderflowPvalue(token string) (float64, error) {
	parts := underflowPattern.FindStringSubmatch(token)
	if parts == nil {
		return math.NaN(), &NumberError{Field: "p-value", Token: token}
	}

	mantissa, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return math.NaN(), &NumberError{Field: "p-value", Token: token, Err: err}
	}
	if mantissa == 0 {
		return math.Inf(1), nil
	}
	if mantissa < 0 {
		return math.NaN(), &RangeError{Field: "p-value", Value: mantissa}
	}

	// A missing exponent is read as 0.
	exponent := 0.0
	if parts[3] != "" {
		exponent, err = strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return math.NaN(), &NumberError{Field: "p-value", Token: token, Err: err}
		}
	}

	return -(math.Log10(mantissa) + exponent), nil
}

// parseNumber parses a float64, rejecting NaN. Values that overflow are
// returned as ±Inf; values that underflow are returned as 0.
func parseNumber(field, token string) (float64, error) {
	val, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), &NumberError{Field: field, Token: token, Err: err}
	}
	if math.IsNaN(val) {
		return math.NaN(), &NumberError{Field: field, Token: token}
	}

	return val, nil
}

// IsNumeric reports whether an unparsed token is either missing or a number.
func IsNumeric(token string) bool {
	token = strings.TrimSpace(token)
	if IsMissing(token) {
		return true
	}

	_, err := strconv.ParseFloat(token, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
