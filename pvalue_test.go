package sumstats

import (
	"errors"
	"math"
	"testing"
)

func TestParsePvalueToLog(t *testing.T) {
	for _, v := range []struct {
		Token    string
		IsNegLog bool
		Expected float64
	}{
		{"0.387461577915637", false, 0.41177135722616476},
		{"7.12493e-07", false, 6.147219398093217},
		{"1", false, 0},
		{"0.1", false, 1},
		{"7.3", true, 7.3},
		{"0.5", true, 0.5},
		{"-0.2", true, -0.2},
		{" 1e-5 ", false, 5},
	} {
		got, err := ParsePvalueToLog(v.Token, v.IsNegLog)
		if err != nil {
			t.Errorf("%q: %v", v.Token, err)
			continue
		}
		if math.Abs(got-v.Expected) > 1e-12 {
			t.Errorf("%q: expected %v, got %v", v.Token, v.Expected, got)
		}
	}
}

func TestParsePvalueZero(t *testing.T) {
	for _, token := range []string{"0", "0.0", "0e0", "-0", "0.000e-10"} {
		got, err := ParsePvalueToLog(token, false)
		if err != nil {
			t.Errorf("%q: %v", token, err)
			continue
		}
		if !math.IsInf(got, 1) {
			t.Errorf("%q: expected +Inf, got %v", token, got)
		}
	}
}

func TestParsePvalueUnderflow(t *testing.T) {
	for _, v := range []struct {
		Token    string
		Expected float64
	}{
		{"1.2e-400", 400 - math.Log10(1.2)},
		{"1e-500", 500},
		{"5E-324000", 324000 - math.Log10(5)},
	} {
		got, err := ParsePvalueToLog(v.Token, false)
		if err != nil {
			t.Errorf("%q: %v", v.Token, err)
			continue
		}
		if math.IsInf(got, 0) {
			t.Errorf("%q: underflow was not recovered", v.Token)
		}
		if math.Abs(got-v.Expected) > 1e-9 {
			t.Errorf("%q: expected %v, got %v", v.Token, v.Expected, got)
		}
	}
}

func TestParsePvalueOutOfRange(t *testing.T) {
	for _, token := range []string{"-0.1", "1.0001", "100"} {
		_, err := ParsePvalueToLog(token, false)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("%q: expected a RangeError, got %v", token, err)
		}
	}

	// Log p-values are not restricted to [0,1]
	if _, err := ParsePvalueToLog("100", true); err != nil {
		t.Error(err)
	}
}

func TestParsePvalueMissingAndInvalid(t *testing.T) {
	for _, token := range []string{"", "NA", ".", "nan", "None"} {
		if _, err := ParsePvalueToLog(token, false); !errors.Is(err, ErrMissingValue) {
			t.Errorf("%q: expected ErrMissingValue, got %v", token, err)
		}
	}

	for _, token := range []string{"abc", "NAN", "0.5x"} {
		_, err := ParsePvalueToLog(token, false)
		var numErr *NumberError
		if !errors.As(err, &numErr) {
			t.Errorf("%q: expected a NumberError, got %v", token, err)
		}
	}

	if _, err := ParsePvalueToLog("-inf", true); err == nil {
		t.Error("Expected -Inf to be rejected as a -log10 p-value")
	}
}

func TestIsNumeric(t *testing.T) {
	for _, v := range []struct {
		Token    string
		Expected bool
	}{
		{"100", true},
		{"1e-400", true},
		{"-3.5", true},
		{".", true},
		{"NA", true},
		{"", true},
		{" ", true},
		{" NA ", true},
		{" 0.5\r", true},
		{"X", false},
		{"rs123", false},
		{"1:100", false},
	} {
		if got := IsNumeric(v.Token); got != v.Expected {
			t.Errorf("%q: expected %v, got %v", v.Token, v.Expected, got)
		}
	}
}
