package sumstats

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"gopkg.in/guregu/null.v3"
)

const saigeSample = "chr1\t76792\tchr1:76792:A:C\tA\tC\t57\t0.00168639048933983\t16900\t0.573681678183941\t0.663806747906141\t1.30193005902619\t0.387461577915637\t0.387461577915637\t1\t2.2694293866027\t2.41152256615949"

const rvtestsSample = "1\t761893\tG\tT\t19292\t2.59624e-05:0.000655308:0\t1:1:0\t0.998289:0.996068:0.998381\t1:1:1\t19258:759:18499\t1:1:0\t0:0:0\t1.33113\t0.268484\t18.4664\t7.12493e-07"

func TestParseSAIGE(t *testing.T) {
	parser, err := NewParser(ColumnMapping{Location: ByMarker{MarkerCol: 2}, PvalueCol: 11})
	if err != nil {
		t.Fatal(err)
	}

	rec, err := parser.Parse(saigeSample)
	if err != nil {
		t.Fatal(err)
	}

	if rec.Chromosome != "1" ||
		rec.Position != 76792 ||
		rec.RefAllele != null.StringFrom("A") ||
		rec.AltAllele != null.StringFrom("C") ||
		rec.Variant != "1:76792_A/C" ||
		math.Abs(rec.LogPvalue-0.41177135722616476) > 1e-12 {
		t.Errorf("Mismatch: %+v", rec)
	}

	if rec.Beta.Valid || rec.StderrBeta.Valid || rec.AltAlleleFreq.Valid {
		t.Errorf("Unconfigured columns should be null: %+v", rec)
	}
}

func TestParseRVTESTS(t *testing.T) {
	parser, err := NewParser(Presets["rvtests"])
	if err != nil {
		t.Fatal(err)
	}

	rec, err := parser.Parse(rvtestsSample)
	if err != nil {
		t.Fatal(err)
	}

	if rec.Chromosome != "1" ||
		rec.Position != 761893 ||
		rec.RefAllele.String != "G" ||
		rec.AltAllele.String != "T" ||
		rec.Variant != "1:761893_G/T" ||
		math.Abs(rec.LogPvalue-6.147219398093217) > 1e-12 {
		t.Errorf("Mismatch: %+v", rec)
	}
}

func TestParseOptionalColumns(t *testing.T) {
	m := ColumnMapping{
		Location:      ByCoordinates{ChromCol: 0, PosCol: 1, RefCol: null.IntFrom(2), AltCol: null.IntFrom(3)},
		PvalueCol:     4,
		Delimiter:     ",",
		BetaCol:       null.IntFrom(5),
		StderrBetaCol: null.IntFrom(6),
		Frequency:     ByCount{CountCol: 7, NSamplesCol: 8},
		Effect:        RefEffect,
	}
	parser, err := NewParser(m)
	if err != nil {
		t.Fatal(err)
	}

	rec, err := parser.Parse("chrX,500,A,G,0.01,-0.5,NA,20,100\n")
	if err != nil {
		t.Fatal(err)
	}

	if rec.Chromosome != "X" ||
		rec.Position != 500 ||
		rec.Variant != "X:500_A/G" ||
		math.Abs(rec.LogPvalue-2) > 1e-12 ||
		rec.Beta != null.FloatFrom(-0.5) ||
		rec.StderrBeta.Valid ||
		!rec.AltAlleleFreq.Valid ||
		math.Abs(rec.AltAlleleFreq.Float64-0.9) > 1e-12 {
		t.Errorf("Mismatch: %+v", rec)
	}
}

func TestParseCoordinatesWithoutAlleles(t *testing.T) {
	parser, err := NewParser(ColumnMapping{Location: ByCoordinates{ChromCol: 0, PosCol: 1}, PvalueCol: 2})
	if err != nil {
		t.Fatal(err)
	}

	rec, err := parser.Parse("2\t1000\t0.5")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Variant != "2:1000" || rec.RefAllele.Valid || rec.AltAllele.Valid {
		t.Errorf("Mismatch: %+v", rec)
	}
}

func TestParseMissingAlleleDropsSuffix(t *testing.T) {
	parser, err := NewParser(Presets["rvtests"])
	if err != nil {
		t.Fatal(err)
	}

	line := strings.Replace(rvtestsSample, "\tT\t", "\tNA\t", 1)
	rec, err := parser.Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Variant != "1:761893" || rec.AltAllele.Valid || !rec.RefAllele.Valid {
		t.Errorf("Mismatch: %+v", rec)
	}
}

func TestParseWhitespaceDelimited(t *testing.T) {
	parser, err := NewParser(Presets["plink"])
	if err != nil {
		t.Fatal(err)
	}

	rec, err := parser.Parse("   1   1:1000_A/G   1000    G   0.1  0.2   A   3.2   0.0001   1.1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Variant != "1:1000_A/G" || math.Abs(rec.LogPvalue-4) > 1e-12 {
		t.Errorf("Mismatch: %+v", rec)
	}
}

func TestParseErrors(t *testing.T) {
	parser, err := NewParser(ColumnMapping{Location: ByMarker{MarkerCol: 0}, PvalueCol: 1})
	if err != nil {
		t.Fatal(err)
	}

	var markerErr *MarkerFormatError
	if _, err := parser.Parse("rs1234\t0.5"); !errors.As(err, &markerErr) {
		t.Errorf("Expected a MarkerFormatError, got %v", err)
	}

	var rangeErr *RangeError
	if _, err := parser.Parse("1:100\t1.5"); !errors.As(err, &rangeErr) {
		t.Errorf("Expected a RangeError, got %v", err)
	}

	var colErr *ColumnError
	if _, err := parser.Parse("1:100"); !errors.As(err, &colErr) {
		t.Errorf("Expected a ColumnError, got %v", err)
	}

	if _, err := parser.Parse("1:100\tNA"); !errors.Is(err, ErrMissingValue) {
		t.Errorf("Expected ErrMissingValue, got %v", err)
	}

	var numErr *NumberError
	if _, err := parser.Parse("1:100\tabc"); !errors.As(err, &numErr) {
		t.Errorf("Expected a NumberError, got %v", err)
	}
}

func TestNewParserValidates(t *testing.T) {
	for _, m := range []ColumnMapping{
		{PvalueCol: 1},
		{Location: ByMarker{MarkerCol: -1}, PvalueCol: 1},
		{Location: ByCoordinates{ChromCol: 0, PosCol: 1, RefCol: null.IntFrom(2)}, PvalueCol: 3},
		{Location: ByMarker{MarkerCol: 0}, PvalueCol: -2},
		{Location: ByMarker{MarkerCol: 0}, PvalueCol: 1, Frequency: ByCount{CountCol: 2, NSamplesCol: -1}},
	} {
		_, err := NewParser(m)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%+v: expected a ConfigurationError, got %v", m, err)
		}
	}
}

func TestParseIsIdempotent(t *testing.T) {
	parser, err := NewParser(Presets["saige"])
	if err != nil {
		t.Fatal(err)
	}

	first, err := parser.Parse(saigeSample)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]AssociationRecord, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = parser.Parse(saigeSample)
		}(i)
	}
	wg.Wait()

	for i, rec := range results {
		if rec != first {
			t.Errorf("Result %d differs: %+v vs %+v", i, rec, first)
		}
	}
}

func TestVariantRoundTrip(t *testing.T) {
	parser, err := NewParser(Presets["rvtests"])
	if err != nil {
		t.Fatal(err)
	}

	rec, err := parser.Parse(rvtestsSample)
	if err != nil {
		t.Fatal(err)
	}

	if rec.Variant != FormatVariant(rec.Chromosome, rec.Position, rec.RefAllele, rec.AltAllele) {
		t.Errorf("Variant %s does not round-trip", rec.Variant)
	}
}

func TestParseMissingAllelesMatchMarker(t *testing.T) {
	byCoordinates, err := NewParser(ColumnMapping{Location: coordinates(0, 1, 2, 3), PvalueCol: 4})
	if err != nil {
		t.Fatal(err)
	}
	byMarker, err := NewParser(ColumnMapping{Location: ByMarker{MarkerCol: 0}, PvalueCol: 1})
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{"1\t5\tNA\t.\t0.5", "1\t5\t\tN/A\t0.5"} {
		got, err := byCoordinates.Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		expected, err := byMarker.Parse("1:5\t0.5")
		if err != nil {
			t.Fatal(err)
		}
		if got != expected {
			t.Errorf("%q: expected %+v, got %+v", line, expected, got)
		}
		if got.RefAllele.String != "" || got.AltAllele.String != "" {
			t.Errorf("%q: missing alleles should be empty, got %+v", line, got)
		}
	}
}
