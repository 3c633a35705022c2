package sumfile

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/carbocation/sumstats"
	"gopkg.in/guregu/null.v3"
)

func TestTSVRoundTrip(t *testing.T) {
	records := []sumstats.AssociationRecord{
		{
			Chromosome:    "1",
			Position:      100,
			RefAllele:     null.StringFrom("A"),
			AltAllele:     null.StringFrom("C"),
			LogPvalue:     2.5,
			Beta:          null.FloatFrom(-0.25),
			StderrBeta:    null.FloatFrom(0.1),
			AltAlleleFreq: null.FloatFrom(0.3),
		},
		{
			Chromosome: "X",
			Position:   2000,
			LogPvalue:  math.Inf(1),
		},
	}

	var buf bytes.Buffer
	w := NewTSVWriter(&buf)
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a header and 2 rows, got %q", buf.String())
	}
	if lines[0] != strings.Join(TSVHeader, "\t") {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if lines[2] != "X\t2000\t.\t.\t+Inf\t.\t.\t." {
		t.Errorf("Unexpected row %q", lines[2])
	}

	m := sumstats.Presets["standard"]
	m.Frequency = sumstats.ByFrequency{FreqCol: 7}
	parser, err := sumstats.NewParser(m)
	if err != nil {
		t.Fatal(err)
	}

	for i, line := range lines[1:] {
		rec, err := parser.Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		expected := records[i]
		expected.Variant = sumstats.FormatVariant(expected.Chromosome, expected.Position, expected.RefAllele, expected.AltAllele)
		if rec != expected {
			t.Errorf("Expected %+v, got %+v", expected, rec)
		}
	}
}

func TestTSVWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTSVWriter(&buf).Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != strings.Join(TSVHeader, "\t")+"\n" {
		t.Errorf("Got %q", buf.String())
	}
}
