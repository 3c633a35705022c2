package sumstats

import "testing"

func TestParseMarkerChrPos(t *testing.T) {
	for _, v := range []string{"1:23", "chr1:23", "X:100", "chrX:100", "10_12345", "2-300"} {
		m, err := ParseMarker(v)
		if err != nil {
			t.Errorf("%s: %v", v, err)
			continue
		}
		if m.Ref.Valid || m.Alt.Valid {
			t.Errorf("%s: expected null ref and alt, got %+v", v, m)
		}
	}

	m, _ := ParseMarker("chr1:23")
	if m.Chromosome != "1" || m.Position != 23 {
		t.Errorf("Mismatch: %+v", m)
	}
}

func TestParseMarkerRefAlt(t *testing.T) {
	for _, v := range []struct {
		Marker     string
		Chromosome string
		Position   uint64
		Ref        string
		Alt        string
		Suffix     string
	}{
		{"1:23_A/C", "1", 23, "A", "C", ""},
		{"chr1:23_A/C", "1", 23, "A", "C", ""},
		{"1:23_A/C_gibberish", "1", 23, "A", "C", "gibberish"},
		{"chr1:76792:A:C", "1", 76792, "A", "C", ""},
		{"20:1610894_G/A_Synonymous:SIRPG", "20", 1610894, "G", "A", "Synonymous:SIRPG"},
		{"chr1-281876-AC-A", "1", 281876, "AC", "A", ""},
		{"X:100_AT|A", "X", 100, "AT", "A", ""},
		{"2_300_G_T", "2", 300, "G", "T", ""},
	} {
		m, err := ParseMarker(v.Marker)
		if err != nil {
			t.Errorf("%s: %v", v.Marker, err)
			continue
		}
		if m.Chromosome != v.Chromosome ||
			m.Position != v.Position ||
			m.Ref.String != v.Ref ||
			m.Alt.String != v.Alt ||
			m.Suffix != v.Suffix {
			t.Errorf("%s: Mismatch %+v", v.Marker, m)
		}
	}
}

func TestParseMarkerIsAnchored(t *testing.T) {
	for _, v := range []string{"sentence_with_1:23_A/C", "rs75333668", "", "1:abc"} {
		_, err := ParseMarker(v)
		if _, ok := err.(*MarkerFormatError); !ok {
			t.Errorf("%q: expected a MarkerFormatError, got %v", v, err)
		}
		if _, ok := MatchMarker(v); ok {
			t.Errorf("%q: expected no match", v)
		}
	}
}

func TestMarkerVariant(t *testing.T) {
	m, _ := ParseMarker("chr1:76792:A:C")
	if v := m.Variant(); v != "1:76792_A/C" {
		t.Errorf("Got %s", v)
	}

	m, _ = ParseMarker("1:5_A")
	if v := m.Variant(); v != "1:5" {
		t.Errorf("A marker with only one allele should not carry an allele suffix, got %s", v)
	}
}
