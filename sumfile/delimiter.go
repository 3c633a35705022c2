package sumfile

import (
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// Delimiters in order of preference when several are consistent with the
// sample. Colons are never chosen because markers such as 1:123_A/C contain
// one on every line.
var preferredDelimiters = []string{"\t", ",", ";", "|"}

// DetermineDelimiter returns the most likely field delimiter for a sample of
// lines. When no character splits every line consistently, tab is assumed if
// the sample contains one, and runs of whitespace (" ") otherwise, which is
// how PLINK and REGENIE align their output.
func DetermineDelimiter(r io.Reader) string {
	var sample strings.Builder
	if _, err := io.Copy(&sample, r); err != nil {
		return "\t"
	}

	d := detector.New()
	candidates := d.DetectDelimiter(strings.NewReader(sample.String()), '"')

	for _, want := range preferredDelimiters {
		for _, got := range candidates {
			if got == want {
				return want
			}
		}
	}

	if strings.Contains(sample.String(), "\t") {
		return "\t"
	}

	return " "
}

// DelimiterByName translates a delimiter given on the command line. The names
// tab, comma, space and whitespace are understood, as is an escaped \t. Any
// other value is used as is, and the empty string means "detect".
func DelimiterByName(name string) string {
	switch strings.ToLower(name) {
	case "tab", `\t`:
		return "\t"
	case "comma":
		return ","
	case "space", "whitespace":
		return " "
	}

	return name
}
