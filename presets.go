package sumstats

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Presets maps the name of an analysis tool to the layout of its output.
// Column indices are 0-based.
var Presets = map[string]ColumnMapping{
	"epacts": {
		Location:  ByMarker{MarkerCol: 3},
		PvalueCol: 8,
	},
	// PLINK aligns its columns with runs of spaces.
	"plink": {
		Location:  ByMarker{MarkerCol: 1},
		PvalueCol: 8,
		Delimiter: " ",
	},
	"rvtests": {
		Location:  ByCoordinates{ChromCol: 0, PosCol: 1, RefCol: null.IntFrom(2), AltCol: null.IntFrom(3)},
		PvalueCol: 15,
	},
	// SAIGE columns depend on which options were chosen.
	"saige": {
		Location:  ByMarker{MarkerCol: 2},
		PvalueCol: 11,
	},
	// BOLT-LMM ALLELE1 is the effect allele, so it is read as alt.
	"bolt-lmm": {
		Location:  ByCoordinates{ChromCol: 1, PosCol: 2, RefCol: null.IntFrom(5), AltCol: null.IntFrom(4)},
		PvalueCol: 10,
	},
	// CHROM GENPOS ID ALLELE0 ALLELE1 A1FREQ INFO N TEST BETA SE CHISQ LOG10P
	"regenie": {
		Location:       ByCoordinates{ChromCol: 0, PosCol: 1, RefCol: null.IntFrom(3), AltCol: null.IntFrom(4)},
		PvalueCol:      12,
		IsNegLogPvalue: true,
		Delimiter:      " ",
		BetaCol:        null.IntFrom(9),
		StderrBetaCol:  null.IntFrom(10),
		Frequency:      ByFrequency{FreqCol: 5},
	},
	// chrom pos ref alt log_pvalue beta stderr_beta
	"standard": {
		Location:       ByCoordinates{ChromCol: 0, PosCol: 1, RefCol: null.IntFrom(2), AltCol: null.IntFrom(3)},
		PvalueCol:      4,
		IsNegLogPvalue: true,
		BetaCol:        null.IntFrom(5),
		StderrBetaCol:  null.IntFrom(6),
	},
}

// PresetNames lists the known presets in alphabetical order.
func PresetNames() string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// Preset looks up a preset by name, ignoring case.
func Preset(name string) (ColumnMapping, error) {
	m, exists := Presets[strings.ToLower(name)]
	if !exists {
		return m, fmt.Errorf("preset %s is not found. Valid preset names include: %s", name, PresetNames())
	}

	return m, nil
}
