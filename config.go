package sumstats

import (
	"gopkg.in/guregu/null.v3"
)

// Config is the loosely-typed form of a ColumnMapping, as it arrives from a
// JSON file, a form or command line flags. Column indices are 0-based.
type Config struct {
	MarkerCol      null.Int  `json:"marker_col"`
	ChromCol       null.Int  `json:"chrom_col"`
	PosCol         null.Int  `json:"pos_col"`
	RefCol         null.Int  `json:"ref_col"`
	AltCol         null.Int  `json:"alt_col"`
	PvalueCol      null.Int  `json:"pvalue_col"`
	IsNegLogPvalue bool      `json:"is_neg_log_pvalue"`
	Delimiter      string    `json:"delimiter,omitempty"`
	BetaCol        null.Int  `json:"beta_col"`
	StderrBetaCol  null.Int  `json:"stderr_beta_col"`
	AlleleFreqCol  null.Int  `json:"allele_freq_col"`
	AlleleCountCol null.Int  `json:"allele_count_col"`
	NSamplesCol    null.Int  `json:"n_samples_col"`
	IsAltEffect    null.Bool `json:"is_alt_effect"`
}

// Mapping validates c and converts it into a ColumnMapping.
func (c Config) Mapping() (ColumnMapping, error) {
	m := ColumnMapping{
		IsNegLogPvalue: c.IsNegLogPvalue,
		Delimiter:      c.Delimiter,
		BetaCol:        c.BetaCol,
		StderrBetaCol:  c.StderrBetaCol,
	}

	hasCoordinates := c.ChromCol.Valid || c.PosCol.Valid || c.RefCol.Valid || c.AltCol.Valid
	switch {
	case c.MarkerCol.Valid && hasCoordinates:
		return m, &ConfigurationError{Reason: "must specify either marker OR chromosome + position"}
	case c.MarkerCol.Valid:
		m.Location = ByMarker{MarkerCol: int(c.MarkerCol.Int64)}
	case c.ChromCol.Valid && c.PosCol.Valid:
		m.Location = ByCoordinates{
			ChromCol: int(c.ChromCol.Int64),
			PosCol:   int(c.PosCol.Int64),
			RefCol:   c.RefCol,
			AltCol:   c.AltCol,
		}
	case hasCoordinates:
		return m, &ConfigurationError{Reason: "chromosome and position columns must be specified together"}
	default:
		return m, &ConfigurationError{Reason: "must specify how to locate the marker"}
	}

	if !c.PvalueCol.Valid {
		return m, &ConfigurationError{Reason: "a p-value column is required"}
	}
	m.PvalueCol = int(c.PvalueCol.Int64)

	switch {
	case c.AlleleFreqCol.Valid && (c.AlleleCountCol.Valid || c.NSamplesCol.Valid):
		return m, &ConfigurationError{Reason: "allele frequency and allele count are mutually exclusive"}
	case c.AlleleFreqCol.Valid:
		m.Frequency = ByFrequency{FreqCol: int(c.AlleleFreqCol.Int64)}
	case c.AlleleCountCol.Valid && c.NSamplesCol.Valid:
		m.Frequency = ByCount{CountCol: int(c.AlleleCountCol.Int64), NSamplesCol: int(c.NSamplesCol.Int64)}
	case c.AlleleCountCol.Valid:
		return m, &ConfigurationError{Reason: "allele count requires the number of samples"}
	case c.NSamplesCol.Valid:
		return m, &ConfigurationError{Reason: "number of samples was given without an allele count"}
	}

	if c.IsAltEffect.Valid && !c.IsAltEffect.Bool {
		m.Effect = RefEffect
	}

	return m, m.Validate()
}

// Config converts m back into its loosely-typed form.
func (m ColumnMapping) Config() Config {
	c := Config{
		PvalueCol:      null.IntFrom(int64(m.PvalueCol)),
		IsNegLogPvalue: m.IsNegLogPvalue,
		Delimiter:      m.Delimiter,
		BetaCol:        m.BetaCol,
		StderrBetaCol:  m.StderrBetaCol,
		IsAltEffect:    null.BoolFrom(m.IsAltEffect()),
	}

	switch loc := m.Location.(type) {
	case ByMarker:
		c.MarkerCol = null.IntFrom(int64(loc.MarkerCol))
	case ByCoordinates:
		c.ChromCol = null.IntFrom(int64(loc.ChromCol))
		c.PosCol = null.IntFrom(int64(loc.PosCol))
		c.RefCol = loc.RefCol
		c.AltCol = loc.AltCol
	}

	switch f := m.Frequency.(type) {
	case ByFrequency:
		c.AlleleFreqCol = null.IntFrom(int64(f.FreqCol))
	case ByCount:
		c.AlleleCountCol = null.IntFrom(int64(f.CountCol))
		c.NSamplesCol = null.IntFrom(int64(f.NSamplesCol))
	}

	return c
}
