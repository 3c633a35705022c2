package sumstats

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Location describes how chromosome, position and alleles are located on a
// line. It is either ByMarker or ByCoordinates.
type Location interface {
	isLocation()
}

// ByMarker locates a variant through a single marker column such as
// 1:123_A/C.
type ByMarker struct {
	MarkerCol int
}

// ByCoordinates locates a variant through separate columns. RefCol and AltCol
// are either both set or both null.
type ByCoordinates struct {
	ChromCol int
	PosCol   int
	RefCol   null.Int
	AltCol   null.Int
}

func (ByMarker) isLocation()      {}
func (ByCoordinates) isLocation() {}

// FrequencySource describes where the allele frequency comes from. It is
// either ByFrequency or ByCount.
type FrequencySource interface {
	isFrequencySource()
}

// ByFrequency reads the allele frequency directly.
type ByFrequency struct {
	FreqCol int
}

// ByCount derives the allele frequency from an allele count and the number of
// (diploid) samples.
type ByCount struct {
	CountCol    int
	NSamplesCol int
}

func (ByFrequency) isFrequencySource() {}
func (ByCount) isFrequencySource()     {}

// EffectAllele names the allele that effect sizes and frequencies refer to.
// The zero value is AltEffect.
type EffectAllele int

const (
	AltEffect EffectAllele = iota
	RefEffect
)

func (e EffectAllele) String() string {
	if e == RefEffect {
		return "ref"
	}
	return "alt"
}

// DefaultDelimiter separates fields when a mapping does not name a delimiter.
const DefaultDelimiter = "\t"

// ColumnMapping tells a Parser which 0-based column holds which value.
type ColumnMapping struct {
	Location       Location
	PvalueCol      int
	IsNegLogPvalue bool

	// Delimiter defaults to tab. A single space splits on runs of whitespace.
	Delimiter string

	BetaCol       null.Int
	StderrBetaCol null.Int

	// Frequency is nil when no frequency column is available.
	Frequency FrequencySource
	Effect    EffectAllele
}

// Validate checks the invariants that the types alone cannot guarantee.
func (m ColumnMapping) Validate() error {
	switch loc := m.Location.(type) {
	case nil:
		return &ConfigurationError{Reason: "must specify how to locate the marker: either a marker column or chromosome + position columns"}
	case ByMarker:
		if err := checkCol("marker", loc.MarkerCol); err != nil {
			return err
		}
	case ByCoordinates:
		if err := checkCol("chromosome", loc.ChromCol); err != nil {
			return err
		}
		if err := checkCol("position", loc.PosCol); err != nil {
			return err
		}
		if loc.RefCol.Valid != loc.AltCol.Valid {
			return &ConfigurationError{Reason: "ref and alt columns must be specified together"}
		}
		if err := checkNullCol("ref", loc.RefCol); err != nil {
			return err
		}
		if err := checkNullCol("alt", loc.AltCol); err != nil {
			return err
		}
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown location strategy %T", loc)}
	}

	if err := checkCol("p-value", m.PvalueCol); err != nil {
		return err
	}
	if err := checkNullCol("beta", m.BetaCol); err != nil {
		return err
	}
	if err := checkNullCol("stderr_beta", m.StderrBetaCol); err != nil {
		return err
	}

	switch f := m.Frequency.(type) {
	case nil:
	case ByFrequency:
		if err := checkCol("allele frequency", f.FreqCol); err != nil {
			return err
		}
	case ByCount:
		if err := checkCol("allele count", f.CountCol); err != nil {
			return err
		}
		if err := checkCol("number of samples", f.NSamplesCol); err != nil {
			return err
		}
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown frequency strategy %T", f)}
	}

	return nil
}

// IsAltEffect reports whether effects and frequencies refer to the alt allele.
func (m ColumnMapping) IsAltEffect() bool {
	return m.Effect == AltEffect
}

func checkCol(name string, col int) error {
	if col < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("%s column must not be negative, got %d", name, col)}
	}
	return nil
}

func checkNullCol(name string, col null.Int) error {
	if !col.Valid {
		return nil
	}
	return checkCol(name, int(col.Int64))
}
