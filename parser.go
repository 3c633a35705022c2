package sumstats

import (
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Parser converts delimited lines into AssociationRecords. It holds no mutable
// state and may be shared by many goroutines.
type Parser struct {
	mapping ColumnMapping
	split   func(string) []string
}

// NewParser validates m and returns a Parser for it. All configuration errors
// are reported here, before any line is seen.
func NewParser(m ColumnMapping) (*Parser, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if m.Delimiter == "" {
		m.Delimiter = DefaultDelimiter
	}

	p := &Parser{mapping: m}
	if m.Delimiter == " " {
		p.split = strings.Fields
	} else {
		delim := m.Delimiter
		p.split = func(line string) []string { return strings.Split(line, delim) }
	}

	return p, nil
}

// NewParserFromConfig converts c into a ColumnMapping and builds a Parser.
func NewParserFromConfig(c Config) (*Parser, error) {
	m, err := c.Mapping()
	if err != nil {
		return nil, err
	}

	return NewParser(m)
}

// Mapping returns the mapping the parser was built from.
func (p *Parser) Mapping() ColumnMapping {
	return p.mapping
}

// Split divides a line into fields using the mapping's delimiter.
func (p *Parser) Split(line string) []string {
	return p.split(strings.TrimRight(line, "\r\n"))
}

// Parse converts a single line.
func (p *Parser) Parse(line string) (AssociationRecord, error) {
	return p.ParseFields(p.Split(line))
}

// ParseFields converts a line that has already been split into fields.
func (p *Parser) ParseFields(fields []string) (AssociationRecord, error) {
	var rec AssociationRecord

	switch loc := p.mapping.Location.(type) {
	case ByMarker:
		token, err := field(fields, "marker", loc.MarkerCol)
		if err != nil {
			return rec, err
		}
		marker, err := ParseMarker(token)
		if err != nil {
			return rec, err
		}
		rec.Chromosome = marker.Chromosome
		rec.Position = marker.Position
		rec.RefAllele = marker.Ref
		rec.AltAllele = marker.Alt

	case ByCoordinates:
		chrom, err := field(fields, "chromosome", loc.ChromCol)
		if err != nil {
			return rec, err
		}
		if IsMissing(chrom) {
			return rec, &FieldError{Field: "chromosome", Err: ErrMissingValue}
		}
		rec.Chromosome = strings.TrimPrefix(chrom, "chr")

		pos, err := field(fields, "position", loc.PosCol)
		if err != nil {
			return rec, err
		}
		if IsMissing(pos) {
			return rec, &FieldError{Field: "position", Err: ErrMissingValue}
		}
		rec.Position, err = strconv.ParseUint(pos, 10, 64)
		if err != nil {
			return rec, &NumberError{Field: "position", Token: pos, Err: err}
		}

		if rec.RefAllele, err = optionalField(fields, "ref", loc.RefCol); err != nil {
			return rec, err
		}
		if rec.AltAllele, err = optionalField(fields, "alt", loc.AltCol); err != nil {
			return rec, err
		}
	}

	pvalue, err := field(fields, "p-value", p.mapping.PvalueCol)
	if err != nil {
		return rec, err
	}
	rec.LogPvalue, err = ParsePvalueToLog(pvalue, p.mapping.IsNegLogPvalue)
	if err != nil {
		return rec, &FieldError{Field: "p-value", Err: err}
	}

	if rec.Beta, err = optionalNumber(fields, "beta", p.mapping.BetaCol); err != nil {
		return rec, err
	}
	if rec.StderrBeta, err = optionalNumber(fields, "stderr_beta", p.mapping.StderrBetaCol); err != nil {
		return rec, err
	}

	if p.mapping.Frequency != nil {
		in := FrequencyInput{IsAltEffect: p.mapping.IsAltEffect()}
		switch f := p.mapping.Frequency.(type) {
		case ByFrequency:
			tok, err := field(fields, "allele frequency", f.FreqCol)
			if err != nil {
				return rec, err
			}
			in.Freq = null.StringFrom(tok)
		case ByCount:
			tok, err := field(fields, "allele count", f.CountCol)
			if err != nil {
				return rec, err
			}
			in.AlleleCount = null.StringFrom(tok)
			if tok, err = field(fields, "number of samples", f.NSamplesCol); err != nil {
				return rec, err
			}
			in.NSamples = null.StringFrom(tok)
		}

		if rec.AltAlleleFreq, err = ParseAlleleFrequency(in); err != nil {
			return rec, &FieldError{Field: "allele frequency", Err: err}
		}
	}

	rec.Variant = FormatVariant(rec.Chromosome, rec.Position, rec.RefAllele, rec.AltAllele)

	return rec, nil
}

func field(fields []string, name string, col int) (string, error) {
	if col >= len(fields) {
		return "", &ColumnError{Field: name, Column: col, Fields: len(fields)}
	}

	return strings.TrimSpace(fields[col]), nil
}

func optionalField(fields []string, name string, col null.Int) (null.String, error) {
	if !col.Valid {
		return null.String{}, nil
	}
	tok, err := field(fields, name, int(col.Int64))
	if err != nil {
		return null.String{}, err
	}

	if IsMissing(tok) {
		return null.String{}, nil
	}

	return null.StringFrom(tok), nil
}

func optionalNumber(fields []string, name string, col null.Int) (null.Float, error) {
	tok, err := optionalField(fields, name, col)
	if err != nil || !tok.Valid {
		return null.Float{}, err
	}

	v, err := parseNumber(name, tok.String)
	if err != nil {
		return null.Float{}, err
	}

	return null.FloatFrom(v), nil
}
