package sumfile

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/carbocation/sumstats"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// MissingToken is written in place of absent values.
const MissingToken = "."

// Row is the tab-delimited output form of an AssociationRecord. Its first
// seven columns follow the layout of the "standard" preset, so output can be
// read back with sumstats.Presets["standard"].
type Row struct {
	Chromosome    string `csv:"chrom"`
	Position      uint64 `csv:"pos"`
	Ref           string `csv:"ref"`
	Alt           string `csv:"alt"`
	LogPvalue     string `csv:"log_pvalue"`
	Beta          string `csv:"beta"`
	StderrBeta    string `csv:"stderr_beta"`
	AltAlleleFreq string `csv:"alt_allele_freq"`
}

// TSVHeader lists the column names of Row.
var TSVHeader = []string{"chrom", "pos", "ref", "alt", "log_pvalue", "beta", "stderr_beta", "alt_allele_freq"}

func NewRow(rec sumstats.AssociationRecord) Row {
	return Row{
		Chromosome:    rec.Chromosome,
		Position:      rec.Position,
		Ref:           stringOrMissing(rec.RefAllele),
		Alt:           stringOrMissing(rec.AltAllele),
		LogPvalue:     strconv.FormatFloat(rec.LogPvalue, 'g', -1, 64),
		Beta:          floatOrMissing(rec.Beta),
		StderrBeta:    floatOrMissing(rec.StderrBeta),
		AltAlleleFreq: floatOrMissing(rec.AltAlleleFreq),
	}
}

func stringOrMissing(s null.String) string {
	if !s.Valid {
		return MissingToken
	}
	return s.String
}

func floatOrMissing(f null.Float) string {
	if !f.Valid {
		return MissingToken
	}
	return strconv.FormatFloat(f.Float64, 'g', -1, 64)
}

// TSVWriter writes records as tab-delimited rows with a header. Writes are
// marshaled on a separate goroutine; Close must be called to flush them.
type TSVWriter struct {
	out  *gocsv.SafeCSVWriter
	rows chan interface{}
	done chan error
	err  error
}

func NewTSVWriter(w io.Writer) *TSVWriter {
	csvw := csv.NewWriter(w)
	csvw.Comma = '\t'

	return &TSVWriter{out: gocsv.NewSafeCSVWriter(csvw)}
}

func (t *TSVWriter) Write(rec sumstats.AssociationRecord) error {
	if t.err != nil {
		return t.err
	}

	if t.rows == nil {
		t.rows = make(chan interface{}, 1024)
		t.done = make(chan error, 1)
		go func() {
			t.done <- gocsv.MarshalChan(t.rows, t.out)
		}()
	}

	select {
	case t.rows <- NewRow(rec):
		return nil
	case err := <-t.done:
		// The marshaler only returns early on failure.
		t.err = err
		return err
	}
}

// Close flushes all pending rows. A writer that never received a record still
// writes the header.
func (t *TSVWriter) Close() error {
	if t.err != nil {
		return t.err
	}

	if t.rows == nil {
		if err := t.out.Write(TSVHeader); err != nil {
			return err
		}
		t.out.Flush()
		return t.out.Error()
	}

	close(t.rows)
	t.err = <-t.done

	return t.err
}
