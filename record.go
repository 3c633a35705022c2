package sumstats

import (
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// AssociationRecord is the canonical form of one line of summary statistics.
// LogPvalue is -log10(p); it may be +Inf but is never -Inf or NaN.
type AssociationRecord struct {
	Chromosome    string      `json:"chromosome"`
	Position      uint64      `json:"position"`
	RefAllele     null.String `json:"ref_allele"`
	AltAllele     null.String `json:"alt_allele"`
	LogPvalue     float64     `json:"log_pvalue"`
	Variant       string      `json:"variant"`
	Beta          null.Float  `json:"beta"`
	StderrBeta    null.Float  `json:"stderr_beta"`
	AltAlleleFreq null.Float  `json:"alt_allele_freq"`
}

// FormatVariant builds the canonical variant identifier chrom:pos, with a
// _ref/alt suffix only when both alleles are known.
func FormatVariant(chrom string, pos uint64, ref, alt null.String) string {
	b := strings.Builder{}
	b.WriteString(chrom)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(pos, 10))
	if ref.Valid && alt.Valid {
		b.WriteByte('_')
		b.WriteString(ref.String)
		b.WriteByte('/')
		b.WriteString(alt.String)
	}

	return b.String()
}
