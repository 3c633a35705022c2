package main

import (
	"flag"

	"github.com/carbocation/sumstats"
	"gopkg.in/guregu/null.v3"
)

// columnFlags holds 1-based column numbers as typed by the user. Zero means
// the column was not given.
type columnFlags struct {
	marker, chrom, pos, ref, alt int
	pvalue, beta, stderr         int
	freq, alleleCount, nSamples  int
	negLog, refEffect            bool
}

func (c *columnFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&c.marker, "marker", 0, "1-based column of a chr:pos_ref/alt marker. Mutually exclusive with -chrom/-pos.")
	fs.IntVar(&c.chrom, "chrom", 0, "1-based column of the chromosome")
	fs.IntVar(&c.pos, "pos", 0, "1-based column of the position")
	fs.IntVar(&c.ref, "ref", 0, "1-based column of the reference allele. Requires -alt.")
	fs.IntVar(&c.alt, "alt", 0, "1-based column of the alternate allele. Requires -ref.")
	fs.IntVar(&c.pvalue, "pvalue", 0, "1-based column of the p-value")
	fs.BoolVar(&c.negLog, "neglog", false, "Whether the p-value column already holds -log10(p)")
	fs.IntVar(&c.beta, "beta", 0, "1-based column of the effect size")
	fs.IntVar(&c.stderr, "se", 0, "1-based column of the standard error of the effect size")
	fs.IntVar(&c.freq, "freq", 0, "1-based column of the allele frequency. Mutually exclusive with -ac/-n.")
	fs.IntVar(&c.alleleCount, "ac", 0, "1-based column of the allele count. Requires -n.")
	fs.IntVar(&c.nSamples, "n", 0, "1-based column of the number of (diploid) samples")
	fs.BoolVar(&c.refEffect, "refeffect", false, "Whether effect sizes and frequencies refer to the reference allele rather than the alternate")
}

// given reports whether any column was set on the command line.
func (c columnFlags) given() bool {
	for _, v := range []int{c.marker, c.chrom, c.pos, c.ref, c.alt, c.pvalue, c.beta, c.stderr, c.freq, c.alleleCount, c.nSamples} {
		if v != 0 {
			return true
		}
	}

	return false
}

// Config translates the flags into a 0-based sumstats.Config.
func (c columnFlags) Config() sumstats.Config {
	return sumstats.Config{
		MarkerCol:      oneBased(c.marker),
		ChromCol:       oneBased(c.chrom),
		PosCol:         oneBased(c.pos),
		RefCol:         oneBased(c.ref),
		AltCol:         oneBased(c.alt),
		PvalueCol:      oneBased(c.pvalue),
		IsNegLogPvalue: c.negLog,
		BetaCol:        oneBased(c.beta),
		StderrBetaCol:  oneBased(c.stderr),
		AlleleFreqCol:  oneBased(c.freq),
		AlleleCountCol: oneBased(c.alleleCount),
		NSamplesCol:    oneBased(c.nSamples),
		IsAltEffect:    null.BoolFrom(!c.refEffect),
	}
}

func oneBased(col int) null.Int {
	if col == 0 {
		return null.Int{}
	}

	// Negative numbers are passed through so that validation rejects them.
	if col < 0 {
		return null.IntFrom(int64(col))
	}

	return null.IntFrom(int64(col - 1))
}
