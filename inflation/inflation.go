// Package inflation summarizes the p-values of a genome-wide association
// study: how many reach genome-wide significance, how inflated the test
// statistics are (lambda GC), and what the distribution of -log10 p looks
// like.
package inflation

import (
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// GenomeWideSignificance is -log10(5e-8).
var GenomeWideSignificance = -math.Log10(5e-8)

var chiSquared1 = distuv.ChiSquared{K: 1}

// Accumulator collects -log10 p-values. The zero value is ready to use. It is
// not safe for concurrent use.
type Accumulator struct {
	logps []float64
}

// Add records one -log10 p-value. NaN values are ignored.
func (a *Accumulator) Add(logp float64) {
	if math.IsNaN(logp) {
		return
	}
	a.logps = append(a.logps, logp)
}

// Len is the number of values added so far.
func (a *Accumulator) Len() int {
	return len(a.logps)
}

// Summary describes the accumulated p-values.
type Summary struct {
	N            int
	Significant  int
	MaxLogPvalue float64

	// Lambda is the median observed chi-squared statistic divided by its
	// expected median under the null. It is NaN when no values were added.
	Lambda float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d variants, %d genome-wide significant, max -log10(p) %.4g, lambda GC %.4f", s.N, s.Significant, s.MaxLogPvalue, s.Lambda)
}

// Summary computes the summary statistics of everything added so far.
func (a *Accumulator) Summary() Summary {
	out := Summary{N: len(a.logps), Lambda: math.NaN()}
	if out.N == 0 {
		return out
	}

	chisq := make([]float64, 0, len(a.logps))
	out.MaxLogPvalue = math.Inf(-1)
	for _, logp := range a.logps {
		if logp >= GenomeWideSignificance {
			out.Significant++
		}
		if logp > out.MaxLogPvalue {
			out.MaxLogPvalue = logp
		}
		chisq = append(chisq, ChiSquared(logp))
	}

	median, err := stats.Median(chisq)
	if err != nil {
		return out
	}
	out.Lambda = median / chiSquared1.Quantile(0.5)

	return out
}

// ChiSquared converts a -log10 p-value into the 1 degree of freedom
// chi-squared statistic that would produce it, via the normal quantile of p/2
// so that tiny p-values keep their precision.
func ChiSquared(logp float64) float64 {
	p := math.Pow(10, -logp)
	if p >= 1 {
		return 0
	}
	if p <= 0 {
		return math.Inf(1)
	}

	z := distuv.UnitNormal.Quantile(p / 2)

	return z * z
}

// Fprint draws a text histogram of the finite -log10 p-values with the given
// number of bins.
func (a *Accumulator) Fprint(w io.Writer, bins int) error {
	finite := make([]float64, 0, len(a.logps))
	for _, logp := range a.logps {
		if !math.IsInf(logp, 0) {
			finite = append(finite, logp)
		}
	}

	if len(finite) == 0 {
		_, err := fmt.Fprintln(w, "No finite -log10(p) values to plot")
		return err
	}

	hist := histogram.Hist(bins, finite)

	return histogram.Fprint(w, hist, histogram.Linear(40))
}
