package inflation

import (
	"io"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// Below this -log10(p), QQ points are thinned so that plots of millions of
// variants stay small. Points above it are all drawn.
const qqThinBelow = 2.0

const qqMaxThinnedPoints = 5000

// QQPoints returns the expected and observed -log10 p-values of a QQ plot,
// from the most to the least significant. Infinite values are dropped after
// they have been counted towards the expected quantiles.
func (a *Accumulator) QQPoints() (expected, observed []float64) {
	n := len(a.logps)
	if n == 0 {
		return nil, nil
	}

	sorted := append([]float64(nil), a.logps...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	thinned := 0
	for _, logp := range sorted {
		if logp < qqThinBelow {
			thinned++
		}
	}
	step := 1
	if thinned > qqMaxThinnedPoints {
		step = thinned / qqMaxThinnedPoints
	}

	for i, logp := range sorted {
		if math.IsInf(logp, 0) {
			continue
		}
		if logp < qqThinBelow && (n-1-i)%step != 0 {
			continue
		}

		expected = append(expected, -math.Log10((float64(i)+0.5)/float64(n)))
		observed = append(observed, logp)
	}

	return expected, observed
}

// WriteQQPlot renders a QQ plot of the accumulated p-values as a PNG.
func (a *Accumulator) WriteQQPlot(w io.Writer) error {
	expected, observed := a.QQPoints()

	diagonal := 1.0
	for _, v := range append(append([]float64{}, expected...), observed...) {
		if v > diagonal {
			diagonal = v
		}
	}

	graph := chart.Chart{
		Width:  600,
		Height: 600,
		Title:  a.Summary().String(),
		XAxis: chart.XAxis{
			Name: "Expected -log10(p)",
		},
		YAxis: chart.YAxis{
			Name: "Observed -log10(p)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "null",
				XValues: []float64{0, diagonal},
				YValues: []float64{0, diagonal},
			},
			chart.ContinuousSeries{
				Name:    "observed",
				XValues: reversed(expected),
				YValues: reversed(observed),
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

// reversed returns a copy of v in ascending order of the expected quantiles,
// which is how the series are drawn.
func reversed(v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[len(v)-1-i] = v[i]
	}

	return out
}
