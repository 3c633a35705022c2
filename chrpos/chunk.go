package chrpos

import (
	"fmt"
)

// Locus is a half-open interval [start, end) on one chromosome.
type Locus struct {
	chrom string
	start int
	end   int
}

func MakeLocus(chrom string, start, end int) Locus {
	return Locus{chrom: chrom, start: start, end: end}
}

func (l Locus) Chrom() string { return l.chrom }

func (l Locus) Start() int { return l.start }

func (l Locus) End() int { return l.end }

func (l Locus) String() string {
	return fmt.Sprintf("%s:%d-%d", l.chrom, l.start, l.end)
}

// Chunk splits a region into consecutive loci of at most chunksize base pairs,
// e.g. so that each can be fetched from an indexed file concurrently. The last
// locus is truncated at the end of the region, which is included.
func Chunk(r Region, chunksize int) ([]Locus, error) {
	if chunksize <= 0 {
		return nil, fmt.Errorf("Chunk: chunk size must be positive, got %d", chunksize)
	}
	if r.End < r.Start {
		return nil, fmt.Errorf("Chunk: region %s ends before it starts", r)
	}

	output := make([]Locus, 0, r.Width()/chunksize+1)

	end := r.End + 1
	for locationInChromosome := r.Start; locationInChromosome < end; locationInChromosome += chunksize {
		endPoint := locationInChromosome + chunksize
		if endPoint > end {
			endPoint = end
		}

		output = append(output, MakeLocus(r.Chrom, locationInChromosome, endPoint))
	}

	return output, nil
}
