package chrpos

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultRegionSize is the width, in base pairs, of the region drawn around a
// single position. It is also the widest region ParseRegion accepts by
// default.
const DefaultRegionSize = 500000

// DefaultPadding is the fraction of the region size placed before a position
// by PositionToStartRange.
const DefaultPadding = 0.025

var (
	regionPattern   = regexp.MustCompile(`^(?:chr)?(\w+)\s*:\s*([\d,]+)\s*-\s*([\d,]+)$`)
	positionPattern = regexp.MustCompile(`^(?:chr)?(\w+)\s*:\s*([\d,]+)$`)
)

// Region is a closed interval on one chromosome. Positions are 1-based.
type Region struct {
	Chrom string
	Start int
	End   int
}

func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// Width is the number of base pairs between the start and end.
func (r Region) Width() int {
	return r.End - r.Start
}

// Anchor decides where a single position is placed within the region drawn
// around it.
type Anchor int

const (
	// Centered puts the position in the middle of the region.
	Centered Anchor = iota

	// Leading puts the position near the start of the region, preceded by
	// DefaultPadding of its size.
	Leading
)

// ParseRegion reads either chr:start-end or chr:pos. A single position is
// expanded into a region of regionSize centered on it. If regionSize is
// positive, wider regions are rejected.
func ParseRegion(input string, regionSize int) (Region, error) {
	return ParseRegionAround(input, regionSize, regionSize, Centered)
}

// ParseRegionAround is ParseRegion with the size of the region drawn around a
// single position kept apart from the widest region accepted. If maxWidth is
// not positive, regions of any width are accepted.
func ParseRegionAround(input string, size, maxWidth int, anchor Anchor) (Region, error) {
	input = strings.TrimSpace(input)

	var r Region
	if m := regionPattern.FindStringSubmatch(input); m != nil {
		start, err := parseInt(m[2])
		if err != nil {
			return r, fmt.Errorf("Could not parse the specified range: %s: %w", input, err)
		}
		end, err := parseInt(m[3])
		if err != nil {
			return r, fmt.Errorf("Could not parse the specified range: %s: %w", input, err)
		}
		r = Region{Chrom: m[1], Start: start, End: end}
	} else if m := positionPattern.FindStringSubmatch(input); m != nil {
		pos, err := parseInt(m[2])
		if err != nil {
			return r, fmt.Errorf("Could not parse the specified range: %s: %w", input, err)
		}
		r.Chrom = m[1]
		if anchor == Leading {
			r.Start, r.End = PositionToStartRange(pos, size, DefaultPadding)
		} else {
			r.Start, r.End = PositionToMidRange(pos, size)
		}
	} else {
		return r, fmt.Errorf("Could not parse the specified range: %s", input)
	}

	if maxWidth > 0 && r.Width() > maxWidth {
		return r, fmt.Errorf("Maximum allowable range is %d bp", maxWidth)
	}

	if r.End < r.Start {
		return r, fmt.Errorf("The requested end position %d is smaller than the requested start position %d", r.End, r.Start)
	}

	return r, nil
}

// PositionToMidRange returns a range of regionSize centered on pos. The start
// is never less than 1.
func PositionToMidRange(pos, regionSize int) (start, end int) {
	bounds := regionSize / 2

	start = pos - bounds
	if start < 1 {
		start = 1
	}

	return start, pos + bounds
}

// PositionToStartRange returns a range of regionSize that begins shortly
// before pos. padding is a fraction of regionSize.
func PositionToStartRange(pos, regionSize int, padding float64) (start, end int) {
	pad := int(float64(regionSize) * padding)

	start = pos - pad
	if start < 1 {
		start = 1
	}

	return start, start + regionSize + pad
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(s, ",", ""))
}

// Contains reports whether the 1-based position pos on chrom lies within r,
// endpoints included. A "chr" prefix on chrom is ignored.
func (r Region) Contains(chrom string, pos uint64) bool {
	return strings.TrimPrefix(chrom, "chr") == r.Chrom &&
		pos >= uint64(r.Start) && pos <= uint64(r.End)
}
