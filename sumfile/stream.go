package sumfile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/sumstats"
	"github.com/exascience/pargo/pipeline"
)

// Options control Stream.
type Options struct {
	// Lines starting with CommentPrefix are skipped, as are blank lines.
	CommentPrefix string

	// If Strict is set, the first line that cannot be parsed for any reason
	// other than a missing value stops the stream.
	Strict bool

	// FirstLine is the line number of the first line of the reader within the
	// whole file, e.g. Dialect.HeaderLines+1. Zero is treated as 1.
	FirstLine int
}

// Line is one parsed data line. Exactly one of Record and Err is meaningful.
type Line struct {
	Number int
	Record sumstats.AssociationRecord
	Err    error
}

// Result summarizes a call to Stream.
type Result struct {
	// Lines counts data lines, i.e. neither blank nor comments.
	Lines    int
	Parsed   int
	Excluded int
	Failed   int
}

// LineError attaches a line number to a parse error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

type parsedLine struct {
	skip bool
	rec  sumstats.AssociationRecord
	err  error
}

// Stream parses every data line of r with parser, in parallel, and calls fn
// for each one in file order. Lines whose p-value or position is missing are
// counted as excluded and not passed to fn. Other failures are passed to fn
// through Line.Err unless opts.Strict is set. An error returned by fn stops
// the stream and is returned.
func Stream(r io.Reader, parser *sumstats.Parser, opts Options, fn func(Line) error) (Result, error) {
	var res Result

	lineNo := opts.FirstLine - 1
	if lineNo < 0 {
		lineNo = 0
	}

	var p pipeline.Pipeline
	p.Source(pipeline.NewScanner(r))
	p.Add(
		pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data interface{}) interface{} {
			lines := data.([]string)
			out := make([]parsedLine, len(lines))
			for i, line := range lines {
				if strings.TrimSpace(line) == "" || isComment(line, opts.CommentPrefix) {
					out[i].skip = true
					continue
				}
				out[i].rec, out[i].err = parser.Parse(line)
			}
			return out
		})),
		pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
			for _, pl := range data.([]parsedLine) {
				lineNo++
				if pl.skip {
					continue
				}
				res.Lines++

				switch {
				case pl.err == nil:
					res.Parsed++
				case errors.Is(pl.err, sumstats.ErrMissingValue):
					res.Excluded++
					continue
				default:
					res.Failed++
					if opts.Strict {
						p.SetErr(&LineError{Line: lineNo, Err: pl.err})
						return nil
					}
				}

				if err := fn(Line{Number: lineNo, Record: pl.rec, Err: pl.err}); err != nil {
					p.SetErr(err)
					return nil
				}
			}
			return nil
		})),
	)
	p.Run()

	return res, p.Err()
}
