package sumfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/sumstats"
)

// SampleRows is the number of data rows Sniff collects for column detection.
const SampleRows = 10

// maxHeaderLines bounds how far Sniff reads looking for the end of a comment
// block.
const maxHeaderLines = 10000

// Dialect is what Sniff learned about a file.
type Dialect struct {
	Delimiter string

	// Header is the last header-like line before the data, split into fields
	// and with any leading comment marks removed. It is nil when the file has
	// no header.
	Header []string

	// Rows holds up to SampleRows data rows, split into fields.
	Rows [][]string

	// HeaderLines counts the lines, comments included, before the first data
	// row.
	HeaderLines int

	// Mapping is only meaningful when Detected is true.
	Mapping  sumstats.ColumnMapping
	Detected bool
}

// Sniff reads the start of r and guesses its delimiter, header and column
// mapping. If opts.Delimiter is empty, the delimiter is detected from the
// sample. The returned reader yields the data rows, starting with the first
// one, so it can be handed to Stream.
func Sniff(r io.Reader, opts sumstats.SniffOptions) (*Dialect, io.Reader, error) {
	br := bufio.NewReader(r)

	var lines []string
	content := 0
	for content <= SampleRows && len(lines) < maxHeaderLines {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
			if !isComment(line, opts.CommentPrefix) && strings.TrimSpace(line) != "" {
				content++
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, pfx.Err(err)
		}
	}

	d := &Dialect{Delimiter: opts.Delimiter}
	if d.Delimiter == "" {
		var sample strings.Builder
		for _, line := range lines {
			if !isComment(line, opts.CommentPrefix) {
				sample.WriteString(line)
			}
		}
		d.Delimiter = DetermineDelimiter(strings.NewReader(sample.String()))
	}

	headerOpts := sumstats.SniffOptions{CommentPrefix: opts.CommentPrefix, Delimiter: d.Delimiter}
	for d.HeaderLines < len(lines) && sumstats.IsHeader(lines[d.HeaderLines], headerOpts) {
		d.HeaderLines++
	}

	if d.HeaderLines > 0 {
		header := strings.TrimLeft(strings.TrimRight(lines[d.HeaderLines-1], "\r\n"), "#")
		d.Header = splitLine(header, d.Delimiter)
	}

	for _, line := range lines[d.HeaderLines:] {
		if len(d.Rows) == SampleRows {
			break
		}
		if strings.TrimSpace(line) == "" || isComment(line, opts.CommentPrefix) {
			continue
		}
		d.Rows = append(d.Rows, splitLine(strings.TrimRight(line, "\r\n"), d.Delimiter))
	}

	if d.Header != nil {
		if m, ok := sumstats.Detect(d.Header, d.Rows); ok {
			m.Delimiter = d.Delimiter
			d.Mapping, d.Detected = m, true
		}
	}

	rest := strings.Join(lines[d.HeaderLines:], "")
	if rest != "" && !strings.HasSuffix(rest, "\n") {
		rest += "\n"
	}

	return d, io.MultiReader(strings.NewReader(rest), br), nil
}

func isComment(line, prefix string) bool {
	return prefix != "" && strings.HasPrefix(line, prefix)
}

func splitLine(line, delim string) []string {
	if delim == " " {
		return strings.Fields(line)
	}

	return strings.Split(line, delim)
}
