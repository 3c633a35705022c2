package sumstats

import (
	"regexp"
	"strings"
)

// SniffOptions describe the dialect assumed when classifying a raw line.
type SniffOptions struct {
	CommentPrefix string
	Delimiter     string
}

// DefaultSniffOptions treats # as the comment prefix and tab as the delimiter.
var DefaultSniffOptions = SniffOptions{CommentPrefix: "#", Delimiter: "\t"}

// IsHeader guesses whether line is a header rather than data. Comment lines
// are headers. Otherwise, a line is a header only if none of its fields are
// numeric or missing, since GWAS data lines nearly always carry numbers.
func IsHeader(line string, opts SniffOptions) bool {
	if opts.CommentPrefix != "" && strings.HasPrefix(line, opts.CommentPrefix) {
		return true
	}

	delim := opts.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}

	var fields []string
	if delim == " " {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(strings.TrimRight(line, "\r\n"), delim)
	}

	for _, f := range fields {
		if IsNumeric(f) {
			return false
		}
	}

	return true
}

var sourceNameReplacer = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SourceName turns a display name into an identifier that is safe to use as a
// namespace.
func SourceName(display string) string {
	return sourceNameReplacer.ReplaceAllString(display, "_")
}
