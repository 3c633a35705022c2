package main

import (
	"fmt"
	"strings"

	"github.com/carbocation/sumstats"
	"github.com/carbocation/sumstats/sumfile"
)

// chooseMapping decides how to read the file. Exactly one of a JSON config, a
// preset or column flags may be given; without any of them the sniffed
// mapping is used. The second return value describes where the mapping came
// from.
func chooseMapping(configPath, preset string, cols columnFlags, delimiter string, dialect *sumfile.Dialect) (sumstats.ColumnMapping, string, error) {
	var m sumstats.ColumnMapping

	sources := 0
	for _, given := range []bool{configPath != "", preset != "", cols.given()} {
		if given {
			sources++
		}
	}
	if sources > 1 {
		return m, "", fmt.Errorf("Please specify only one of -config, -preset or column numbers")
	}

	var err error
	var source string
	switch {
	case configPath != "":
		var c sumstats.Config
		if c, err = sumfile.ParseConfigFromPath(configPath); err != nil {
			return m, "", err
		}
		if m, err = c.Mapping(); err != nil {
			return m, "", fmt.Errorf("%s: %w", configPath, err)
		}
		source = "config " + configPath
	case preset != "":
		if m, err = sumstats.Preset(preset); err != nil {
			return m, "", err
		}
		if delimiter != "" {
			m.Delimiter = delimiter
		}
		return m, "preset " + strings.ToLower(preset), nil
	case cols.given():
		if m, err = cols.Config().Mapping(); err != nil {
			return m, "", err
		}
		source = "column flags"
	default:
		if !dialect.Detected {
			return m, "", fmt.Errorf("Could not detect the columns of a file with header %q. Please specify -preset (one of %s), -config or column numbers", dialect.Header, sumstats.PresetNames())
		}
		return dialect.Mapping, "detected", nil
	}

	switch {
	case delimiter != "":
		m.Delimiter = delimiter
	case m.Delimiter == "":
		m.Delimiter = dialect.Delimiter
	}

	return m, source, nil
}
