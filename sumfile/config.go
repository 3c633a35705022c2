package sumfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/carbocation/pfx"
	"github.com/carbocation/sumstats"
)

// ParseConfigFromPath reads a JSON column mapping such as
//
//	{"chrom_col": 0, "pos_col": 1, "ref_col": 2, "alt_col": 3, "pvalue_col": 8}
//
// Column indices are 0-based.
func ParseConfigFromPath(path string) (sumstats.Config, error) {
	var out sumstats.Config

	expanded, err := ExpandHome(path)
	if err != nil {
		return out, err
	}

	f, err := os.Open(expanded)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return out, pfx.Err(fmt.Errorf("%s: syntax error at byte offset %d: %w", path, syntaxErr.Offset, err))
		}

		return out, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return out, nil
}
