// compileinfoprint is imported for the side effect of printing the compileinfo
// to os.StdErr. Setting SUMSTATS_QUIET silences it.
package compileinfoprint

import (
	"os"

	"github.com/carbocation/sumstats/compileinfo"
)

func init() {
	if os.Getenv("SUMSTATS_QUIET") != "" {
		return
	}

	compileinfo.PrintToStdErr()
}
