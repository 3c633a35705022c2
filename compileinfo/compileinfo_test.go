package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.18",
		Path:      "github.com/carbocation/sumstats/cmd/gwas2tsv",
		Main:      debug.Module{Path: "github.com/carbocation/sumstats", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2022-05-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	c := fromBuildInfo(bi)
	if c.Commit != "abc123" || !c.Modified || c.Module != "github.com/carbocation/sumstats" {
		t.Errorf("Unexpected %+v", c)
	}

	s := c.String()
	if !strings.Contains(s, "gwas2tsv") || !strings.Contains(s, "modified") {
		t.Errorf("Unexpected description %q", s)
	}
}

func TestStringWithoutBuildInfo(t *testing.T) {
	if s := (CompileInfo{}).String(); !strings.Contains(s, "unavailable") {
		t.Errorf("Got %q", s)
	}
}
