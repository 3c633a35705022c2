package sumstats

import "testing"

func TestIsHeader(t *testing.T) {
	if !IsHeader("#Comment", DefaultSniffOptions) {
		t.Error("Comment lines are headers")
	}
	if !IsHeader("Header\tLabels", DefaultSniffOptions) {
		t.Error("Headers tend to be text")
	}
	if IsHeader("X\t100", DefaultSniffOptions) {
		t.Error("Data has numbers")
	}
	if IsHeader("X\t.", DefaultSniffOptions) {
		t.Error("Missing data is still data")
	}
	if IsHeader("a\t \tb", DefaultSniffOptions) {
		t.Error("A blank field is missing data, so the line is data")
	}
	if IsHeader("X,100", SniffOptions{CommentPrefix: "#", Delimiter: ","}) {
		t.Error("Should handle data as csv")
	}
	if !IsHeader("//100", SniffOptions{CommentPrefix: "//", Delimiter: "\t"}) {
		t.Error("Should handle different comments")
	}
	if !IsHeader("CHR  POS  1:100", SniffOptions{Delimiter: " "}) {
		t.Error("Whitespace-delimited headers without numbers should be headers")
	}
}

func TestSourceName(t *testing.T) {
	if got := SourceName("My GWAS (v2).tsv"); got != "My_GWAS__v2__tsv" {
		t.Errorf("Got %s", got)
	}
}
