package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/sumstats"
	"github.com/carbocation/sumstats/chrpos"
	_ "github.com/carbocation/sumstats/compileinfoprint"
	"github.com/carbocation/sumstats/inflation"
	"github.com/carbocation/sumstats/sumfile"
)

// Only this many unparseable lines are logged individually.
const maxLoggedErrors = 10

func main() {
	log.Println("gwas2tsv")
	fmt.Fprintln(os.Stderr,
		`Consumes GWAS summary statistics in any of the common dialects (EPACTS, PLINK, RVTESTS, SAIGE, BOLT-LMM, METAL, 
RAREMETAL, REGENIE) and writes them as a tab-delimited file with the columns
  chrom pos ref alt log_pvalue beta stderr_beta alt_allele_freq
Columns are detected from the header unless -preset, -config or column numbers are given. 
Lines with a missing p-value or position are excluded.`)

	var input, output, configPath, preset, delimiter, comment, region, qqPlot string
	var strict, summary bool
	var bins, regionSize int
	var cols columnFlags

	flag.StringVar(&input, "input", "", "Path to the summary statistics. May be compressed (gzip, bgzip, zip, xz, bzip2, zlib). Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&output, "output", "", "Path to the output file. If blank, writes to stdout.")
	flag.StringVar(&configPath, "config", "", "Path to a JSON column mapping with 0-based columns, e.g. {\"marker_col\": 2, \"pvalue_col\": 11}")
	flag.StringVar(&preset, "preset", "", "Name of the program that produced the file. One of: "+sumstats.PresetNames())
	flag.StringVar(&delimiter, "delimiter", "", "Field delimiter: tab, comma, space (runs of whitespace) or a literal. If blank, it is detected.")
	flag.StringVar(&comment, "comment", "#", "Lines starting with this prefix are not data")
	flag.StringVar(&region, "region", "", "Optional. If set, only variants within this region (chr:start-end or chr:pos) are written")
	flag.IntVar(&regionSize, "regionsize", chrpos.DefaultRegionSize, "Width in base pairs of the region centered on a single -region position")
	flag.BoolVar(&strict, "strict", false, "Stop at the first line that cannot be parsed, rather than skipping it")
	flag.BoolVar(&summary, "summary", true, "Print the genomic inflation factor and a histogram of -log10(p) to stderr")
	flag.IntVar(&bins, "bins", 20, "Number of histogram bins for -summary")
	flag.StringVar(&qqPlot, "qqplot", "", "Optional. If set, a QQ plot of the p-values is written to this PNG file")
	cols.register(flag.CommandLine)
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		log.Fatalln("Must specify an --input file")
	}

	var keep func(sumstats.AssociationRecord) bool
	if region != "" {
		r, err := parseRegion(region, regionSize)
		if err != nil {
			log.Fatalln(err)
		}
		log.Println("Limiting output to", r)
		keep = func(rec sumstats.AssociationRecord) bool { return r.Contains(rec.Chromosome, rec.Position) }
	}

	ctx := context.Background()

	var client *storage.Client
	if sumfile.IsGoogleStoragePath(input) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	f, err := sumfile.Open(ctx, input, client)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()
	log.Printf("Reading %s (%s, %d bytes)\n", f.Path, f.Compression, f.Size)

	delimiter = sumfile.DelimiterByName(delimiter)
	dialect, rest, err := sumfile.Sniff(f, sumstats.SniffOptions{CommentPrefix: comment, Delimiter: delimiter})
	if err != nil {
		log.Fatalln(err)
	}

	mapping, source, err := chooseMapping(configPath, preset, cols, delimiter, dialect)
	if err != nil {
		log.Fatalln(err)
	}

	parser, err := sumstats.NewParser(mapping)
	if err != nil {
		log.Fatalln(err)
	}

	if cfg, err := json.Marshal(mapping.Config()); err == nil {
		log.Printf("Using %s mapping (0-based): %s\n", source, cfg)
	}

	var out io.Writer = os.Stdout
	if output != "" {
		fo, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalln(err)
		}
		defer fo.Close()
		out = fo
	}
	bw := bufio.NewWriter(out)

	res, acc, err := convert(rest, parser, sumfile.Options{
		CommentPrefix: comment,
		Strict:        strict,
		FirstLine:     dialect.HeaderLines + 1,
	}, keep, bw)
	if flushErr := bw.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Read %d data lines: %d parsed, %d excluded for missing values, %d could not be parsed\n", res.Lines, res.Parsed, res.Excluded, res.Failed)

	if summary {
		log.Println(acc.Summary())
		if err := acc.Fprint(os.Stderr, bins); err != nil {
			log.Println(err)
		}
	}

	if qqPlot != "" {
		if err := writeQQPlot(qqPlot, acc); err != nil {
			log.Fatalln(err)
		}
		log.Println("Wrote QQ plot to", qqPlot)
	}
}

// parseRegion expands a single position into a region of size. Explicit ranges
// may be of any width.
func parseRegion(region string, size int) (chrpos.Region, error) {
	return chrpos.ParseRegionAround(region, size, 0, chrpos.Centered)
}

func writeQQPlot(path string, acc *inflation.Accumulator) error {
	out, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer out.Close()

	if err := acc.WriteQQPlot(out); err != nil {
		return pfx.Err(err)
	}

	return out.Close()
}

// convert streams r through parser into w. keep may be nil.
func convert(r io.Reader, parser *sumstats.Parser, opts sumfile.Options, keep func(sumstats.AssociationRecord) bool, w io.Writer) (sumfile.Result, *inflation.Accumulator, error) {
	acc := &inflation.Accumulator{}
	tw := sumfile.NewTSVWriter(w)

	logged := 0
	res, err := sumfile.Stream(r, parser, opts, func(l sumfile.Line) error {
		if l.Err != nil {
			if logged < maxLoggedErrors {
				log.Printf("Skipping line %d: %v\n", l.Number, l.Err)
			} else if logged == maxLoggedErrors {
				log.Println("Further unparseable lines will not be logged")
			}
			logged++
			return nil
		}

		if keep != nil && !keep(l.Record) {
			return nil
		}

		acc.Add(l.Record.LogPvalue)
		return tw.Write(l.Record)
	})
	if err != nil {
		tw.Close()
		return res, acc, pfx.Err(err)
	}

	if err := tw.Close(); err != nil {
		return res, acc, pfx.Err(err)
	}

	return res, acc, nil
}
