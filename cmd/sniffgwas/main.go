package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/sumstats"
	"github.com/carbocation/sumstats/chrpos"
	_ "github.com/carbocation/sumstats/compileinfoprint"
	"github.com/carbocation/sumstats/sumfile"
)

func main() {
	var input, delimiter, comment, region string
	var chunkSize, regionSize int
	var leading bool
	flag.StringVar(&input, "input", "", "Path to the summary statistics. May be compressed. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&delimiter, "delimiter", "", "Field delimiter: tab, comma, space (runs of whitespace) or a literal. If blank, it is detected.")
	flag.StringVar(&comment, "comment", "#", "Lines starting with this prefix are not data")
	flag.StringVar(&region, "region", "", "Optional. A region (chr:start-end or chr:pos) to split into -chunksize loci, e.g. for parallel tabix queries")
	flag.IntVar(&regionSize, "regionsize", chrpos.DefaultRegionSize, "Width in base pairs of the region drawn around a single -region position")
	flag.BoolVar(&leading, "leading", false, "If set, a single -region position is placed near the start of its region instead of the middle")
	flag.IntVar(&chunkSize, "chunksize", 100000, "Size in base pairs of each locus printed for -region")
	flag.Parse()

	if input == "" && region == "" {
		flag.PrintDefaults()
		log.Fatalln("Must specify an --input file or a --region")
	}

	if region != "" {
		if err := printChunks(region, regionSize, leading, chunkSize); err != nil {
			log.Fatalln(err)
		}
	}

	if input == "" {
		return
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

	dialect, _, err := sumfile.Sniff(f, sumstats.SniffOptions{
		CommentPrefix: comment,
		Delimiter:     sumfile.DelimiterByName(delimiter),
	})
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("%s: %s compressed, delimiter %q, %d header line(s), %d sample row(s)\n", input, f.Compression, dialect.Delimiter, dialect.HeaderLines, len(dialect.Rows))
	log.Printf("Header: %s\n", strings.Join(dialect.Header, " | "))

	if !dialect.Detected {
		log.Fatalf("Could not detect the columns. Try one of the presets: %s\n", sumstats.PresetNames())
	}

	parser, err := sumstats.NewParser(dialect.Mapping)
	if err != nil {
		log.Fatalln(err)
	}
	for _, row := range dialect.Rows {
		rec, err := parser.ParseFields(row)
		if err != nil {
			log.Printf("Sample row could not be parsed: %v\n", err)
			continue
		}
		log.Printf("%s\t-log10(p)=%g\n", rec.Variant, rec.LogPvalue)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dialect.Mapping.Config()); err != nil {
		log.Fatalln(err)
	}
}

func printChunks(region string, regionSize int, leading bool, chunkSize int) error {
	anchor := chrpos.Centered
	if leading {
		anchor = chrpos.Leading
	}

	r, err := chrpos.ParseRegionAround(region, regionSize, 0, anchor)
	if err != nil {
		return err
	}

	loci, err := chrpos.Chunk(r, chunkSize)
	if err != nil {
		return err
	}

	for _, locus := range loci {
		// Tabix regions are 1-based and inclusive.
		fmt.Printf("%s:%d-%d\n", locus.Chrom(), locus.Start(), locus.End()-1)
	}

	return nil
}
