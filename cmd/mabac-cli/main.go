// Command mabac-cli ranks destinations from a YAML dataset offline and prints
// the MABAC ranking table.
//
//	mabac-cli -input data/destinations.yaml [-criteria criteria.yaml] [-steps] [-lang id]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wisata-ranking/destination-ranking/internal/adapter/repository/dataset"
	"github.com/wisata-ranking/destination-ranking/internal/adapter/repository/memory"
	"github.com/wisata-ranking/destination-ranking/internal/criteria"
	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/logger"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/timeutil"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
	"github.com/wisata-ranking/destination-ranking/internal/usecase"
)

type options struct {
	input    string
	criteria string
	steps    bool
	lang     string
	top      int
	timeout  time.Duration
	tz       string
	maxPrice float64
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "mabac-cli:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("mabac-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "", "YAML destination dataset (required)")
	fs.StringVar(&opts.criteria, "criteria", "", "YAML criteria catalog (default: built-in)")
	fs.BoolVar(&opts.steps, "steps", false, "print every intermediate matrix")
	fs.StringVar(&opts.lang, "lang", "en", "locale for number formatting, e.g. en or id")
	fs.IntVar(&opts.top, "top", domain.DefaultRecommendedTop, "number of recommended destinations")
	fs.DurationVar(&opts.timeout, "timeout", usecase.DefaultTimeout, "calculation timeout")
	fs.StringVar(&opts.tz, "tz", timeutil.WITA, "timezone for the calculation timestamp")
	fs.Float64Var(&opts.maxPrice, "max-price", -1, "only rank destinations priced at most this (IDR)")
	fs.BoolVar(&opts.verbose, "v", false, "log calculation details to stderr")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.input == "" {
		fs.Usage()
		return opts, errors.New("-input is required")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	tag, err := language.Parse(opts.lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %q: %w", opts.lang, err)
	}

	loc, err := timeutil.GetLocation(opts.tz)
	if err != nil {
		return fmt.Errorf("invalid -tz: %w", err)
	}

	catalog, err := criteria.LoadFile(opts.criteria)
	if err != nil {
		return err
	}

	destinations, err := dataset.Load(opts.input)
	if err != nil {
		return err
	}

	log := logger.Nop()
	if opts.verbose {
		log = logger.NewWithOutput(logger.Config{Level: "debug", Format: "console", ServiceName: "mabac-cli"}, stderr)
	}

	uc := usecase.NewRankingUseCase(memory.New(destinations), catalog,
		&usecase.Config{Timeout: opts.timeout, RecommendedTop: opts.top},
		usecase.WithLogger(log),
		usecase.WithLocation(loc),
	)

	var rankOpts usecase.RankOptions
	if opts.maxPrice >= 0 {
		rankOpts.Filter = &domain.FilterOptions{MaxPrice: &opts.maxPrice}
	}

	ranking, err := uc.RankStored(context.Background(), rankOpts)
	if err != nil {
		return err
	}

	p := message.NewPrinter(tag)
	if opts.steps {
		printSteps(stdout, p, ranking.Result)
	}
	printRanking(stdout, p, ranking)
	return nil
}

func printRanking(w io.Writer, p *message.Printer, run *domain.RankingRun) {
	p.Fprintf(w, "Ranking (%d alternatives, %d criteria)\n", len(run.Result.Alternatives), len(run.Result.Criteria))
	fmt.Fprintf(w, "Calculated at %s\n", timeutil.FormatDateTime(run.CalculatedAt))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tSCORE\t")
	for _, r := range run.Result.Ranking {
		mark := ""
		if run.IsRecommended(r.Rank) {
			mark = "*"
		}
		p.Fprintf(tw, "%d\t%s\t%s\t%.4f\t%s\n", r.Rank, r.AlternativeID, r.Name, r.Score, mark)
	}
	tw.Flush()
}

func printSteps(w io.Writer, p *message.Printer, res *mabac.Result) {
	stages := []struct {
		title string
		m     mabac.Matrix
	}{
		{"Decision matrix", res.Decision},
		{"Normalized matrix", res.Normalized},
		{"Weighted matrix", res.Weighted},
	}
	for _, s := range stages {
		printMatrix(w, p, s.title, res, s.m)
	}

	fmt.Fprintln(w, "Border approximation area")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for j, g := range res.Border {
		p.Fprintf(tw, "%s\t%.4f\t\n", res.Criteria[j].Code, g)
	}
	tw.Flush()
	fmt.Fprintln(w)

	printMatrix(w, p, "Distance matrix", res, res.Distance)
}

func printMatrix(w io.Writer, p *message.Printer, title string, res *mabac.Result, m mabac.Matrix) {
	fmt.Fprintln(w, title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "ID\t")
	for _, c := range res.Criteria {
		fmt.Fprintf(tw, "%s\t", c.Code)
	}
	fmt.Fprintln(tw)

	for i, row := range m {
		fmt.Fprintf(tw, "%s\t", res.Alternatives[i].ID)
		for _, v := range row {
			p.Fprintf(tw, "%.4f\t", v)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
