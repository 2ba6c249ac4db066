package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	"github.com/npillmayer/treegram/trainer"
	"github.com/npillmayer/treegram/treebank"
)

var traceKeys = []string{
	"treegram.tree",
	"treegram.normalize",
	"treegram.grammar",
	"treegram.corpus",
}

func main() {
	initDisplay()
	_ = godotenv.Load()
	gtrace.SyntaxTracer = gologadapter.New()
	corpus := flag.String("corpus", envOr("TREEGRAM_CORPUS", "ptb"), "Corpus format [ptb|spmrl]")
	root := flag.String("root", os.Getenv("TREEGRAM_ROOT"), "Root directory of the corpus")
	cnf := flag.Bool("cnf", false, "Binarize trees")
	unary := flag.Bool("unary", false, "Collapse unary chains")
	number := flag.Bool("number", false, "Collapse numerals")
	lower := flag.Bool("lower", false, "Lower-case words")
	punct := flag.Bool("punct", false, "Remove punctuation")
	sublabel := flag.Bool("sublabel", false, "Remove function tags from labels")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of parallel workers")
	cache := flag.Int("cache", treebank.DefaultCacheSize, "Number of parsed corpus files to keep in memory")
	skip := flag.Bool("skip", false, "Skip trees which cannot be normalized")
	dump := flag.String("dump", "", "Write grammar to file")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	sandbox := flag.Bool("repl", false, "Start interactive normalization sandbox")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	format, err := treebank.ParseFormat(*corpus)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	conf := format.Config()
	flag.Visit(func(f *flag.Flag) { // explicitly set flags override the format's defaults
		switch f.Name {
		case "cnf":
			conf.ReadAsCNF = *cnf
		case "unary":
			conf.CollapseUnary = *unary
		case "number":
			conf.CollapseNumber = *number
		case "lower":
			conf.LowercaseWord = *lower
		case "punct":
			conf.RemovePunctuation = *punct
		case "sublabel":
			conf.RemoveSublabel = *sublabel
		}
	})
	if *sandbox {
		runSandbox(conf)
		return
	}
	if *root == "" {
		pterm.Error.Println("No corpus root given; use flag -root or set TREEGRAM_ROOT")
		os.Exit(2)
	}
	pterm.Info.Printf("Training on %s corpus at %s\n", format, *root)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := train(ctx, format, *root, *cache, trainer.Options{
		Config:       conf,
		Workers:      *workers,
		SkipBadTrees: *skip,
	})
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	res.Grammar.Dump() // only visible in debug mode
	printSummary(res)
	if *dump != "" {
		if err := writeGrammar(res, *dump); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		pterm.Info.Printf("Grammar written to %s\n", *dump)
	}
}

func train(ctx context.Context, format treebank.Format, root string, cache int,
	opts trainer.Options) (*trainer.Result, error) {
	//
	split, err := format.Split(root)
	if err != nil {
		return nil, err
	}
	if len(split.Train) == 0 {
		return nil, fmt.Errorf("no training files found in %s", root)
	}
	src, err := treebank.NewFileSource(split.Train, cache)
	if err != nil {
		return nil, err
	}
	return trainer.Train(ctx, src, opts)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func envOr(key, dflt string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return dflt
}

func printSummary(res *trainer.Result) {
	s := res.Summary
	data := pterm.TableData{
		{"Item", "Count"},
		{"trees", strconv.FormatInt(res.Stats.Trees, 10)},
		{"skipped trees", strconv.Itoa(len(res.Skipped))},
		{"non-terminals", strconv.Itoa(s.NonTerminals)},
		{"terminals", strconv.Itoa(s.Terminals)},
		{"rules", strconv.Itoa(s.Rules)},
		{"lexical rules", strconv.Itoa(s.LexicalRules)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	lengths := make([]int, 0, len(s.ChainLengths))
	for l := range s.ChainLengths {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	chains := pterm.TableData{{"Unary chain length", "Nodes"}}
	for _, l := range lengths {
		chains = append(chains, []string{strconv.Itoa(l), strconv.FormatInt(s.ChainLengths[l], 10)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(chains).Render()
	if fp, err := res.Grammar.Fingerprint(); err == nil {
		pterm.Info.Println("Grammar fingerprint " + fp)
	}
	for _, ref := range res.Skipped {
		tracer().Debugf("skipped %s", ref)
	}
}

func writeGrammar(res *trainer.Result, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err = res.Grammar.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
