package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcfg/parseval"
	"github.com/katalvlaran/pcfg/treebank"
)

func newEvaluateCmd() *cobra.Command {
	var (
		predPath     string
		goldPath     string
		preterminals bool
		noRoot       bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score predicted trees against gold trees, line by line",
		Long: "evaluate aligns two tree files line by line and scores each pair on\n" +
			"labeled constituent spans, printing per-sentence precision, recall, and\n" +
			"F1, then corpus coverage and mean F over parsed and over all sentences.\n" +
			"Pairs with a malformed line on either side are reported to stderr and\n" +
			"skipped; a " + treebank.NoParseMarker + " line on the predicted side counts as an unparsed\n" +
			"sentence.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd, predPath, goldPath, preterminals, noRoot)
		},
	}
	cmd.Flags().StringVar(&predPath, "pred", "", "predicted tree file (parser output)")
	cmd.Flags().StringVar(&goldPath, "gold", "", "reference tree file")
	cmd.Flags().BoolVar(&preterminals, "preterminals", false, "also score part-of-speech spans")
	cmd.Flags().BoolVar(&noRoot, "no-root", false, "exclude the whole-sentence span")
	return cmd
}

func runEvaluate(cmd *cobra.Command, predPath, goldPath string, preterminals, noRoot bool) error {
	if predPath == "" || goldPath == "" {
		return errors.New("pcfg evaluate: both --pred and --gold are required")
	}

	pred, err := treebank.ReadTreesFile(predPath)
	if err != nil {
		return err
	}
	gold, err := treebank.ReadTreesFile(goldPath)
	if err != nil {
		return err
	}
	if len(pred) != len(gold) {
		return fmt.Errorf("pcfg evaluate: %d predicted trees but %d gold trees; the files are misaligned",
			len(pred), len(gold))
	}

	var opts []parseval.Option
	if preterminals {
		opts = append(opts, parseval.WithPreterminals())
	}
	if noRoot {
		opts = append(opts, parseval.WithoutRoot())
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	var agg parseval.Aggregate
	skipped := 0
	for i := range pred {
		if err := pairError(pred[i], gold[i]); err != nil {
			log.Printf("pcfg evaluate: skipping pair %d: %v", i+1, err)
			skipped++
			continue
		}
		r := parseval.Score(pred[i].Tree, gold[i].Tree, opts...)
		agg.Add(r)
		fmt.Fprintf(out, "%d\tP=%s\tR=%s\tF=%s\n",
			i+1, fmtScore(r.Precision()), fmtScore(r.Recall()), fmtScore(r.F1()))
	}

	fmt.Fprintf(out, "sentences\t%d\n", agg.Population)
	if skipped > 0 {
		fmt.Fprintf(out, "skipped\t%d\n", skipped)
	}
	fmt.Fprintf(out, "coverage\t%s\n", fmtScore(agg.Coverage()))
	fmt.Fprintf(out, "mean-F-parsed\t%s\n", fmtScore(agg.MeanFParsed()))
	fmt.Fprintf(out, "mean-F-all\t%s\n", fmtScore(agg.MeanFAll()))
	if err := out.Flush(); err != nil {
		return fmt.Errorf("pcfg evaluate: %w", err)
	}
	return nil
}

// pairError reports why a pred/gold pair cannot be scored: a malformed line
// on either side, or a missing gold tree (the gold file may not contain
// NOPARSE markers).
func pairError(pred, gold treebank.Entry) error {
	if pred.Err != nil {
		return pred.Err
	}
	if gold.Err != nil {
		return gold.Err
	}
	if gold.Tree == nil {
		return fmt.Errorf("treebank: line %d: gold side has no tree", gold.Line)
	}
	return nil
}

// fmtScore renders a metric, printing N/A for undefined (NaN) values.
func fmtScore(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", v)
}
