package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcfg/cky"
	"github.com/katalvlaran/pcfg/grammar"
	"github.com/katalvlaran/pcfg/treebank"
)

func newParseCmd(cfg Config) *cobra.Command {
	var (
		grammarPath string
		input       string
		output      string
		start       string
		workers     int
		withLogProb bool
	)
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a sentence file, one bracketed tree per line",
		Long: "parse loads a grammar, reads one whitespace-tokenized sentence per line\n" +
			"from the input file, and writes the best parse of each sentence as a\n" +
			"single bracketed line, in input order. Sentences with no derivation\n" +
			"produce the line " + treebank.NoParseMarker + " and never fail the run; only grammar or\n" +
			"I/O problems do.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParse(cmd, grammarPath, input, output, start, workers, withLogProb)
		},
	}
	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", cfg.Grammar, "grammar file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "sentence file, one sentence per line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&start, "start", cfg.Start, "override the grammar's start symbol")
	cmd.Flags().IntVar(&workers, "workers", cfg.Workers, "sentences parsed concurrently")
	cmd.Flags().BoolVar(&withLogProb, "logprob", false,
		"write each parse's log probability as a comment line before its tree")
	return cmd
}

func runParse(cmd *cobra.Command, grammarPath, input, output, start string, workers int, withLogProb bool) error {
	if grammarPath == "" {
		return errors.New("pcfg parse: no grammar file (use --grammar or PCFG_GRAMMAR)")
	}
	if input == "" {
		return errors.New("pcfg parse: no input file (use --input)")
	}

	// Grammar problems must surface before any sentence is touched.
	g, err := grammar.LoadFile(grammarPath)
	if err != nil {
		return err
	}
	sentences, err := treebank.ReadSentencesFile(input)
	if err != nil {
		return err
	}

	opts := []cky.Option{
		cky.WithContext(cmd.Context()),
		cky.WithWorkers(workers),
	}
	if start != "" {
		opts = append(opts, cky.WithStartSymbol(start))
	}
	results, err := cky.ParseAll(g, sentences, opts...)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("pcfg parse: %w", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)

	parsed := 0
	for _, r := range results {
		if r.Err == nil {
			parsed++
			if withLogProb {
				fmt.Fprintf(bw, "# logprob %.6f\n", r.LogProb)
			}
		}
		if err := treebank.WriteTree(bw, r.Tree); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pcfg parse: %w", err)
	}

	if start == "" {
		start = g.Start()
	}
	log.Printf("pcfg parse: %d/%d sentences parsed grammar=%s start=%s",
		parsed, len(results), grammarPath, start)
	return nil
}
