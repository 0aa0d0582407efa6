package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcfg/grammar"
)

func newCheckCmd(cfg Config) *cobra.Command {
	var (
		grammarPath string
		strict      bool
		tolerance   float64
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load a grammar file and report whether it is valid",
		Long: "check parses and validates a grammar file: rule syntax, probabilities in\n" +
			"(0, 1], binary-normal-form arity, and no undefined or unit-producing\n" +
			"symbols. With --strict it additionally requires every nonterminal's rule\n" +
			"probabilities to sum to one.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, grammarPath, strict, tolerance)
		},
	}
	cmd.Flags().StringVarP(&grammarPath, "grammar", "g", cfg.Grammar, "grammar file to check")
	cmd.Flags().BoolVar(&strict, "strict", false, "require per-symbol probability mass of exactly one")
	cmd.Flags().Float64Var(&tolerance, "tolerance", cfg.Tolerance, "relative tolerance for --strict sums")
	return cmd
}

func runCheck(cmd *cobra.Command, path string, strict bool, tolerance float64) error {
	if path == "" {
		return errors.New("pcfg check: no grammar file (use --grammar or PCFG_GRAMMAR)")
	}
	out := cmd.OutOrStdout()

	g, err := grammar.LoadFile(path)
	if err != nil {
		fmt.Fprintln(out, "Grammar is invalid!")
		return err
	}
	if strict {
		if err := g.CheckDistribution(tolerance); err != nil {
			fmt.Fprintln(out, "Grammar is invalid!")
			return err
		}
	}

	st := g.Stats()
	fmt.Fprintln(out, "Grammar is valid!")
	fmt.Fprintf(out, "start symbol:  %s\n", g.Start())
	fmt.Fprintf(out, "nonterminals:  %d\n", st.Nonterminals)
	fmt.Fprintf(out, "terminals:     %d\n", st.Terminals)
	fmt.Fprintf(out, "binary rules:  %d\n", st.BinaryRules)
	fmt.Fprintf(out, "lexical rules: %d\n", st.LexicalRules)
	return nil
}
